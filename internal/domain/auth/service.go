package auth

import "context"

type Service interface {
	// IssueToken exchanges the terminal passcode for an access token.
	IssueToken(ctx context.Context, req *TokenRequest) (TokenResponse, error)
	// IssueSSEToken mints a short-lived token for the event stream.
	IssueSSEToken(ctx context.Context, terminalID string) (SSETokenResponse, error)
}
