package auth

import (
	"context"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/auth"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwtService   jwt.Service
	passcodeHash string
}

func NewAuthService(jwtService jwt.Service, passcodeHash string) auth.Service {
	return &AuthServiceImpl{
		jwtService:   jwtService,
		passcodeHash: passcodeHash,
	}
}

// IssueToken implements auth.Service.
func (s *AuthServiceImpl) IssueToken(ctx context.Context, req *auth.TokenRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passcodeHash), []byte(req.Passcode)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidPasscode
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.TerminalID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// IssueSSEToken implements auth.Service.
func (s *AuthServiceImpl) IssueSSEToken(ctx context.Context, terminalID string) (auth.SSETokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateSSEToken(terminalID)
	if err != nil {
		return auth.SSETokenResponse{}, err
	}

	return auth.SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
