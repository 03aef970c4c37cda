package auth

import "github.com/Joseph2303/ProyectoPSS/internal/pkg/validator"

type TokenRequest struct {
	TerminalID string `json:"terminal_id"`
	Passcode   string `json:"passcode"`
}

func (r *TokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TerminalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "terminal_id",
			Message: "terminal_id is required",
		})
	}
	if validator.IsEmpty(r.Passcode) {
		errs = append(errs, validator.ValidationError{
			Field:   "passcode",
			Message: "passcode is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
