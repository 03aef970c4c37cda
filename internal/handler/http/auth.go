package http

import (
	"encoding/json"
	"net/http"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/auth"
	"github.com/Joseph2303/ProyectoPSS/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
	IssueSSEToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// IssueToken exchanges the terminal passcode for an access token.
func (h *authHandlerImpl) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req auth.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.IssueToken(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// IssueSSEToken mints a short-lived event-stream token for the
// authenticated terminal.
func (h *authHandlerImpl) IssueSSEToken(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	terminalID, ok := claims["terminal_id"].(string)
	if !ok || terminalID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.authService.IssueSSEToken(r.Context(), terminalID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
