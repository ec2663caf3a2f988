package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lawding/leavecalc-api/internal/domain/auth"
	"github.com/lawding/leavecalc-api/internal/handler/http/response"
	authService "github.com/lawding/leavecalc-api/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService authService.Service
}

func NewAuthHandler(svc authService.Service) AuthHandler {
	return &AuthHandlerImpl{authService: svc}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "BAD_REQUEST", "Invalid request format", nil)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokens)
}
