package http

import (
	"encoding/json"
	"net/http"

	"github.com/fjod/go_marketplace/internal/session"
)

type AuthHandler struct {
	registry *session.Registry
}

func NewAuthHandler(registry *session.Registry) *AuthHandler {
	return &AuthHandler{registry: registry}
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}

// Login authenticates the credentials and, on success, binds a fresh cart to
// the minted token before returning it. Cart creation happens here and not
// in the registry: authentication and cart lifecycle are separate concerns.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	token := h.registry.Login(req.Email, req.Password)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication_failed", "unknown credentials")
		return
	}

	h.registry.AttachCart(token)
	respondJSON(w, http.StatusOK, LoginResponseDTO{Token: token})
}
