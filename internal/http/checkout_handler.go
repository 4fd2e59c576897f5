package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fjod/go_marketplace/internal/checkout"
	"github.com/fjod/go_marketplace/internal/domain"
	"github.com/fjod/go_marketplace/internal/session"
)

type CheckoutHandler struct {
	registry   *session.Registry
	calculator *checkout.Calculator
}

func NewCheckoutHandler(registry *session.Registry, calculator *checkout.Calculator) *CheckoutHandler {
	return &CheckoutHandler{registry: registry, calculator: calculator}
}

type CheckoutRequestDTO struct {
	Mode string `json:"mode" validate:"required"`
}

type CheckoutResponseDTO struct {
	Message string `json:"message"`
	Total   int    `json:"total,omitempty"`
	Mode    string `json:"mode,omitempty"`
}

type ModesResponseDTO struct {
	Supported domain.PaymentModes `json:"supported"`
}

// UnknownModeResponseDTO enumerates the valid modes so the caller can retry.
type UnknownModeResponseDTO struct {
	Error      string              `json:"error"`
	Code       string              `json:"code"`
	KnownModes domain.PaymentModes `json:"known_modes"`
}

// Modes lists the configured payment modes for a user session.
func (h *CheckoutHandler) Modes(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())
	if !h.registry.IsUser(token) {
		respondError(w, http.StatusUnauthorized, "unauthorized", "not an authorized user session")
		return
	}
	respondJSON(w, http.StatusOK, ModesResponseDTO{Supported: h.calculator.Modes()})
}

// Checkout computes the payable total for the session cart under the chosen
// payment mode. Nothing is mutated: the cart survives checkout unchanged.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "mode is required")
		return
	}

	outcome, err := h.calculator.Checkout(token, req.Mode)
	if err != nil {
		handleCheckoutError(w, h.calculator, err)
		return
	}

	if outcome.NothingPayable {
		respondJSON(w, http.StatusOK, CheckoutResponseDTO{Message: "No amount payable!"})
		return
	}

	respondJSON(w, http.StatusOK, CheckoutResponseDTO{
		Message: fmt.Sprintf(
			"You will be shortly redirected to the portal for %s to make a payment of Rs. %d",
			outcome.ModeName, outcome.Total,
		),
		Total: outcome.Total,
		Mode:  outcome.ModeName,
	})
}

func handleCheckoutError(w http.ResponseWriter, calculator *checkout.Calculator, err error) {
	switch {
	case errors.Is(err, checkout.ErrNotAuthorized):
		respondError(w, http.StatusUnauthorized, "unauthorized", "not an authorized user session")
	case errors.Is(err, checkout.ErrUnknownPaymentMode):
		respondJSON(w, http.StatusBadRequest, UnknownModeResponseDTO{
			Error:      "unknown payment mode",
			Code:       "unknown_payment_mode",
			KnownModes: calculator.Modes(),
		})
	case errors.Is(err, session.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session_not_found", "user not found")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
