package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fjod/go_marketplace/internal/cart"
	"github.com/fjod/go_marketplace/internal/domain"
	"github.com/fjod/go_marketplace/internal/session"
)

type CartHandler struct {
	registry *session.Registry
}

func NewCartHandler(registry *session.Registry) *CartHandler {
	return &CartHandler{registry: registry}
}

type MutateItemRequestDTO struct {
	ProductID int `json:"product_id"`
	// Quantity is signed: zero or more adds, negative removes the magnitude.
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items []domain.CartItem `json:"items"`
}

// GetCart returns the cart snapshot for any live session, user or admin.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())

	sessionCart, err := h.registry.CartFor(token)
	if err != nil {
		respondError(w, http.StatusNotFound, "session_not_found", "user not found")
		return
	}
	respondJSON(w, http.StatusOK, CartResponseDTO{Items: sessionCart.Items()})
}

// MutateItems adds or removes cart items depending on the sign of the
// quantity field. Only user sessions may mutate a cart.
func (h *CartHandler) MutateItems(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())
	if !h.registry.IsUser(token) {
		respondError(w, http.StatusUnauthorized, "unauthorized", "not an authorized user session")
		return
	}

	var req MutateItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	sessionCart, err := h.registry.CartFor(token)
	if err != nil {
		respondError(w, http.StatusNotFound, "session_not_found", "user not found")
		return
	}

	if req.Quantity >= 0 {
		err = sessionCart.AddItem(req.ProductID, req.Quantity)
	} else {
		err = sessionCart.RemoveItem(req.ProductID, -req.Quantity)
	}
	if err != nil {
		handleCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CartResponseDTO{Items: sessionCart.Items()})
}

func handleCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrUnknownProduct):
		respondError(w, http.StatusNotFound, "unknown_product", "product is not in the cart")
	case errors.Is(err, cart.ErrInsufficientQuantity):
		respondError(w, http.StatusConflict, "insufficient_quantity", "cart holds fewer items than requested")
	case errors.Is(err, cart.ErrNegativeQuantity):
		respondError(w, http.StatusBadRequest, "invalid_request", "quantity must not be negative")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
