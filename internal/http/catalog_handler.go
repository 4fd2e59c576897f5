package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_marketplace/internal/catalog"
	"github.com/fjod/go_marketplace/internal/domain"
	"github.com/fjod/go_marketplace/internal/session"
)

type CatalogHandler struct {
	store    *catalog.Store
	registry *session.Registry
}

func NewCatalogHandler(store *catalog.Store, registry *session.Registry) *CatalogHandler {
	return &CatalogHandler{store: store, registry: registry}
}

type ProductRequestDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name" validate:"required"`
	Category int    `json:"category"`
	Price    int    `json:"price" validate:"gte=0"`
}

type CategoryRequestDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required"`
}

type CatalogueResponseDTO struct {
	Data map[string][]domain.Product `json:"data"`
}

// Catalogue returns every product grouped by category name. Public, no
// session required.
func (h *CatalogHandler) Catalogue(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CatalogueResponseDTO{Data: h.store.Catalogue()})
}

// requireAdmin rejects the request unless the session token belongs to the
// admin role set.
func (h *CatalogHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !h.registry.IsAdmin(tokenFromContext(r.Context())) {
		respondError(w, http.StatusUnauthorized, "unauthorized", "not an authorized admin session")
		return false
	}
	return true
}

func (h *CatalogHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	product, ok := decodeProduct(w, r, 0)
	if !ok {
		return
	}

	if err := h.store.AddProduct(product); err != nil {
		handleCatalogError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	productID, ok := pathID(w, r, "product_id")
	if !ok {
		return
	}
	product, ok := decodeProduct(w, r, productID)
	if !ok {
		return
	}

	if err := h.store.UpdateProduct(product); err != nil {
		handleCatalogError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	productID, ok := pathID(w, r, "product_id")
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(productID); err != nil {
		handleCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if req.ID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_category_id", "id must be positive")
		return
	}

	category := domain.Category{ID: req.ID, Name: req.Name}
	if err := h.store.AddCategory(category); err != nil {
		handleCatalogError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	categoryID, ok := pathID(w, r, "category_id")
	if !ok {
		return
	}

	if err := h.store.DeleteCategory(categoryID); err != nil {
		handleCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeProduct parses and validates a product body. A non-zero overrideID
// (from the URL path) wins over the ID in the body.
func decodeProduct(w http.ResponseWriter, r *http.Request, overrideID int) (domain.Product, bool) {
	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return domain.Product{}, false
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "name is required and price must not be negative")
		return domain.Product{}, false
	}
	if overrideID != 0 {
		req.ID = overrideID
	}
	if req.ID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be positive")
		return domain.Product{}, false
	}

	return domain.Product{ID: req.ID, Name: req.Name, Category: req.Category, Price: req.Price}, true
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", param+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func handleCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductExists):
		respondError(w, http.StatusConflict, "product_exists", "product already exists")
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product_not_found", "product not found")
	case errors.Is(err, catalog.ErrCategoryExists):
		respondError(w, http.StatusConflict, "category_exists", "category already exists")
	case errors.Is(err, catalog.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, "category_not_found", "category not found")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
