// internal/api/handler/category.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"trackhub/internal/service"
	"trackhub/internal/util"
)

// CategoryHandler handles HTTP requests related to categories.
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{service: svc, logger: logger}
}

// CategoryRequest represents the request body for category creation.
type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Create handles category creation.
// POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), uid, req.Name, req.Color)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, category)
}

// List handles listing the user's categories.
// GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}

	categories, err := h.service.ListCategories(r.Context(), uid)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, categories)
}

// Delete handles category deletion.
// DELETE /categories/{categoryID}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), uid, categoryID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Category deleted"})
}
