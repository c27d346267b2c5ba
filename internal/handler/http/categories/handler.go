package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/categories"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

type CategoryHandler struct {
	service categories.CategoryService
	logger  *zap.Logger
}

func NewCategoryHandler(s categories.CategoryService, l *zap.Logger) *CategoryHandler {
	return &CategoryHandler{service: s, logger: l}
}

func (h *CategoryHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Error getting all categories", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CategoryHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		h.logger.Warn("Invalid category ID in request", zap.Error(err))
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	res, err := h.service.FindByID(r.Context(), categoryID)
	if err != nil {
		var notFound *categories.CategoryNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, notFound.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("Error getting category", zap.Int64("category_id", categoryID), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CategoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for category save", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Save(r.Context(), &req)
	if err != nil {
		h.logger.Error("Error saving category", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for category update", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Update(r.Context(), &req)
	if err != nil {
		h.logger.Error("Error updating category", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CategoryHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		h.logger.Warn("Invalid category ID in request", zap.Error(err))
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteByID(r.Context(), categoryID); err != nil {
		h.logger.Error("Error deleting category", zap.Int64("category_id", categoryID), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
