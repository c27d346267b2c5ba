package carts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/carts"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

type CartHandler struct {
	service carts.CartService
	logger  *zap.Logger
}

func NewCartHandler(s carts.CartService, l *zap.Logger) *CartHandler {
	return &CartHandler{service: s, logger: l}
}

func (h *CartHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Error getting all carts", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CartHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	cartID, err := strconv.ParseInt(chi.URLParam(r, "cartID"), 10, 64)
	if err != nil {
		h.logger.Warn("Invalid cart ID in request", zap.Error(err))
		http.Error(w, "Invalid cart ID", http.StatusBadRequest)
		return
	}

	res, err := h.service.FindByID(r.Context(), cartID)
	if err != nil {
		var notFound *carts.CartNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, notFound.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("Error getting cart", zap.Int64("cart_id", cartID), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CartHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.CartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for cart save", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Save(r.Context(), &req)
	if err != nil {
		h.logger.Error("Error saving cart", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for cart update", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Update(r.Context(), &req)
	if err != nil {
		h.logger.Error("Error updating cart", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CartHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	cartID, err := strconv.ParseInt(chi.URLParam(r, "cartID"), 10, 64)
	if err != nil {
		h.logger.Warn("Invalid cart ID in request", zap.Error(err))
		http.Error(w, "Invalid cart ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteByID(r.Context(), cartID); err != nil {
		h.logger.Error("Error deleting cart", zap.Int64("cart_id", cartID), zap.Error(err))
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
