package orderitems

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/orderitems"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

type OrderItemHandler struct {
	service orderitems.OrderItemService
	logger  *zap.Logger
}

func NewOrderItemHandler(s orderitems.OrderItemService, l *zap.Logger) *OrderItemHandler {
	return &OrderItemHandler{service: s, logger: l}
}

// parseID reads the two path segments of the composite key.
func parseID(r *http.Request) (domain.OrderItemID, error) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		return domain.OrderItemID{}, err
	}
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		return domain.OrderItemID{}, err
	}
	return domain.OrderItemID{OrderID: orderID, ProductID: productID}, nil
}

func (h *OrderItemHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Error getting all order items", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *OrderItemHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.logger.Warn("Invalid order item ID in request", zap.Error(err))
		http.Error(w, "Invalid order item ID", http.StatusBadRequest)
		return
	}

	res, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		var notFound *orderitems.OrderItemNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, notFound.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("Error getting order item", zap.String("order_item_id", id.String()), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *OrderItemHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for order item save", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Save(r.Context(), &req)
	if err != nil {
		h.logger.Error("Error saving order item", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *OrderItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for order item update", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Update(r.Context(), &req)
	if err != nil {
		h.logger.Error("Error updating order item", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *OrderItemHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.logger.Warn("Invalid order item ID in request", zap.Error(err))
		http.Error(w, "Invalid order item ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		h.logger.Error("Error deleting order item", zap.String("order_item_id", id.String()), zap.Error(err))
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
