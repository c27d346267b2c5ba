package favourites

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/favourites"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

type FavouriteHandler struct {
	service favourites.FavouriteService
	logger  *zap.Logger
}

func NewFavouriteHandler(s favourites.FavouriteService, l *zap.Logger) *FavouriteHandler {
	return &FavouriteHandler{service: s, logger: l}
}

// parseID reads the three path segments of the composite key. The likeDate
// segment is an URL-escaped RFC3339Nano timestamp.
func parseID(r *http.Request) (domain.FavouriteID, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return domain.FavouriteID{}, err
	}
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		return domain.FavouriteID{}, err
	}
	rawDate := chi.URLParam(r, "likeDate")
	if unescaped, err := url.PathUnescape(rawDate); err == nil {
		rawDate = unescaped
	}
	likeDate, err := time.Parse(time.RFC3339Nano, rawDate)
	if err != nil {
		return domain.FavouriteID{}, err
	}
	return domain.FavouriteID{UserID: userID, ProductID: productID, LikeDate: likeDate}, nil
}

func (h *FavouriteHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Error getting all favourites", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *FavouriteHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.logger.Warn("Invalid favourite ID in request", zap.Error(err))
		http.Error(w, "Invalid favourite ID", http.StatusBadRequest)
		return
	}

	res, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		var notFound *favourites.FavouriteNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, notFound.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("Error getting favourite", zap.String("favourite_id", id.String()), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *FavouriteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.FavouriteDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for favourite save", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Save(r.Context(), &req)
	if err != nil {
		h.logger.Error("Error saving favourite", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *FavouriteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.FavouriteDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body for favourite update", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Update(r.Context(), &req)
	if err != nil {
		h.logger.Error("Error updating favourite", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *FavouriteHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.logger.Warn("Invalid favourite ID in request", zap.Error(err))
		http.Error(w, "Invalid favourite ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		h.logger.Error("Error deleting favourite", zap.String("favourite_id", id.String()), zap.Error(err))
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
