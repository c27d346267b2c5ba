package favourites

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/favourites"
)

func RegisterRoutes(r chi.Router, s favourites.FavouriteService, l *zap.Logger) {
	h := NewFavouriteHandler(s, l.With(zap.String("component", "FavouriteHTTPHandler")))

	r.Route("/favourites", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Save)
		r.Put("/", h.Update)
		r.Get("/{userID}/{productID}/{likeDate}", h.FindByID)
		r.Delete("/{userID}/{productID}/{likeDate}", h.DeleteByID)
	})
}
