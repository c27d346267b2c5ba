package carts

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/carts"
)

func RegisterRoutes(r chi.Router, s carts.CartService, l *zap.Logger) {
	handler := NewCartHandler(s, l.With(zap.String("component", "CartHTTPHandler")))

	r.Route("/carts", func(r chi.Router) {
		r.Get("/", handler.FindAll)
		r.Post("/", handler.Save)
		r.Put("/", handler.Update)
		r.Get("/{cartID}", handler.FindByID)
		r.Delete("/{cartID}", handler.DeleteByID)
	})
}
