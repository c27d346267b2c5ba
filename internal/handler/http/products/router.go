package products

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/products"
)

func RegisterRoutes(r chi.Router, s products.ProductService, l *zap.Logger) {
	handler := NewProductHandler(s, l.With(zap.String("component", "ProductHTTPHandler")))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handler.FindAll)
		r.Post("/", handler.Save)
		r.Put("/", handler.Update)
		r.Get("/{productID}", handler.FindByID)
		r.Delete("/{productID}", handler.DeleteByID)
	})
}
