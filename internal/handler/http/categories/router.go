package categories

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/categories"
)

func RegisterRoutes(r chi.Router, s categories.CategoryService, l *zap.Logger) {
	handler := NewCategoryHandler(s, l.With(zap.String("component", "CategoryHTTPHandler")))

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", handler.FindAll)
		r.Post("/", handler.Save)
		r.Put("/", handler.Update)
		r.Get("/{categoryID}", handler.FindByID)
		r.Delete("/{categoryID}", handler.DeleteByID)
	})
}
