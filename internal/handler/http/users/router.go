package users

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/users"
)

func RegisterRoutes(r chi.Router, s users.UserService, l *zap.Logger) {
	handler := NewUserHandler(s, l.With(zap.String("component", "UserHTTPHandler")))

	r.Route("/users", func(r chi.Router) {
		r.Get("/", handler.FindAll)
		r.Post("/", handler.Save)
		r.Put("/", handler.Update)
		r.Get("/{userID}", handler.FindByID)
		r.Delete("/{userID}", handler.DeleteByID)
	})
}
