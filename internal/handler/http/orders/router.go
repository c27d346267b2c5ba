package orders

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/orders"
)

func RegisterRoutes(r chi.Router, s orders.OrderService, l *zap.Logger) {
	h := NewOrderHandler(s, l.With(zap.String("component", "OrderHTTPHandler")))

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Save)
		r.Put("/", h.Update)
		r.Get("/{orderID}", h.FindByID)
		r.Delete("/{orderID}", h.DeleteByID)
	})
}
