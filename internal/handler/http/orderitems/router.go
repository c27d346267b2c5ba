package orderitems

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/orderitems"
)

func RegisterRoutes(r chi.Router, s orderitems.OrderItemService, l *zap.Logger) {
	h := NewOrderItemHandler(s, l.With(zap.String("component", "OrderItemHTTPHandler")))

	r.Route("/order-items", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Save)
		r.Put("/", h.Update)
		r.Get("/{orderID}/{productID}", h.FindByID)
		r.Delete("/{orderID}/{productID}", h.DeleteByID)
	})
}
