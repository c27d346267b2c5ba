package payments

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/payments"
)

func RegisterRoutes(r chi.Router, s payments.PaymentService, l *zap.Logger) {
	h := NewPaymentHandler(s, l.With(zap.String("component", "PaymentHTTPHandler")))

	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Save)
		r.Put("/", h.Update)
		r.Get("/{paymentID}", h.FindByID)
		r.Delete("/{paymentID}", h.DeleteByID)
	})
}
