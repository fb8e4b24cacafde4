package wire

import (
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Route("/api/payments", func(r chi.Router) {
		// POST /api/payments - Record a payment for a booking
		r.Post("/", paymentHandler.CreatePayment)

		// GET /api/payments - List payments with pagination
		r.Get("/", paymentHandler.GetPayments)

		// GET /api/payments/{id} - Payment details
		r.Get("/{id}", paymentHandler.GetPaymentByID)

		// PUT /api/payments/{id}/status - Move a payment through processing/approved/rejected/refunded
		r.Put("/{id}/status", paymentHandler.UpdatePaymentStatus)

		// DELETE /api/payments/{id} - Remove a payment record
		r.Delete("/{id}", paymentHandler.DeletePayment)
	})
}
