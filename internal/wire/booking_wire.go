package wire

import (
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Create a reservation
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - List bookings with pagination
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/bookings/{id} - Booking details with guest, room, payments
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{id} - Patch booking fields
		r.Put("/{id}", bookingHandler.UpdateBooking)

		// DELETE /api/bookings/{id} - Remove a non-active booking
		r.Delete("/{id}", bookingHandler.DeleteBooking)

		// ==================== LIFECYCLE ROUTES ====================

		// PUT /api/bookings/{id}/check-in - reserved -> checked_in, room occupied
		r.Put("/{id}/check-in", bookingHandler.CheckIn)

		// PUT /api/bookings/{id}/check-out - checked_in -> checked_out, room cleaning
		r.Put("/{id}/check-out", bookingHandler.CheckOut)

		// PUT /api/bookings/{id}/cancel - reserved -> cancelled
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)

		// PUT /api/bookings/{id}/status - explicit lifecycle transition
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)

		// PUT /api/bookings/{id}/payment-status - payment tracking, no side effects
		r.Put("/{id}/payment-status", bookingHandler.UpdateBookingPaymentStatus)
	})
}
