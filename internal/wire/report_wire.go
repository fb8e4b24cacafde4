package wire

import (
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler) {
	r.Route("/api/reports", func(r chi.Router) {
		// GET /api/reports/bookings?format=pdf|csv - Bookings table export
		r.Get("/bookings", reportHandler.ExportBookings)

		// GET /api/reports/payments?format=pdf|csv - Payments table export
		r.Get("/payments", reportHandler.ExportPayments)
	})
}
