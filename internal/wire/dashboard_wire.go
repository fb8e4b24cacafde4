package wire

import (
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler) {
	// GET /api/dashboard/summary - Occupancy, revenue and transaction snapshot
	r.Get("/api/dashboard/summary", dashboardHandler.GetSummary)
}
