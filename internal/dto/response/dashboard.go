package response

import "time"

// DashboardSummaryResponse is the snapshot behind the back-office
// dashboard cards.
type DashboardSummaryResponse struct {
	TotalRooms    int64   `json:"total_rooms"`
	OccupiedRooms int64   `json:"occupied_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`

	TotalRevenue  float64 `json:"total_revenue"`
	PendingAmount float64 `json:"pending_amount"`

	RevenueThisMonth      float64 `json:"revenue_this_month"`
	RevenueGrowthPct      float64 `json:"revenue_growth_pct"`
	TransactionsToday     int64   `json:"transactions_today"`
	TransactionsMonth     int64   `json:"transactions_this_month"`
	TransactionsGrowthPct float64 `json:"transactions_growth_pct"`

	GeneratedAt time.Time `json:"generated_at"`
}
