package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"

	"go.uber.org/zap"
)

func TestOccupancyRate(t *testing.T) {
	cases := []struct {
		occupied, total int64
		want            float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 10, 0},
		{3, 10, 30},
		{10, 10, 100},
	}

	for _, tc := range cases {
		if got := OccupancyRate(tc.occupied, tc.total); got != tc.want {
			t.Errorf("OccupancyRate(%d, %d) = %v, want %v", tc.occupied, tc.total, got, tc.want)
		}
	}
}

func TestGrowthPercent(t *testing.T) {
	cases := []struct {
		current, prior float64
		want           float64
	}{
		{100, 0, 0},
		{0, 0, 0},
		{150, 100, 50},
		{50, 100, -50},
		{100, 100, 0},
	}

	for _, tc := range cases {
		if got := GrowthPercent(tc.current, tc.prior); got != tc.want {
			t.Errorf("GrowthPercent(%v, %v) = %v, want %v", tc.current, tc.prior, got, tc.want)
		}
	}
}

func TestGetSummaryReconcilesRevenue(t *testing.T) {
	occupied := newTestRoom("401", 100)
	occupied.Status = entity.RoomStatusOccupied
	available := newTestRoom("402", 100)

	rooms := &fakeRoomRepo{rooms: []*entity.Room{occupied, available}}

	// One stay settled through an approved payment (100), one marked paid
	// on the booking with no payment row (200). Revenue counts both once.
	payments := &fakePaymentRepo{
		sumByStatus: map[entity.PaymentStatus]float64{
			entity.PaymentStatusApproved:   100,
			entity.PaymentStatusProcessing: 40,
		},
	}
	bookings := &fakeBookingRepo{
		paidNoApproved: 200,
		sumByPaymentStatus: map[entity.BookingPaymentStatus]float64{
			entity.BookingPaymentPending: 60,
		},
	}
	repo := newTestRepository(rooms, nil, bookings, payments)

	srv := NewDashboardService(repo, nil, 0, zap.NewNop())
	summary, err := srv.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}

	if summary.TotalRevenue != 300 {
		t.Errorf("total revenue = %v, want 300", summary.TotalRevenue)
	}
	if summary.PendingAmount != 100 {
		t.Errorf("pending amount = %v, want 100", summary.PendingAmount)
	}
	if summary.TotalRooms != 2 {
		t.Errorf("total rooms = %d, want 2", summary.TotalRooms)
	}
	if summary.OccupiedRooms != 1 {
		t.Errorf("occupied rooms = %d, want 1", summary.OccupiedRooms)
	}
	if summary.OccupancyRate != 50 {
		t.Errorf("occupancy rate = %v, want 50", summary.OccupancyRate)
	}
}

func TestGetSummaryZeroState(t *testing.T) {
	repo := newTestRepository(nil, nil, nil, nil)

	srv := NewDashboardService(repo, nil, 0, zap.NewNop())
	summary, err := srv.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}

	if summary.OccupancyRate != 0 {
		t.Errorf("occupancy rate = %v, want 0 with no rooms", summary.OccupancyRate)
	}
	if summary.RevenueGrowthPct != 0 {
		t.Errorf("revenue growth = %v, want 0 with empty prior month", summary.RevenueGrowthPct)
	}
	if summary.TransactionsGrowthPct != 0 {
		t.Errorf("transactions growth = %v, want 0 with empty prior month", summary.TransactionsGrowthPct)
	}
	if summary.GeneratedAt.IsZero() {
		t.Error("generated at is zero")
	}
	if time.Since(summary.GeneratedAt) > time.Minute {
		t.Error("generated at is stale")
	}
}
