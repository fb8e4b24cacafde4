package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/repository"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/dto/response"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:summary"

type DashboardService interface {
	GetSummary(ctx context.Context) (*response.DashboardSummaryResponse, error)
}

type dashboardService struct {
	repo     *repository.Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	log      *zap.Logger
}

// NewDashboardService builds the metrics aggregator. rdb may be nil; the
// summary is then recomputed on every call.
func NewDashboardService(repo *repository.Repository, rdb *redis.Client, cacheTTL time.Duration, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo:     repo,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With(zap.String("service", "dashboard")),
	}
}

// OccupancyRate returns occupied/total as a percentage, 0 when there are
// no rooms.
func OccupancyRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(occupied) / float64(total) * 100
}

// GrowthPercent returns the relative change from prior to current as a
// percentage, 0 when prior is 0.
func GrowthPercent(current, prior float64) float64 {
	if prior == 0 {
		return 0
	}
	return (current - prior) / prior * 100
}

func (s *dashboardService) GetSummary(ctx context.Context) (*response.DashboardSummaryResponse, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	summary, err := s.computeSummary(ctx)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, summary)
	return summary, nil
}

func (s *dashboardService) computeSummary(ctx context.Context) (*response.DashboardSummaryResponse, error) {
	totalRooms, err := s.repo.Room.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	occupiedRooms, err := s.repo.Room.CountByStatus(ctx, entity.RoomStatusOccupied)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	totalRevenue, err := s.revenue(ctx)
	if err != nil {
		return nil, err
	}

	pendingAmount, err := s.pendingAmount(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	priorMonthStart := monthStart.AddDate(0, -1, 0)

	revenueThisMonth, err := s.revenueBetween(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}

	revenuePriorMonth, err := s.revenueBetween(ctx, priorMonthStart, monthStart)
	if err != nil {
		return nil, err
	}

	txToday, err := s.transactionsBetween(ctx, todayStart, now)
	if err != nil {
		return nil, err
	}

	txMonth, err := s.transactionsBetween(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}

	txPriorMonth, err := s.transactionsBetween(ctx, priorMonthStart, monthStart)
	if err != nil {
		return nil, err
	}

	return &response.DashboardSummaryResponse{
		TotalRooms:            totalRooms,
		OccupiedRooms:         occupiedRooms,
		OccupancyRate:         OccupancyRate(occupiedRooms, totalRooms),
		TotalRevenue:          totalRevenue,
		PendingAmount:         pendingAmount,
		RevenueThisMonth:      revenueThisMonth,
		RevenueGrowthPct:      GrowthPercent(revenueThisMonth, revenuePriorMonth),
		TransactionsToday:     txToday,
		TransactionsMonth:     txMonth,
		TransactionsGrowthPct: GrowthPercent(float64(txMonth), float64(txPriorMonth)),
		GeneratedAt:           now,
	}, nil
}

// revenue sums approved payments plus paid bookings that never got an
// approved payment row, so the same stay is never counted twice.
func (s *dashboardService) revenue(ctx context.Context) (float64, error) {
	approved, err := s.repo.Payment.SumAmountByStatus(ctx, entity.PaymentStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("dashboard revenue: %w", err)
	}

	unreconciled, err := s.repo.Booking.SumPaidTotalsWithoutApprovedPayment(ctx)
	if err != nil {
		return 0, fmt.Errorf("dashboard revenue: %w", err)
	}

	return approved + unreconciled, nil
}

func (s *dashboardService) revenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	approved, err := s.repo.Payment.SumAmountByStatusBetween(ctx, entity.PaymentStatusApproved, from, to)
	if err != nil {
		return 0, fmt.Errorf("dashboard revenue window: %w", err)
	}

	unreconciled, err := s.repo.Booking.SumPaidTotalsWithoutApprovedPaymentBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("dashboard revenue window: %w", err)
	}

	return approved + unreconciled, nil
}

func (s *dashboardService) pendingAmount(ctx context.Context) (float64, error) {
	processing, err := s.repo.Payment.SumAmountByStatus(ctx, entity.PaymentStatusProcessing)
	if err != nil {
		return 0, fmt.Errorf("dashboard pending amount: %w", err)
	}

	pendingBookings, err := s.repo.Booking.SumTotalByPaymentStatus(ctx, entity.BookingPaymentPending)
	if err != nil {
		return 0, fmt.Errorf("dashboard pending amount: %w", err)
	}

	return processing + pendingBookings, nil
}

func (s *dashboardService) transactionsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	payments, err := s.repo.Payment.CountCreatedBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("dashboard transactions: %w", err)
	}

	pendingBookings, err := s.repo.Booking.CountByPaymentStatusCreatedBetween(ctx, entity.BookingPaymentPending, from, to)
	if err != nil {
		return 0, fmt.Errorf("dashboard transactions: %w", err)
	}

	return payments + pendingBookings, nil
}

func (s *dashboardService) fromCache(ctx context.Context) *response.DashboardSummaryResponse {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("Dashboard cache read failed", zap.Error(err))
		}
		return nil
	}

	var summary response.DashboardSummaryResponse
	if err := json.Unmarshal(raw, &summary); err != nil {
		s.log.Warn("Dashboard cache entry corrupt", zap.Error(err))
		return nil
	}

	return &summary
}

func (s *dashboardService) toCache(ctx context.Context, summary *response.DashboardSummaryResponse) {
	if s.rdb == nil || s.cacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}

	if err := s.rdb.Set(ctx, dashboardCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.log.Warn("Dashboard cache write failed", zap.Error(err))
	}
}
