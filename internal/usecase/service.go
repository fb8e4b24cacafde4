package usecase

import (
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/repository"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/events"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Service bundles every use case behind one constructor.
type Service struct {
	Room      RoomService
	Guest     GuestService
	Booking   BookingService
	Payment   PaymentService
	Dashboard DashboardService
	Report    ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, rdb *redis.Client, publisher events.Publisher, log *zap.Logger) *Service {
	guest := NewGuestService(repo, log)
	cacheTTL := time.Duration(config.Dashboard.CacheTTLSeconds) * time.Second

	return &Service{
		Room:      NewRoomService(repo, log),
		Guest:     guest,
		Booking:   NewBookingService(repo, guest, publisher, log),
		Payment:   NewPaymentService(repo, log),
		Dashboard: NewDashboardService(repo, rdb, cacheTTL, log),
		Report:    NewReportService(repo, log),
	}
}
