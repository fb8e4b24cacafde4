package adaptor

import (
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Room      *RoomHandler
	Guest     *GuestHandler
	Booking   *BookingHandler
	Payment   *PaymentHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Room:      NewRoomHandler(service.Room, log),
		Guest:     NewGuestHandler(service.Guest, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Payment:   NewPaymentHandler(service.Payment, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
		Report:    NewReportHandler(service.Report, log),
	}
}
