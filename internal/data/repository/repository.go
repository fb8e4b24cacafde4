package repository

import (
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room    RoomRepository
	Guest   GuestRepository
	Booking BookingRepository
	Payment PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:    NewRoomRepository(db, log),
		Guest:   NewGuestRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
	}
}
