package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusReserved   BookingStatus = "reserved"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Active reports whether the booking still binds the guest to a stay.
// Checked-out and cancelled bookings are terminal.
func (s BookingStatus) Active() bool {
	return s == BookingStatusReserved || s == BookingStatusCheckedIn
}

type BookingPaymentStatus string

const (
	BookingPaymentPending  BookingPaymentStatus = "pending"
	BookingPaymentPartial  BookingPaymentStatus = "partial"
	BookingPaymentPaid     BookingPaymentStatus = "paid"
	BookingPaymentRefunded BookingPaymentStatus = "refunded"
)

type Booking struct {
	Base
	Code          string               `db:"code"`
	GuestID       uuid.UUID            `db:"guest_id"`
	RoomID        uuid.UUID            `db:"room_id"`
	CheckIn       time.Time            `db:"check_in"`
	CheckOut      time.Time            `db:"check_out"`
	Status        BookingStatus        `db:"status"`
	PaymentStatus BookingPaymentStatus `db:"payment_status"`
	PaymentMethod string               `db:"payment_method"`
	TotalAmount   float64              `db:"total_amount"`
}
