package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusApproved   PaymentStatus = "approved"
	PaymentStatusRejected   PaymentStatus = "rejected"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type Payment struct {
	Base
	BookingID   uuid.UUID     `db:"booking_id"`
	Amount      float64       `db:"amount"`
	Method      string        `db:"method"`
	Status      PaymentStatus `db:"status"`
	PaymentDate time.Time     `db:"payment_date"`
}
