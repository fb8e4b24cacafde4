package entity

import "time"

type GuestStatus string

const (
	GuestStatusNoStay    GuestStatus = "no_stay"
	GuestStatusReserved  GuestStatus = "reserved"
	GuestStatusCheckedIn GuestStatus = "checked_in"
)

// Guest.Status is derived from the guest's active bookings and written
// only by the status synchronizer.
type Guest struct {
	Base
	Name      string      `db:"name"`
	Email     string      `db:"email"`
	Phone     string      `db:"phone"`
	Status    GuestStatus `db:"status"`
	BirthDate *time.Time  `db:"birth_date"`
	Gender    *string     `db:"gender"`
	Address   *string     `db:"address"`
	TaxID     *string     `db:"tax_id"`
}
