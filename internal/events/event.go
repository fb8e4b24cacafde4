// Package events defines booking lifecycle messages published to the
// broker for downstream consumers (housekeeping boards, notifications,
// analytics) without querying the primary database.
package events

import "time"

type BookingEvent struct {
	BookingID   string    `json:"booking_id"`
	Code        string    `json:"code"`
	GuestID     string    `json:"guest_id"`
	RoomID      string    `json:"room_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}
