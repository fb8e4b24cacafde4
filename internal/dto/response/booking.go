package response

import (
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
)

type BookingResponse struct {
	ID            string                      `json:"id"`
	Code          string                      `json:"code"`
	GuestID       string                      `json:"guest_id"`
	RoomID        string                      `json:"room_id"`
	GuestName     string                      `json:"guest_name,omitempty"`
	RoomNumber    string                      `json:"room_number,omitempty"`
	CheckIn       string                      `json:"check_in"`
	CheckOut      string                      `json:"check_out"`
	Nights        int                         `json:"nights"`
	Status        entity.BookingStatus        `json:"status"`
	PaymentStatus entity.BookingPaymentStatus `json:"payment_status"`
	PaymentMethod string                      `json:"payment_method"`
	TotalAmount   float64                     `json:"total_amount"`
	Payments      []PaymentResponse           `json:"payments,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Guest *GuestResponse `json:"guest,omitempty"`
	Room  *RoomResponse  `json:"room,omitempty"`
}
