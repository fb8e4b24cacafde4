package request

type CreateBookingRequest struct {
	GuestID       string `json:"guest_id" validate:"required,uuid4"`
	RoomID        string `json:"room_id" validate:"required,uuid4"`
	CheckIn       string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut      string `json:"check_out" validate:"required,datetime=2006-01-02"`
	PaymentMethod string `json:"payment_method" validate:"required,max=40"`
}

// UpdateBookingRequest patches booking fields without running lifecycle
// side effects. Status changes go through the status endpoints.
type UpdateBookingRequest struct {
	CheckIn       *string  `json:"check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut      *string  `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod *string  `json:"payment_method,omitempty" validate:"omitempty,max=40"`
	PaymentStatus *string  `json:"payment_status,omitempty" validate:"omitempty,oneof=pending partial paid refunded"`
	TotalAmount   *float64 `json:"total_amount,omitempty" validate:"omitempty,gt=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=reserved checked_in checked_out cancelled"`
}

type UpdateBookingPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending partial paid refunded"`
}
