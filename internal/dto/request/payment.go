package request

type CreatePaymentRequest struct {
	BookingID   string  `json:"booking_id" validate:"required,uuid4"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Method      string  `json:"method" validate:"required,max=40"`
	PaymentDate *string `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=processing approved rejected refunded"`
}
