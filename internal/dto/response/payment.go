package response

import (
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
)

type PaymentResponse struct {
	ID          string               `json:"id"`
	BookingID   string               `json:"booking_id"`
	BookingCode string               `json:"booking_code,omitempty"`
	Amount      float64              `json:"amount"`
	Method      string               `json:"method"`
	Status      entity.PaymentStatus `json:"status"`
	PaymentDate string               `json:"payment_date"`
	CreatedAt   time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          payment.ID.String(),
		BookingID:   payment.BookingID.String(),
		Amount:      payment.Amount,
		Method:      payment.Method,
		Status:      payment.Status,
		PaymentDate: payment.PaymentDate.Format("2006-01-02"),
		CreatedAt:   payment.CreatedAt,
	}
}
