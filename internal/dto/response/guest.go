package response

import (
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
)

type GuestResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Status    entity.GuestStatus `json:"status"`
	BirthDate *string            `json:"birth_date,omitempty"`
	Gender    *string            `json:"gender,omitempty"`
	Address   *string            `json:"address,omitempty"`
	TaxID     *string            `json:"tax_id,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

func GuestToResponse(guest *entity.Guest) GuestResponse {
	resp := GuestResponse{
		ID:        guest.ID.String(),
		Name:      guest.Name,
		Email:     guest.Email,
		Phone:     guest.Phone,
		Status:    guest.Status,
		Gender:    guest.Gender,
		Address:   guest.Address,
		TaxID:     guest.TaxID,
		CreatedAt: guest.CreatedAt,
	}
	if guest.BirthDate != nil {
		birthDate := guest.BirthDate.Format("2006-01-02")
		resp.BirthDate = &birthDate
	}
	return resp
}

// GuestSyncReport summarizes a batch status-synchronization run.
type GuestSyncReport struct {
	Checked int `json:"checked"`
	Changed int `json:"changed"`
	Failed  int `json:"failed"`
}
