package response

import (
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
)

type RoomResponse struct {
	ID          string            `json:"id"`
	Number      string            `json:"number"`
	Type        entity.RoomType   `json:"type"`
	Status      entity.RoomStatus `json:"status"`
	NightlyRate float64           `json:"nightly_rate"`
	Description string            `json:"description,omitempty"`
	ImageURL    *string           `json:"image_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		Number:      room.Number,
		Type:        room.Type,
		Status:      room.Status,
		NightlyRate: room.NightlyRate,
		Description: room.Description,
		ImageURL:    room.ImageURL,
		CreatedAt:   room.CreatedAt,
	}
}
