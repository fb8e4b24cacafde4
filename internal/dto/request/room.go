package request

// Room status is not accepted here: it is owned by the booking
// lifecycle (check-in/check-out), never edited directly.

type CreateRoomRequest struct {
	Number      string  `json:"number" validate:"required,max=10"`
	Type        string  `json:"type" validate:"required,oneof=single double"`
	NightlyRate float64 `json:"nightly_rate" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=1000"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateRoomRequest struct {
	Number      *string  `json:"number,omitempty" validate:"omitempty,max=10"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=single double"`
	NightlyRate *float64 `json:"nightly_rate,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}
