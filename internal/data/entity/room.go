package entity

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
)

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
	RoomStatusCleaning  RoomStatus = "cleaning"
)

// Room status is owned by the booking lifecycle: check-in sets occupied,
// check-out sets cleaning. Nothing else writes it.
type Room struct {
	Base
	Number      string     `db:"number"`
	Type        RoomType   `db:"type"`
	Status      RoomStatus `db:"status"`
	NightlyRate float64    `db:"nightly_rate"`
	Description string     `db:"description"`
	ImageURL    *string    `db:"image_url"`
}
