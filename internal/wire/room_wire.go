package wire

import (
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	r.Route("/api/rooms", func(r chi.Router) {
		// POST /api/rooms - Register a new room
		r.Post("/", roomHandler.CreateRoom)

		// GET /api/rooms - List rooms with pagination
		r.Get("/", roomHandler.GetRooms)

		// GET /api/rooms/{id} - Room details
		r.Get("/{id}", roomHandler.GetRoomByID)

		// PUT /api/rooms/{id} - Edit descriptive fields (never status)
		r.Put("/{id}", roomHandler.UpdateRoom)

		// DELETE /api/rooms/{id} - Remove a room
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})
}
