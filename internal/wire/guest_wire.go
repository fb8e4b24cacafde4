package wire

import (
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGuest(r chi.Router, guestHandler *adaptor.GuestHandler) {
	r.Route("/api/guests", func(r chi.Router) {
		// POST /api/guests - Register a new guest
		r.Post("/", guestHandler.CreateGuest)

		// GET /api/guests - List guests with pagination
		r.Get("/", guestHandler.GetGuests)

		// POST /api/guests/sync-status - Repair every guest's derived status
		r.Post("/sync-status", guestHandler.SyncAllGuestStatuses)

		// GET /api/guests/{id} - Guest details
		r.Get("/{id}", guestHandler.GetGuestByID)

		// PUT /api/guests/{id} - Edit guest fields (never status)
		r.Put("/{id}", guestHandler.UpdateGuest)

		// DELETE /api/guests/{id} - Remove a guest without active bookings
		r.Delete("/{id}", guestHandler.DeleteGuest)

		// POST /api/guests/{id}/sync-status - Recompute one guest's status
		r.Post("/{id}/sync-status", guestHandler.SyncGuestStatus)
	})
}
