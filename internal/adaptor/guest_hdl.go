package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/dto/request"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/usecase"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GuestHandler struct {
	service usecase.GuestService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// CreateGuest handles POST /api/guests
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guest, err := h.service.CreateGuest(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create guest")
		return
	}

	utils.ResponseCreated(w, "success", guest)
}

// GetGuests handles GET /api/guests
func (h *GuestHandler) GetGuests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	guests, err := h.service.GetGuests(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get guests")
		return
	}

	utils.ResponseSuccess(w, "success", guests)
}

// GetGuestByID handles GET /api/guests/{id}
func (h *GuestHandler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	guest, err := h.service.GetGuestByID(r.Context(), guestID)
	if err != nil {
		h.handleServiceError(w, err, "get guest by ID")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// UpdateGuest handles PUT /api/guests/{id}
func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	var req request.UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guest, err := h.service.UpdateGuest(r.Context(), guestID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update guest")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// DeleteGuest handles DELETE /api/guests/{id}
func (h *GuestHandler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	if err := h.service.DeleteGuest(r.Context(), guestID); err != nil {
		h.handleServiceError(w, err, "delete guest")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SyncGuestStatus handles POST /api/guests/{id}/sync-status
func (h *GuestHandler) SyncGuestStatus(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	status, err := h.service.SyncGuestStatus(r.Context(), guestID)
	if err != nil {
		h.handleServiceError(w, err, "sync guest status")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{"status": string(status)})
}

// SyncAllGuestStatuses handles POST /api/guests/sync-status
func (h *GuestHandler) SyncAllGuestStatuses(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.SyncAllGuestStatuses(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "sync all guest statuses")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// handleServiceError maps service errors for guest operations
func (h *GuestHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
