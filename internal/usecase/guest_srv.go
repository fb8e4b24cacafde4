package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/repository"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/dto/request"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/dto/response"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// batch size for the repair sweep
const syncPageSize = 200

type GuestService interface {
	CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error)
	GetGuests(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GuestResponse], error)
	GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error)
	UpdateGuest(ctx context.Context, guestID string, req *request.UpdateGuestRequest) (*response.GuestResponse, error)
	DeleteGuest(ctx context.Context, guestID string) error

	// Status synchronization
	SyncGuestStatus(ctx context.Context, guestID string) (entity.GuestStatus, error)
	SyncAllGuestStatuses(ctx context.Context) (*response.GuestSyncReport, error)
}

type guestService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGuestService(repo *repository.Repository, log *zap.Logger) GuestService {
	return &guestService{
		repo: repo,
		log:  log.With(zap.String("service", "guest")),
	}
}

// DeriveGuestStatus computes a guest's status from that guest's active
// bookings: any checked-in booking wins, then any reservation, otherwise
// the guest has no stay. Cancelled and checked-out bookings never count.
func DeriveGuestStatus(bookings []*entity.Booking) entity.GuestStatus {
	status := entity.GuestStatusNoStay
	for _, booking := range bookings {
		switch booking.Status {
		case entity.BookingStatusCheckedIn:
			return entity.GuestStatusCheckedIn
		case entity.BookingStatusReserved:
			status = entity.GuestStatusReserved
		}
	}
	return status
}

func (s *guestService) CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create guest validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  entity.GuestStatusNoStay,
		Gender:  req.Gender,
		Address: req.Address,
		TaxID:   req.TaxID,
	}

	if req.BirthDate != nil {
		birthDate, err := utils.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date %s: %w", *req.BirthDate, err)
		}
		guest.BirthDate = &birthDate
	}

	if err := s.repo.Guest.Create(ctx, guest); err != nil {
		s.log.Error("Failed to create guest", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create guest: %w", err)
	}

	s.log.Info("Guest created",
		zap.String("guest_id", guest.ID.String()),
		zap.String("name", guest.Name),
	)

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuests(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GuestResponse], error) {
	guests, err := s.repo.Guest.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get guests", zap.Error(err))
		return nil, fmt.Errorf("get guests: %w", err)
	}

	total, err := s.repo.Guest.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count guests", zap.Error(err))
		return nil, fmt.Errorf("count guests: %w", err)
	}

	guestResponses := make([]response.GuestResponse, len(guests))
	for i, guest := range guests {
		guestResponses[i] = response.GuestToResponse(guest)
	}

	return response.NewPaginatedResponse(guestResponses, req.Page, req.PerPage, total), nil
}

func (s *guestService) GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error) {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.repo.Guest.FindByID(ctx, id)
	if err != nil || guest == nil {
		return nil, fmt.Errorf("guest %s not found", guestID)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) UpdateGuest(ctx context.Context, guestID string, req *request.UpdateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update guest validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.repo.Guest.FindByID(ctx, id)
	if err != nil || guest == nil {
		return nil, fmt.Errorf("guest %s not found", guestID)
	}

	if req.Name != nil {
		guest.Name = *req.Name
	}
	if req.Email != nil {
		guest.Email = *req.Email
	}
	if req.Phone != nil {
		guest.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		birthDate, err := utils.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date %s: %w", *req.BirthDate, err)
		}
		guest.BirthDate = &birthDate
	}
	if req.Gender != nil {
		guest.Gender = req.Gender
	}
	if req.Address != nil {
		guest.Address = req.Address
	}
	if req.TaxID != nil {
		guest.TaxID = req.TaxID
	}
	guest.UpdatedAt = time.Now()

	if err := s.repo.Guest.Update(ctx, guest); err != nil {
		s.log.Error("Failed to update guest", zap.Error(err), zap.String("guest_id", guestID))
		return nil, fmt.Errorf("update guest %s: %w", guestID, err)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) DeleteGuest(ctx context.Context, guestID string) error {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.repo.Guest.FindByID(ctx, id)
	if err != nil || guest == nil {
		return fmt.Errorf("guest %s not found", guestID)
	}

	active, err := s.repo.Booking.FindActiveByGuestID(ctx, id)
	if err != nil {
		return fmt.Errorf("check active bookings for guest %s: %w", guestID, err)
	}
	if len(active) > 0 {
		return fmt.Errorf("cannot delete guest %s with active bookings", guestID)
	}

	return s.repo.Guest.Delete(ctx, id)
}

// SyncGuestStatus recomputes the guest's status from active bookings and
// persists it only when it changed. Idempotent: a second call with no
// intervening booking change writes nothing.
func (s *guestService) SyncGuestStatus(ctx context.Context, guestID string) (entity.GuestStatus, error) {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return "", fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.repo.Guest.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("sync guest status: %w", err)
	}
	if guest == nil {
		return "", fmt.Errorf("guest %s not found", guestID)
	}

	bookings, err := s.repo.Booking.FindActiveByGuestID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("sync guest status: %w", err)
	}

	status := DeriveGuestStatus(bookings)
	if status == guest.Status {
		return status, nil
	}

	if err := s.repo.Guest.UpdateStatus(ctx, id, status); err != nil {
		return "", fmt.Errorf("sync guest status: %w", err)
	}

	s.log.Info("Guest status synchronized",
		zap.String("guest_id", guestID),
		zap.String("from", string(guest.Status)),
		zap.String("to", string(status)),
	)

	return status, nil
}

// SyncAllGuestStatuses sweeps every guest and repairs diverged statuses.
// A failed guest is counted and skipped so one bad row cannot abort the
// whole batch.
func (s *guestService) SyncAllGuestStatuses(ctx context.Context) (*response.GuestSyncReport, error) {
	report := &response.GuestSyncReport{}

	for offset := 0; ; offset += syncPageSize {
		guests, err := s.repo.Guest.FindAll(ctx, syncPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("sync all guest statuses: %w", err)
		}
		if len(guests) == 0 {
			break
		}

		for _, guest := range guests {
			report.Checked++

			bookings, err := s.repo.Booking.FindActiveByGuestID(ctx, guest.ID)
			if err != nil {
				s.log.Warn("Skipping guest in status sweep",
					zap.Error(err),
					zap.String("guest_id", guest.ID.String()),
				)
				report.Failed++
				continue
			}

			status := DeriveGuestStatus(bookings)
			if status == guest.Status {
				continue
			}

			if err := s.repo.Guest.UpdateStatus(ctx, guest.ID, status); err != nil {
				s.log.Warn("Failed to repair guest status",
					zap.Error(err),
					zap.String("guest_id", guest.ID.String()),
				)
				report.Failed++
				continue
			}

			report.Changed++
		}

		if len(guests) < syncPageSize {
			break
		}
	}

	s.log.Info("Guest status sweep finished",
		zap.Int("checked", report.Checked),
		zap.Int("changed", report.Changed),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}
