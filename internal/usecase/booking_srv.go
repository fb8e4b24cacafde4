package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/repository"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/dto/request"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/dto/response"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/events"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error

	// Lifecycle
	CheckIn(ctx context.Context, bookingID string) error
	CheckOut(ctx context.Context, bookingID string) error
	CancelBooking(ctx context.Context, bookingID string) error
	UpdateBookingStatus(ctx context.Context, bookingID string, newStatus entity.BookingStatus) error
	UpdateBookingPaymentStatus(ctx context.Context, bookingID string, newStatus entity.BookingPaymentStatus) error
}

// guestSynchronizer is the slice of GuestService the lifecycle needs.
type guestSynchronizer interface {
	SyncGuestStatus(ctx context.Context, guestID string) (entity.GuestStatus, error)
}

type bookingService struct {
	repo      *repository.Repository
	guests    guestSynchronizer
	publisher events.Publisher
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, guests guestSynchronizer, publisher events.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		guests:    guests,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

// canTransition is the single authority for the booking state machine.
// checked_out and cancelled are terminal.
func canTransition(from, to entity.BookingStatus) bool {
	switch from {
	case entity.BookingStatusReserved:
		return to == entity.BookingStatusCheckedIn || to == entity.BookingStatusCancelled
	case entity.BookingStatusCheckedIn:
		return to == entity.BookingStatusCheckedOut
	default:
		return false
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", req.GuestID, err)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %s: %w", req.CheckIn, err)
	}

	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %s: %w", req.CheckOut, err)
	}

	// Rejected before any persistence write
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("validation failed: check_out must be after check_in")
	}

	guest, err := s.repo.Guest.FindByID(ctx, guestID)
	if err != nil || guest == nil {
		return nil, fmt.Errorf("guest %s not found", req.GuestID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", req.RoomID)
	}

	overlapping, err := s.repo.Booking.CountActiveOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to check room availability", zap.Error(err))
		return nil, fmt.Errorf("check room availability: %w", err)
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("room %s is already booked for the selected dates", room.Number)
	}

	nights := utils.Nights(checkIn, checkOut)

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:          utils.GenerateBookingCode(),
		GuestID:       guestID,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        entity.BookingStatusReserved,
		PaymentStatus: entity.BookingPaymentPending,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   float64(nights) * room.NightlyRate,
	}

	// Reserving does not occupy the physical room: Room.Status stays as is
	// until check-in.
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("guest_id", req.GuestID),
			zap.String("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("code", booking.Code),
		zap.String("guest_id", req.GuestID),
		zap.String("room_number", room.Number),
		zap.Int("nights", nights),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	s.syncGuest(ctx, booking.GuestID)
	s.publishEvent(ctx, booking)

	resp := s.buildBookingResponse(booking, guest.Name, room.Number)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		var guestName, roomNumber string

		guest, _ := s.repo.Guest.FindByID(ctx, booking.GuestID)
		if guest != nil {
			guestName = guest.Name
		}

		room, _ := s.repo.Room.FindByID(ctx, booking.RoomID)
		if room != nil {
			roomNumber = room.Number
		}

		bookingResponses[i] = s.buildBookingResponse(booking, guestName, roomNumber)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	var guestName, roomNumber string
	detail := &response.BookingDetailResponse{}

	guest, _ := s.repo.Guest.FindByID(ctx, booking.GuestID)
	if guest != nil {
		guestName = guest.Name
		guestResp := response.GuestToResponse(guest)
		detail.Guest = &guestResp
	}

	room, _ := s.repo.Room.FindByID(ctx, booking.RoomID)
	if room != nil {
		roomNumber = room.Number
		roomResp := response.RoomToResponse(room)
		detail.Room = &roomResp
	}

	detail.BookingResponse = s.buildBookingResponse(booking, guestName, roomNumber)

	payments, _ := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	for _, payment := range payments {
		paymentResp := response.PaymentToResponse(payment)
		paymentResp.BookingCode = booking.Code
		detail.Payments = append(detail.Payments, paymentResp)
	}

	return detail, nil
}

// UpdateBooking patches fields of an existing booking without running
// lifecycle side effects.
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if req.CheckIn != nil {
		checkIn, err := utils.ParseDate(*req.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("invalid check-in date %s: %w", *req.CheckIn, err)
		}
		booking.CheckIn = checkIn
	}
	if req.CheckOut != nil {
		checkOut, err := utils.ParseDate(*req.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("invalid check-out date %s: %w", *req.CheckOut, err)
		}
		booking.CheckOut = checkOut
	}
	if !booking.CheckOut.After(booking.CheckIn) {
		return nil, fmt.Errorf("validation failed: check_out must be after check_in")
	}

	if req.PaymentMethod != nil {
		booking.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		booking.PaymentStatus = entity.BookingPaymentStatus(*req.PaymentStatus)
	}
	if req.TotalAmount != nil {
		booking.TotalAmount = *req.TotalAmount
	}
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	resp := s.buildBookingResponse(booking, "", "")
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status.Active() {
		return fmt.Errorf("cannot delete active booking %s, cancel it first", bookingID)
	}

	return s.repo.Booking.Delete(ctx, booking.ID)
}

// CheckIn moves the booking to checked_in and marks the room occupied.
func (s *bookingService) CheckIn(ctx context.Context, bookingID string) error {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.transition(ctx, booking, entity.BookingStatusCheckedIn); err != nil {
		return err
	}

	if err := s.repo.Room.UpdateStatus(ctx, booking.RoomID, entity.RoomStatusOccupied); err != nil {
		// The booking is already checked in; the room write is not rolled
		// back. The status sweep and the next lifecycle call repair it.
		s.log.Error("Failed to mark room occupied after check-in",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("room_id", booking.RoomID.String()),
		)
	}

	return nil
}

// CheckOut moves the booking to checked_out and sends the room to
// cleaning. If the booking write fails the room is untouched; if the
// room write fails afterwards it is logged, not rolled back.
func (s *bookingService) CheckOut(ctx context.Context, bookingID string) error {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	return s.transition(ctx, booking, entity.BookingStatusCheckedOut)
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	return s.transition(ctx, booking, entity.BookingStatusCancelled)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, newStatus entity.BookingStatus) error {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.transition(ctx, booking, newStatus); err != nil {
		return err
	}

	if newStatus == entity.BookingStatusCheckedIn {
		if err := s.repo.Room.UpdateStatus(ctx, booking.RoomID, entity.RoomStatusOccupied); err != nil {
			s.log.Error("Failed to mark room occupied",
				zap.Error(err),
				zap.String("booking_id", bookingID),
				zap.String("room_id", booking.RoomID.String()),
			)
		}
	}

	return nil
}

func (s *bookingService) UpdateBookingPaymentStatus(ctx context.Context, bookingID string, newStatus entity.BookingPaymentStatus) error {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	// Payment status is independent of the lifecycle: no room or guest
	// side effects.
	if err := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, newStatus); err != nil {
		s.log.Error("Failed to update booking payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("update booking %s payment status: %w", bookingID, err)
	}

	s.log.Info("Booking payment status updated",
		zap.String("booking_id", bookingID),
		zap.String("payment_status", string(newStatus)),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) loadBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, nil
}

// transition applies a lifecycle status change: booking row first, then
// the room side effect derived from the new status, then guest resync.
// Only the booking write can fail the operation; the rest is best-effort
// and logged.
func (s *bookingService) transition(ctx context.Context, booking *entity.Booking, newStatus entity.BookingStatus) error {
	if booking.Status == newStatus {
		return nil
	}

	if !canTransition(booking.Status, newStatus) {
		return fmt.Errorf("cannot change booking %s status from %s to %s",
			booking.ID.String(), booking.Status, newStatus)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("status", string(newStatus)),
		)
		return fmt.Errorf("update booking %s status: %w", booking.ID.String(), err)
	}

	booking.Status = newStatus

	if newStatus == entity.BookingStatusCheckedOut {
		if err := s.repo.Room.UpdateStatus(ctx, booking.RoomID, entity.RoomStatusCleaning); err != nil {
			s.log.Error("Failed to send room to cleaning after check-out",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("room_id", booking.RoomID.String()),
			)
		}
	}

	s.log.Info("Booking status changed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("code", booking.Code),
		zap.String("status", string(newStatus)),
	)

	s.syncGuest(ctx, booking.GuestID)
	s.publishEvent(ctx, booking)

	return nil
}

func (s *bookingService) syncGuest(ctx context.Context, guestID uuid.UUID) {
	if _, err := s.guests.SyncGuestStatus(ctx, guestID.String()); err != nil {
		s.log.Warn("Guest status sync failed after booking change",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
	}
}

func (s *bookingService) publishEvent(ctx context.Context, booking *entity.Booking) {
	event := events.BookingEvent{
		BookingID:   booking.ID.String(),
		Code:        booking.Code,
		GuestID:     booking.GuestID.String(),
		RoomID:      booking.RoomID.String(),
		Status:      string(booking.Status),
		TotalAmount: booking.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}

	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		s.log.Warn("Booking event publish failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

func (s *bookingService) buildBookingResponse(booking *entity.Booking, guestName, roomNumber string) response.BookingResponse {
	return response.BookingResponse{
		ID:            booking.ID.String(),
		Code:          booking.Code,
		GuestID:       booking.GuestID.String(),
		RoomID:        booking.RoomID.String(),
		GuestName:     guestName,
		RoomNumber:    roomNumber,
		CheckIn:       booking.CheckIn.Format("2006-01-02"),
		CheckOut:      booking.CheckOut.Format("2006-01-02"),
		Nights:        utils.Nights(booking.CheckIn, booking.CheckOut),
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		PaymentMethod: booking.PaymentMethod,
		TotalAmount:   booking.TotalAmount,
		CreatedAt:     booking.CreatedAt,
	}
}
