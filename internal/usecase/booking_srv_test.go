package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestGuest(status entity.GuestStatus) *entity.Guest {
	now := time.Now()
	return &entity.Guest{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:   "Maria Souza",
		Email:  "maria@example.com",
		Phone:  "+55 11 99999-0000",
		Status: status,
	}
}

func newTestRoom(number string, rate float64) *entity.Room {
	now := time.Now()
	return &entity.Room{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Number:      number,
		Type:        entity.RoomTypeDouble,
		Status:      entity.RoomStatusAvailable,
		NightlyRate: rate,
	}
}

func newTestBooking(guestID, roomID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Code:          "RSV-20260301-120000-TEST",
		GuestID:       guestID,
		RoomID:        roomID,
		CheckIn:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:        status,
		PaymentStatus: entity.BookingPaymentPending,
		PaymentMethod: "card",
		TotalAmount:   450,
	}
}

func TestCreateBookingComputesTotalAndLeavesRoomUntouched(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusNoStay)
	room := newTestRoom("101", 150)

	rooms := &fakeRoomRepo{rooms: []*entity.Room{room}}
	guests := &fakeGuestRepo{guests: []*entity.Guest{guest}}
	bookings := &fakeBookingRepo{}
	repo := newTestRepository(rooms, guests, bookings, nil)

	publisher := &recordingPublisher{}
	guestSrv := NewGuestService(repo, zap.NewNop())
	srv := NewBookingService(repo, guestSrv, publisher, zap.NewNop())

	resp, err := srv.CreateBooking(context.Background(), &request.CreateBookingRequest{
		GuestID:       guest.ID.String(),
		RoomID:        room.ID.String(),
		CheckIn:       "2026-03-01",
		CheckOut:      "2026-03-04",
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if resp.Nights != 3 {
		t.Errorf("nights = %d, want 3", resp.Nights)
	}
	if resp.TotalAmount != 450 {
		t.Errorf("total amount = %v, want 450", resp.TotalAmount)
	}
	if resp.Status != entity.BookingStatusReserved {
		t.Errorf("status = %s, want reserved", resp.Status)
	}
	if resp.PaymentStatus != entity.BookingPaymentPending {
		t.Errorf("payment status = %s, want pending", resp.PaymentStatus)
	}

	// Reserving never touches the physical room
	if len(rooms.statusWrites) != 0 {
		t.Errorf("room status writes = %d, want 0", len(rooms.statusWrites))
	}
	if room.Status != entity.RoomStatusAvailable {
		t.Errorf("room status = %s, want available", room.Status)
	}

	// Guest is synchronized to reserved
	if guest.Status != entity.GuestStatusReserved {
		t.Errorf("guest status = %s, want reserved", guest.Status)
	}

	if len(publisher.events) != 1 {
		t.Fatalf("published events = %d, want 1", len(publisher.events))
	}
	if publisher.events[0].Status != string(entity.BookingStatusReserved) {
		t.Errorf("event status = %s, want reserved", publisher.events[0].Status)
	}
}

func TestCreateBookingRejectsBadDateOrder(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusNoStay)
	room := newTestRoom("102", 200)

	bookings := &fakeBookingRepo{}
	repo := newTestRepository(
		&fakeRoomRepo{rooms: []*entity.Room{room}},
		&fakeGuestRepo{guests: []*entity.Guest{guest}},
		bookings,
		nil,
	)
	srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

	for _, checkOut := range []string{"2026-03-01", "2026-02-27"} {
		_, err := srv.CreateBooking(context.Background(), &request.CreateBookingRequest{
			GuestID:       guest.ID.String(),
			RoomID:        room.ID.String(),
			CheckIn:       "2026-03-01",
			CheckOut:      checkOut,
			PaymentMethod: "cash",
		})
		if err == nil {
			t.Fatalf("CreateBooking with check_out %s: expected error", checkOut)
		}
		if !strings.Contains(err.Error(), "check_out must be after check_in") {
			t.Errorf("error = %v, want date order message", err)
		}
	}

	if len(bookings.bookings) != 0 {
		t.Errorf("bookings persisted = %d, want 0", len(bookings.bookings))
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusNoStay)
	room := newTestRoom("103", 100)
	existing := newTestBooking(uuid.New(), room.ID, entity.BookingStatusReserved)

	repo := newTestRepository(
		&fakeRoomRepo{rooms: []*entity.Room{room}},
		&fakeGuestRepo{guests: []*entity.Guest{guest}},
		&fakeBookingRepo{bookings: []*entity.Booking{existing}},
		nil,
	)
	srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

	_, err := srv.CreateBooking(context.Background(), &request.CreateBookingRequest{
		GuestID:       guest.ID.String(),
		RoomID:        room.ID.String(),
		CheckIn:       "2026-03-03",
		CheckOut:      "2026-03-05",
		PaymentMethod: "card",
	})
	if err == nil {
		t.Fatal("expected overlap rejection")
	}
	if !strings.Contains(err.Error(), "already booked") {
		t.Errorf("error = %v, want already booked", err)
	}

	// A cancelled booking over the same dates does not block
	existing.Status = entity.BookingStatusCancelled
	if _, err := srv.CreateBooking(context.Background(), &request.CreateBookingRequest{
		GuestID:       guest.ID.String(),
		RoomID:        room.ID.String(),
		CheckIn:       "2026-03-03",
		CheckOut:      "2026-03-05",
		PaymentMethod: "card",
	}); err != nil {
		t.Fatalf("CreateBooking over cancelled dates: %v", err)
	}
}

func TestCheckInMarksRoomOccupied(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusReserved)
	room := newTestRoom("201", 150)
	booking := newTestBooking(guest.ID, room.ID, entity.BookingStatusReserved)

	rooms := &fakeRoomRepo{rooms: []*entity.Room{room}}
	repo := newTestRepository(
		rooms,
		&fakeGuestRepo{guests: []*entity.Guest{guest}},
		&fakeBookingRepo{bookings: []*entity.Booking{booking}},
		nil,
	)
	srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

	if err := srv.CheckIn(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	if booking.Status != entity.BookingStatusCheckedIn {
		t.Errorf("booking status = %s, want checked_in", booking.Status)
	}
	if room.Status != entity.RoomStatusOccupied {
		t.Errorf("room status = %s, want occupied", room.Status)
	}
	if guest.Status != entity.GuestStatusCheckedIn {
		t.Errorf("guest status = %s, want checked_in", guest.Status)
	}
}

func TestCheckOutSurvivesRoomWriteFailure(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusCheckedIn)
	room := newTestRoom("202", 150)
	booking := newTestBooking(guest.ID, room.ID, entity.BookingStatusCheckedIn)

	rooms := &fakeRoomRepo{rooms: []*entity.Room{room}, updateStatusErr: errNotFound}
	repo := newTestRepository(
		rooms,
		&fakeGuestRepo{guests: []*entity.Guest{guest}},
		&fakeBookingRepo{bookings: []*entity.Booking{booking}},
		nil,
	)
	srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

	// The room write fails, the check-out still stands
	if err := srv.CheckOut(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}

	if booking.Status != entity.BookingStatusCheckedOut {
		t.Errorf("booking status = %s, want checked_out", booking.Status)
	}
	if guest.Status != entity.GuestStatusNoStay {
		t.Errorf("guest status = %s, want no_stay", guest.Status)
	}
}

func TestCheckOutSendsRoomToCleaning(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusCheckedIn)
	room := newTestRoom("203", 150)
	room.Status = entity.RoomStatusOccupied
	booking := newTestBooking(guest.ID, room.ID, entity.BookingStatusCheckedIn)

	repo := newTestRepository(
		&fakeRoomRepo{rooms: []*entity.Room{room}},
		&fakeGuestRepo{guests: []*entity.Guest{guest}},
		&fakeBookingRepo{bookings: []*entity.Booking{booking}},
		nil,
	)
	srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

	if err := srv.CheckOut(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}

	if room.Status != entity.RoomStatusCleaning {
		t.Errorf("room status = %s, want cleaning", room.Status)
	}
}

func TestTerminalBookingsRejectTransitions(t *testing.T) {
	cases := []struct {
		from entity.BookingStatus
		to   entity.BookingStatus
	}{
		{entity.BookingStatusCheckedOut, entity.BookingStatusCheckedIn},
		{entity.BookingStatusCheckedOut, entity.BookingStatusCancelled},
		{entity.BookingStatusCancelled, entity.BookingStatusReserved},
		{entity.BookingStatusCancelled, entity.BookingStatusCheckedIn},
		{entity.BookingStatusReserved, entity.BookingStatusCheckedOut},
	}

	for _, tc := range cases {
		guest := newTestGuest(entity.GuestStatusNoStay)
		room := newTestRoom("301", 100)
		booking := newTestBooking(guest.ID, room.ID, tc.from)

		repo := newTestRepository(
			&fakeRoomRepo{rooms: []*entity.Room{room}},
			&fakeGuestRepo{guests: []*entity.Guest{guest}},
			&fakeBookingRepo{bookings: []*entity.Booking{booking}},
			nil,
		)
		srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

		err := srv.UpdateBookingStatus(context.Background(), booking.ID.String(), tc.to)
		if err == nil {
			t.Errorf("%s -> %s: expected rejection", tc.from, tc.to)
			continue
		}
		if !strings.Contains(err.Error(), "cannot change booking") {
			t.Errorf("%s -> %s: error = %v", tc.from, tc.to, err)
		}
		if booking.Status != tc.from {
			t.Errorf("%s -> %s: status mutated to %s", tc.from, tc.to, booking.Status)
		}
	}
}

func TestUpdateBookingStatusSameStatusIsNoOp(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusReserved)
	room := newTestRoom("302", 100)
	booking := newTestBooking(guest.ID, room.ID, entity.BookingStatusReserved)

	bookings := &fakeBookingRepo{bookings: []*entity.Booking{booking}}
	repo := newTestRepository(
		&fakeRoomRepo{rooms: []*entity.Room{room}},
		&fakeGuestRepo{guests: []*entity.Guest{guest}},
		bookings,
		nil,
	)
	publisher := &recordingPublisher{}
	srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), publisher, zap.NewNop())

	if err := srv.UpdateBookingStatus(context.Background(), booking.ID.String(), entity.BookingStatusReserved); err != nil {
		t.Fatalf("UpdateBookingStatus: %v", err)
	}

	if len(bookings.statusWrites) != 0 {
		t.Errorf("booking status writes = %d, want 0", len(bookings.statusWrites))
	}
	if len(publisher.events) != 0 {
		t.Errorf("published events = %d, want 0", len(publisher.events))
	}
}

func TestUpdateBookingPaymentStatusHasNoLifecycleSideEffects(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusReserved)
	room := newTestRoom("303", 100)
	booking := newTestBooking(guest.ID, room.ID, entity.BookingStatusReserved)

	rooms := &fakeRoomRepo{rooms: []*entity.Room{room}}
	guests := &fakeGuestRepo{guests: []*entity.Guest{guest}}
	repo := newTestRepository(rooms, guests,
		&fakeBookingRepo{bookings: []*entity.Booking{booking}}, nil)
	srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

	if err := srv.UpdateBookingPaymentStatus(context.Background(), booking.ID.String(), entity.BookingPaymentPaid); err != nil {
		t.Fatalf("UpdateBookingPaymentStatus: %v", err)
	}

	if booking.PaymentStatus != entity.BookingPaymentPaid {
		t.Errorf("payment status = %s, want paid", booking.PaymentStatus)
	}
	if len(rooms.statusWrites) != 0 {
		t.Errorf("room status writes = %d, want 0", len(rooms.statusWrites))
	}
	if len(guests.statusWrites) != 0 {
		t.Errorf("guest status writes = %d, want 0", len(guests.statusWrites))
	}
}

func TestDeleteBookingRejectsActive(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusReserved)
	room := newTestRoom("304", 100)

	for _, status := range []entity.BookingStatus{entity.BookingStatusReserved, entity.BookingStatusCheckedIn} {
		booking := newTestBooking(guest.ID, room.ID, status)
		bookings := &fakeBookingRepo{bookings: []*entity.Booking{booking}}
		repo := newTestRepository(nil, nil, bookings, nil)
		srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

		if err := srv.DeleteBooking(context.Background(), booking.ID.String()); err == nil {
			t.Errorf("delete %s booking: expected rejection", status)
		}
		if len(bookings.bookings) != 1 {
			t.Errorf("delete %s booking: booking removed", status)
		}
	}

	// Cancelled bookings can go
	booking := newTestBooking(guest.ID, room.ID, entity.BookingStatusCancelled)
	bookings := &fakeBookingRepo{bookings: []*entity.Booking{booking}}
	repo := newTestRepository(nil, nil, bookings, nil)
	srv := NewBookingService(repo, NewGuestService(repo, zap.NewNop()), &recordingPublisher{}, zap.NewNop())

	if err := srv.DeleteBooking(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("DeleteBooking cancelled: %v", err)
	}
	if len(bookings.bookings) != 0 {
		t.Error("cancelled booking not removed")
	}
}
