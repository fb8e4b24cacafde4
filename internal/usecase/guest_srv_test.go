package usecase

import (
	"context"
	"testing"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestDeriveGuestStatus(t *testing.T) {
	booking := func(status entity.BookingStatus) *entity.Booking {
		return &entity.Booking{Status: status}
	}

	cases := []struct {
		name     string
		bookings []*entity.Booking
		want     entity.GuestStatus
	}{
		{
			name:     "no bookings",
			bookings: nil,
			want:     entity.GuestStatusNoStay,
		},
		{
			name:     "single reservation",
			bookings: []*entity.Booking{booking(entity.BookingStatusReserved)},
			want:     entity.GuestStatusReserved,
		},
		{
			name: "checked in wins over reservation",
			bookings: []*entity.Booking{
				booking(entity.BookingStatusReserved),
				booking(entity.BookingStatusCheckedIn),
			},
			want: entity.GuestStatusCheckedIn,
		},
		{
			name: "order does not matter",
			bookings: []*entity.Booking{
				booking(entity.BookingStatusCheckedIn),
				booking(entity.BookingStatusReserved),
			},
			want: entity.GuestStatusCheckedIn,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveGuestStatus(tc.bookings); got != tc.want {
				t.Errorf("DeriveGuestStatus = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSyncGuestStatusWritesOnlyOnChange(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusNoStay)
	booking := newTestBooking(guest.ID, uuid.New(), entity.BookingStatusReserved)

	guests := &fakeGuestRepo{guests: []*entity.Guest{guest}}
	repo := newTestRepository(nil, guests,
		&fakeBookingRepo{bookings: []*entity.Booking{booking}}, nil)
	srv := NewGuestService(repo, zap.NewNop())

	status, err := srv.SyncGuestStatus(context.Background(), guest.ID.String())
	if err != nil {
		t.Fatalf("SyncGuestStatus: %v", err)
	}
	if status != entity.GuestStatusReserved {
		t.Errorf("status = %s, want reserved", status)
	}
	if len(guests.statusWrites) != 1 {
		t.Fatalf("status writes = %d, want 1", len(guests.statusWrites))
	}

	// Second sync with no booking change writes nothing
	if _, err := srv.SyncGuestStatus(context.Background(), guest.ID.String()); err != nil {
		t.Fatalf("SyncGuestStatus again: %v", err)
	}
	if len(guests.statusWrites) != 1 {
		t.Errorf("status writes after idempotent sync = %d, want 1", len(guests.statusWrites))
	}
}

func TestSyncGuestStatusIgnoresTerminalBookings(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusCheckedIn)
	checkedOut := newTestBooking(guest.ID, uuid.New(), entity.BookingStatusCheckedOut)
	cancelled := newTestBooking(guest.ID, uuid.New(), entity.BookingStatusCancelled)

	repo := newTestRepository(nil,
		&fakeGuestRepo{guests: []*entity.Guest{guest}},
		&fakeBookingRepo{bookings: []*entity.Booking{checkedOut, cancelled}}, nil)
	srv := NewGuestService(repo, zap.NewNop())

	status, err := srv.SyncGuestStatus(context.Background(), guest.ID.String())
	if err != nil {
		t.Fatalf("SyncGuestStatus: %v", err)
	}
	if status != entity.GuestStatusNoStay {
		t.Errorf("status = %s, want no_stay", status)
	}
	if guest.Status != entity.GuestStatusNoStay {
		t.Errorf("persisted status = %s, want no_stay", guest.Status)
	}
}

func TestSyncAllGuestStatusesContinuesOnFailure(t *testing.T) {
	healthy := newTestGuest(entity.GuestStatusNoStay)
	broken := newTestGuest(entity.GuestStatusNoStay)
	current := newTestGuest(entity.GuestStatusNoStay)

	healthyBooking := newTestBooking(healthy.ID, uuid.New(), entity.BookingStatusReserved)
	brokenBooking := newTestBooking(broken.ID, uuid.New(), entity.BookingStatusCheckedIn)

	guests := &fakeGuestRepo{
		guests:        []*entity.Guest{healthy, broken, current},
		failStatusFor: map[uuid.UUID]bool{broken.ID: true},
	}
	repo := newTestRepository(nil, guests,
		&fakeBookingRepo{bookings: []*entity.Booking{healthyBooking, brokenBooking}}, nil)
	srv := NewGuestService(repo, zap.NewNop())

	report, err := srv.SyncAllGuestStatuses(context.Background())
	if err != nil {
		t.Fatalf("SyncAllGuestStatuses: %v", err)
	}

	if report.Checked != 3 {
		t.Errorf("checked = %d, want 3", report.Checked)
	}
	if report.Changed != 1 {
		t.Errorf("changed = %d, want 1", report.Changed)
	}
	if report.Failed != 1 {
		t.Errorf("failed = %d, want 1", report.Failed)
	}

	if healthy.Status != entity.GuestStatusReserved {
		t.Errorf("healthy guest status = %s, want reserved", healthy.Status)
	}
	// The broken write leaves the stored status alone
	if broken.Status != entity.GuestStatusNoStay {
		t.Errorf("broken guest status = %s, want no_stay", broken.Status)
	}
}

func TestDeleteGuestRejectsActiveBookings(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusReserved)
	booking := newTestBooking(guest.ID, uuid.New(), entity.BookingStatusReserved)

	guests := &fakeGuestRepo{guests: []*entity.Guest{guest}}
	repo := newTestRepository(nil, guests,
		&fakeBookingRepo{bookings: []*entity.Booking{booking}}, nil)
	srv := NewGuestService(repo, zap.NewNop())

	if err := srv.DeleteGuest(context.Background(), guest.ID.String()); err == nil {
		t.Fatal("expected rejection for guest with active booking")
	}
	if len(guests.guests) != 1 {
		t.Error("guest removed despite active booking")
	}

	// After the booking goes terminal the guest can be removed
	booking.Status = entity.BookingStatusCancelled
	if err := srv.DeleteGuest(context.Background(), guest.ID.String()); err != nil {
		t.Fatalf("DeleteGuest: %v", err)
	}
	if len(guests.guests) != 0 {
		t.Error("guest not removed")
	}
}
