package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/repository"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/events"

	"github.com/google/uuid"
)

var errNotFound = errors.New("not found")

// In-memory repository fakes. Slice-backed so iteration order is stable.

type roomStatusWrite struct {
	RoomID uuid.UUID
	Status entity.RoomStatus
}

type fakeRoomRepo struct {
	rooms           []*entity.Room
	statusWrites    []roomStatusWrite
	updateStatusErr error
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	f.rooms = append(f.rooms, room)
	return nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	for _, room := range f.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindByNumber(ctx context.Context, number string) (*entity.Room, error) {
	for _, room := range f.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error) {
	return paginate(f.rooms, limit, offset), nil
}

func (f *fakeRoomRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	for i, existing := range f.rooms {
		if existing.ID == room.ID {
			f.rooms[i] = room
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, room := range f.rooms {
		if room.ID == id {
			f.rooms = append(f.rooms[:i], f.rooms[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRoomRepo) CountByStatus(ctx context.Context, status entity.RoomStatus) (int64, error) {
	var count int64
	for _, room := range f.rooms {
		if room.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeRoomRepo) UpdateStatus(ctx context.Context, roomID uuid.UUID, status entity.RoomStatus) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.statusWrites = append(f.statusWrites, roomStatusWrite{RoomID: roomID, Status: status})
	for _, room := range f.rooms {
		if room.ID == roomID {
			room.Status = status
			return nil
		}
	}
	return errNotFound
}

type guestStatusWrite struct {
	GuestID uuid.UUID
	Status  entity.GuestStatus
}

type fakeGuestRepo struct {
	guests        []*entity.Guest
	statusWrites  []guestStatusWrite
	failStatusFor map[uuid.UUID]bool
}

func (f *fakeGuestRepo) Create(ctx context.Context, guest *entity.Guest) error {
	f.guests = append(f.guests, guest)
	return nil
}

func (f *fakeGuestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	for _, guest := range f.guests {
		if guest.ID == id {
			return guest, nil
		}
	}
	return nil, nil
}

func (f *fakeGuestRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Guest, error) {
	return paginate(f.guests, limit, offset), nil
}

func (f *fakeGuestRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.guests)), nil
}

func (f *fakeGuestRepo) Update(ctx context.Context, guest *entity.Guest) error {
	for i, existing := range f.guests {
		if existing.ID == guest.ID {
			f.guests[i] = guest
			return nil
		}
	}
	return errNotFound
}

func (f *fakeGuestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, guest := range f.guests {
		if guest.ID == id {
			f.guests = append(f.guests[:i], f.guests[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeGuestRepo) UpdateStatus(ctx context.Context, guestID uuid.UUID, status entity.GuestStatus) error {
	if f.failStatusFor[guestID] {
		return errors.New("write rejected")
	}
	f.statusWrites = append(f.statusWrites, guestStatusWrite{GuestID: guestID, Status: status})
	for _, guest := range f.guests {
		if guest.ID == guestID {
			guest.Status = status
			return nil
		}
	}
	return errNotFound
}

type bookingStatusWrite struct {
	BookingID uuid.UUID
	Status    entity.BookingStatus
}

type fakeBookingRepo struct {
	bookings        []*entity.Booking
	statusWrites    []bookingStatusWrite
	updateStatusErr error

	sumByPaymentStatus map[entity.BookingPaymentStatus]float64
	paidNoApproved     float64
	paidNoApprovedWin  float64
	countPendingWin    int64
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, booking := range f.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return paginate(f.bookings, limit, offset), nil
}

func (f *fakeBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.GuestID == guestID {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	for i, existing := range f.bookings {
		if existing.ID == booking.ID {
			f.bookings[i] = booking
			return nil
		}
	}
	return errNotFound
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, booking := range f.bookings {
		if booking.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeBookingRepo) FindActiveByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.GuestID == guestID && booking.Status.Active() {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActiveOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.RoomID == roomID && booking.Status.Active() &&
			booking.CheckIn.Before(checkOut) && booking.CheckOut.After(checkIn) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.statusWrites = append(f.statusWrites, bookingStatusWrite{BookingID: bookingID, Status: status})
	for _, booking := range f.bookings {
		if booking.ID == bookingID {
			booking.Status = status
			return nil
		}
	}
	return errNotFound
}

func (f *fakeBookingRepo) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingPaymentStatus) error {
	for _, booking := range f.bookings {
		if booking.ID == bookingID {
			booking.PaymentStatus = status
			return nil
		}
	}
	return errNotFound
}

func (f *fakeBookingRepo) SumTotalByPaymentStatus(ctx context.Context, status entity.BookingPaymentStatus) (float64, error) {
	return f.sumByPaymentStatus[status], nil
}

func (f *fakeBookingRepo) SumPaidTotalsWithoutApprovedPayment(ctx context.Context) (float64, error) {
	return f.paidNoApproved, nil
}

func (f *fakeBookingRepo) SumPaidTotalsWithoutApprovedPaymentBetween(ctx context.Context, from, to time.Time) (float64, error) {
	return f.paidNoApprovedWin, nil
}

func (f *fakeBookingRepo) CountByPaymentStatusCreatedBetween(ctx context.Context, status entity.BookingPaymentStatus, from, to time.Time) (int64, error) {
	return f.countPendingWin, nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment

	sumByStatus    map[entity.PaymentStatus]float64
	sumByStatusWin map[entity.PaymentStatus]float64
	countWin       int64
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	for _, payment := range f.payments {
		if payment.ID == id {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	return paginate(f.payments, limit, offset), nil
}

func (f *fakePaymentRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.payments)), nil
}

func (f *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, payment := range f.payments {
		if payment.BookingID == bookingID {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, payment := range f.payments {
		if payment.ID == id {
			f.payments = append(f.payments[:i], f.payments[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error {
	for _, payment := range f.payments {
		if payment.ID == paymentID {
			payment.Status = status
			return nil
		}
	}
	return errNotFound
}

func (f *fakePaymentRepo) SumAmountByStatus(ctx context.Context, status entity.PaymentStatus) (float64, error) {
	return f.sumByStatus[status], nil
}

func (f *fakePaymentRepo) SumAmountByStatusBetween(ctx context.Context, status entity.PaymentStatus, from, to time.Time) (float64, error) {
	return f.sumByStatusWin[status], nil
}

func (f *fakePaymentRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return f.countWin, nil
}

func paginate[T any](items []*T, limit, offset int) []*T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

type recordingPublisher struct {
	events []events.BookingEvent
}

func (p *recordingPublisher) PublishBookingEvent(ctx context.Context, event events.BookingEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newTestRepository(rooms *fakeRoomRepo, guests *fakeGuestRepo, bookings *fakeBookingRepo, payments *fakePaymentRepo) *repository.Repository {
	if rooms == nil {
		rooms = &fakeRoomRepo{}
	}
	if guests == nil {
		guests = &fakeGuestRepo{}
	}
	if bookings == nil {
		bookings = &fakeBookingRepo{}
	}
	if payments == nil {
		payments = &fakePaymentRepo{}
	}
	return &repository.Repository{
		Room:    rooms,
		Guest:   guests,
		Booking: bookings,
		Payment: payments,
	}
}
