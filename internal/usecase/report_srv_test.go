package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"

	"go.uber.org/zap"
)

func TestExportBookingsCSV(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusReserved)
	room := newTestRoom("501", 150)
	booking := newTestBooking(guest.ID, room.ID, entity.BookingStatusReserved)

	repo := newTestRepository(
		&fakeRoomRepo{rooms: []*entity.Room{room}},
		&fakeGuestRepo{guests: []*entity.Guest{guest}},
		&fakeBookingRepo{bookings: []*entity.Booking{booking}},
		nil,
	)
	srv := NewReportService(repo, zap.NewNop())

	data, err := srv.ExportBookingsCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportBookingsCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(records))
	}
	if records[0][0] != "Code" {
		t.Errorf("first header = %s, want Code", records[0][0])
	}

	row := records[1]
	if row[0] != booking.Code {
		t.Errorf("code = %s, want %s", row[0], booking.Code)
	}
	if row[1] != guest.Name {
		t.Errorf("guest = %s, want %s", row[1], guest.Name)
	}
	if row[2] != room.Number {
		t.Errorf("room = %s, want %s", row[2], room.Number)
	}
	if row[5] != "3" {
		t.Errorf("nights = %s, want 3", row[5])
	}
	if row[8] != "450.00" {
		t.Errorf("total = %s, want 450.00", row[8])
	}
}

func TestExportPaymentsPDF(t *testing.T) {
	guest := newTestGuest(entity.GuestStatusCheckedIn)
	room := newTestRoom("502", 100)
	booking := newTestBooking(guest.ID, room.ID, entity.BookingStatusCheckedIn)

	payment := &entity.Payment{
		Base:        booking.Base,
		BookingID:   booking.ID,
		Amount:      450,
		Method:      "card",
		Status:      entity.PaymentStatusApproved,
		PaymentDate: booking.CheckIn,
	}

	repo := newTestRepository(nil, nil,
		&fakeBookingRepo{bookings: []*entity.Booking{booking}},
		&fakePaymentRepo{payments: []*entity.Payment{payment}},
	)
	srv := NewReportService(repo, zap.NewNop())

	data, err := srv.ExportPaymentsPDF(context.Background())
	if err != nil {
		t.Fatalf("ExportPaymentsPDF: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF document")
	}
}
