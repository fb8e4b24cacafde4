package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindActiveByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.Booking, error)
	CountActiveOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingPaymentStatus) error

	// Dashboard aggregations
	SumTotalByPaymentStatus(ctx context.Context, status entity.BookingPaymentStatus) (float64, error)
	SumPaidTotalsWithoutApprovedPayment(ctx context.Context) (float64, error)
	SumPaidTotalsWithoutApprovedPaymentBetween(ctx context.Context, from, to time.Time) (float64, error)
	CountByPaymentStatusCreatedBetween(ctx context.Context, status entity.BookingPaymentStatus, from, to time.Time) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, code, guest_id, room_id, check_in, check_out, status, payment_status, payment_method, total_amount, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Code,
		&booking.GuestID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentMethod,
		&booking.TotalAmount,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, code, guest_id, room_id, check_in, check_out, status, payment_status, payment_method, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Code,
		booking.GuestID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.TotalAmount,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("code", booking.Code),
			zap.String("guest_id", booking.GuestID.String()),
			zap.String("room_id", booking.RoomID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Code, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE guest_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, guestID)
	if err != nil {
		r.log.Error("Failed to find bookings by guest ID",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return nil, fmt.Errorf("find bookings by guest ID %s: %w", guestID.String(), err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET check_in = $2, check_out = $3, status = $4, payment_status = $5,
		    payment_method = $6, total_amount = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.TotalAmount,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) FindActiveByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE guest_id = $1 AND status IN ('reserved', 'checked_in')
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, guestID)
	if err != nil {
		r.log.Error("Failed to find active bookings by guest ID",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return nil, fmt.Errorf("find active bookings by guest ID %s: %w", guestID.String(), err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) CountActiveOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND status IN ('reserved', 'checked_in')
		  AND check_in < $3
		  AND check_out > $2
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&count); err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count overlapping bookings for room %s: %w", roomID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingPaymentStatus) error {
	query := `UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("payment_status", string(status)),
		)
		return fmt.Errorf("update booking %s payment status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) SumTotalByPaymentStatus(ctx context.Context, status entity.BookingPaymentStatus) (float64, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE payment_status = $1`

	var total float64
	if err := r.db.QueryRow(ctx, query, status).Scan(&total); err != nil {
		r.log.Error("Failed to sum booking totals by payment status",
			zap.Error(err),
			zap.String("payment_status", string(status)),
		)
		return 0, fmt.Errorf("sum booking totals by payment status %s: %w", string(status), err)
	}

	return total, nil
}

// SumPaidTotalsWithoutApprovedPayment sums paid bookings that have no
// approved payment row. Stays settled through a payment row are counted
// on the payment side; counting them here too would double the revenue.
func (r *bookingRepository) SumPaidTotalsWithoutApprovedPayment(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(SUM(b.total_amount), 0)
		FROM bookings b
		WHERE b.payment_status = 'paid'
		  AND NOT EXISTS (
			SELECT 1 FROM payments p
			WHERE p.booking_id = b.id AND p.status = 'approved'
		  )
	`

	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to sum paid booking totals", zap.Error(err))
		return 0, fmt.Errorf("sum paid booking totals: %w", err)
	}

	return total, nil
}

func (r *bookingRepository) SumPaidTotalsWithoutApprovedPaymentBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(b.total_amount), 0)
		FROM bookings b
		WHERE b.payment_status = 'paid'
		  AND b.created_at >= $1 AND b.created_at < $2
		  AND NOT EXISTS (
			SELECT 1 FROM payments p
			WHERE p.booking_id = b.id AND p.status = 'approved'
		  )
	`

	var total float64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		r.log.Error("Failed to sum paid booking totals in window",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return 0, fmt.Errorf("sum paid booking totals between %s and %s: %w",
			from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}

	return total, nil
}

func (r *bookingRepository) CountByPaymentStatusCreatedBetween(ctx context.Context, status entity.BookingPaymentStatus, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE payment_status = $1 AND created_at >= $2 AND created_at < $3
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, status, from, to).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by payment status in window",
			zap.Error(err),
			zap.String("payment_status", string(status)),
		)
		return 0, fmt.Errorf("count bookings by payment status %s: %w", string(status), err)
	}

	return count, nil
}
