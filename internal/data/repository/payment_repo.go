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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
	CountAll(ctx context.Context) (int64, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error

	// Dashboard aggregations
	SumAmountByStatus(ctx context.Context, status entity.PaymentStatus) (float64, error)
	SumAmountByStatusBetween(ctx context.Context, status entity.PaymentStatus, from, to time.Time) (float64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, amount, method, status, payment_date, created_at, updated_at`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.PaymentDate,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, amount, method, status, payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.PaymentDate,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.Float64("amount", payment.Amount),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find payments",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

func (r *paymentRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM payments`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count payments", zap.Error(err))
		return 0, fmt.Errorf("count payments: %w", err)
	}

	return count, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY payment_date DESC`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM payments WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return fmt.Errorf("delete payment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	r.log.Info("Payment deleted", zap.String("payment_id", id.String()))
	return nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, paymentID, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %s status to %s: %w", paymentID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", paymentID.String())
	}

	return nil
}

func (r *paymentRepository) SumAmountByStatus(ctx context.Context, status entity.PaymentStatus) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1`

	var total float64
	if err := r.db.QueryRow(ctx, query, status).Scan(&total); err != nil {
		r.log.Error("Failed to sum payment amounts by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("sum payment amounts by status %s: %w", string(status), err)
	}

	return total, nil
}

func (r *paymentRepository) SumAmountByStatusBetween(ctx context.Context, status entity.PaymentStatus, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = $1 AND payment_date >= $2 AND payment_date < $3
	`

	var total float64
	if err := r.db.QueryRow(ctx, query, status, from, to).Scan(&total); err != nil {
		r.log.Error("Failed to sum payment amounts in window",
			zap.Error(err),
			zap.String("status", string(status)),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return 0, fmt.Errorf("sum payment amounts by status %s between %s and %s: %w",
			string(status), from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}

	return total, nil
}

func (r *paymentRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM payments WHERE created_at >= $1 AND created_at < $2`

	var count int64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		r.log.Error("Failed to count payments in window",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return 0, fmt.Errorf("count payments between %s and %s: %w",
			from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}

	return count, nil
}
