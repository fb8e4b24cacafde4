package repository

import (
	"context"
	"fmt"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Guest, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, guest *entity.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	UpdateStatus(ctx context.Context, guestID uuid.UUID, status entity.GuestStatus) error
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, name, email, phone, status, birth_date, gender, address, tax_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Email,
		guest.Phone,
		guest.Status,
		guest.BirthDate,
		guest.Gender,
		guest.Address,
		guest.TaxID,
		guest.CreatedAt,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("name", guest.Name),
		)
		return fmt.Errorf("create guest %s: %w", guest.Name, err)
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `
		SELECT id, name, email, phone, status, birth_date, gender, address, tax_id, created_at, updated_at
		FROM guests
		WHERE id = $1
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&guest.ID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.Status,
		&guest.BirthDate,
		&guest.Gender,
		&guest.Address,
		&guest.TaxID,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return nil, fmt.Errorf("find guest by ID %s: %w", id.String(), err)
	}

	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Guest, error) {
	query := `
		SELECT id, name, email, phone, status, birth_date, gender, address, tax_id, created_at, updated_at
		FROM guests
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find guests",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find guests: %w", err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		var guest entity.Guest
		err := rows.Scan(
			&guest.ID,
			&guest.Name,
			&guest.Email,
			&guest.Phone,
			&guest.Status,
			&guest.BirthDate,
			&guest.Gender,
			&guest.Address,
			&guest.TaxID,
			&guest.CreatedAt,
			&guest.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, &guest)
	}

	return guests, nil
}

func (r *guestRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM guests`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count guests", zap.Error(err))
		return 0, fmt.Errorf("count guests: %w", err)
	}

	return count, nil
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	// Status is deliberately absent: only UpdateStatus writes it, driven
	// by the status synchronizer.
	query := `
		UPDATE guests
		SET name = $2, email = $3, phone = $4, birth_date = $5, gender = $6,
		    address = $7, tax_id = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Email,
		guest.Phone,
		guest.BirthDate,
		guest.Gender,
		guest.Address,
		guest.TaxID,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update guest",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
		)
		return fmt.Errorf("update guest %s: %w", guest.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", guest.ID.String())
	}

	return nil
}

func (r *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM guests WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete guest",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return fmt.Errorf("delete guest %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", id.String())
	}

	r.log.Info("Guest deleted", zap.String("guest_id", id.String()))
	return nil
}

func (r *guestRepository) UpdateStatus(ctx context.Context, guestID uuid.UUID, status entity.GuestStatus) error {
	query := `UPDATE guests SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, guestID, status)
	if err != nil {
		r.log.Error("Failed to update guest status",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update guest %s status to %s: %w", guestID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", guestID.String())
	}

	return nil
}
