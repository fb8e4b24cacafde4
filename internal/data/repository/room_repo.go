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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByNumber(ctx context.Context, number string) (*entity.Room, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	CountByStatus(ctx context.Context, status entity.RoomStatus) (int64, error)
	UpdateStatus(ctx context.Context, roomID uuid.UUID, status entity.RoomStatus) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, number, type, status, nightly_rate, description, image_url, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Type,
		&room.Status,
		&room.NightlyRate,
		&room.Description,
		&room.ImageURL,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, number, type, status, nightly_rate, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.Number,
		room.Type,
		room.Status,
		room.NightlyRate,
		room.Description,
		room.ImageURL,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("number", room.Number),
		)
		return fmt.Errorf("create room %s: %w", room.Number, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, number string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE number = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, number))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by number",
			zap.Error(err),
			zap.String("number", number),
		)
		return nil, fmt.Errorf("find room by number %s: %w", number, err)
	}

	return room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY number LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find rooms",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (r *roomRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM rooms`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET number = $2, type = $3, nightly_rate = $4, description = $5,
		    image_url = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Number,
		room.Type,
		room.NightlyRate,
		room.Description,
		room.ImageURL,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

func (r *roomRepository) CountByStatus(ctx context.Context, status entity.RoomStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM rooms WHERE status = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count rooms by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count rooms by status %s: %w", string(status), err)
	}

	return count, nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, roomID uuid.UUID, status entity.RoomStatus) error {
	query := `UPDATE rooms SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, roomID, status)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room %s status to %s: %w", roomID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", roomID.String())
	}

	return nil
}
