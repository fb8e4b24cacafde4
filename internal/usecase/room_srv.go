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

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	GetRooms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Room.FindByNumber(ctx, req.Number)
	if err != nil {
		return nil, fmt.Errorf("check room number %s: %w", req.Number, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("room number %s already exists", req.Number)
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Number:      req.Number,
		Type:        entity.RoomType(req.Type),
		Status:      entity.RoomStatusAvailable,
		NightlyRate: req.NightlyRate,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("number", req.Number))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("number", room.Number),
		zap.Float64("nightly_rate", room.NightlyRate),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetRooms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	rooms, err := s.repo.Room.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	total, err := s.repo.Room.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count rooms", zap.Error(err))
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return response.NewPaginatedResponse(roomResponses, req.Page, req.PerPage, total), nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// UpdateRoom edits descriptive fields. Room status is not editable here:
// it belongs to the booking lifecycle.
func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	if req.Number != nil && *req.Number != room.Number {
		existing, err := s.repo.Room.FindByNumber(ctx, *req.Number)
		if err != nil {
			return nil, fmt.Errorf("check room number %s: %w", *req.Number, err)
		}
		if existing != nil {
			return nil, fmt.Errorf("room number %s already exists", *req.Number)
		}
		room.Number = *req.Number
	}
	if req.Type != nil {
		room.Type = entity.RoomType(*req.Type)
	}
	if req.NightlyRate != nil {
		room.NightlyRate = *req.NightlyRate
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.ImageURL != nil {
		room.ImageURL = req.ImageURL
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room %s: %w", roomID, err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return fmt.Errorf("room %s not found", roomID)
	}

	if room.Status == entity.RoomStatusOccupied {
		return fmt.Errorf("cannot delete occupied room %s", room.Number)
	}

	return s.repo.Room.Delete(ctx, id)
}
