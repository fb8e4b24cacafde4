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

type PaymentService interface {
	CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	GetPayments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error)
	GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	UpdatePaymentStatus(ctx context.Context, paymentID string, status entity.PaymentStatus) error
	DeletePayment(ctx context.Context, paymentID string) error
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate, err = utils.ParseDate(*req.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("invalid payment date %s: %w", *req.PaymentDate, err)
		}
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:   bookingID,
		Amount:      req.Amount,
		Method:      req.Method,
		Status:      entity.PaymentStatusProcessing,
		PaymentDate: paymentDate,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", req.Amount),
		zap.String("method", req.Method),
	)

	resp := response.PaymentToResponse(payment)
	resp.BookingCode = booking.Code
	return &resp, nil
}

func (s *paymentService) GetPayments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	payments, err := s.repo.Payment.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get payments", zap.Error(err))
		return nil, fmt.Errorf("get payments: %w", err)
	}

	total, err := s.repo.Payment.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count payments", zap.Error(err))
		return nil, fmt.Errorf("count payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)

		booking, _ := s.repo.Booking.FindByID(ctx, payment.BookingID)
		if booking != nil {
			paymentResponses[i].BookingCode = booking.Code
		}
	}

	return response.NewPaginatedResponse(paymentResponses, req.Page, req.PerPage, total), nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil || payment == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}

	resp := response.PaymentToResponse(payment)

	booking, _ := s.repo.Booking.FindByID(ctx, payment.BookingID)
	if booking != nil {
		resp.BookingCode = booking.Code
	}

	return &resp, nil
}

func (s *paymentService) UpdatePaymentStatus(ctx context.Context, paymentID string, status entity.PaymentStatus) error {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil || payment == nil {
		return fmt.Errorf("payment %s not found", paymentID)
	}

	if err := s.repo.Payment.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID),
		)
		return fmt.Errorf("update payment %s status: %w", paymentID, err)
	}

	s.log.Info("Payment status updated",
		zap.String("payment_id", paymentID),
		zap.String("status", string(status)),
	)

	return nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil || payment == nil {
		return fmt.Errorf("payment %s not found", paymentID)
	}

	return s.repo.Payment.Delete(ctx, id)
}
