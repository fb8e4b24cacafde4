package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/entity"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/dto/request"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/usecase"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePayment handles POST /api/payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// GetPayments handles GET /api/payments
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	payments, err := h.service.GetPayments(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetPaymentByID handles GET /api/payments/{id}
func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.service.GetPaymentByID(r.Context(), paymentID)
	if err != nil {
		h.handleServiceError(w, err, "get payment by ID")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// UpdatePaymentStatus handles PUT /api/payments/{id}/status
func (h *PaymentHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	var req request.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdatePaymentStatus(r.Context(), paymentID, entity.PaymentStatus(req.Status)); err != nil {
		h.handleServiceError(w, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeletePayment handles DELETE /api/payments/{id}
func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	if err := h.service.DeletePayment(r.Context(), paymentID); err != nil {
		h.handleServiceError(w, err, "delete payment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps service errors for payment operations
func (h *PaymentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
