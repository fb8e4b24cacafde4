package adaptor

import (
	"net/http"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/usecase"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// ExportBookings handles GET /api/reports/bookings?format=pdf|csv
func (h *ReportHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("format") {
	case "csv":
		data, err := h.service.ExportBookingsCSV(r.Context())
		if err != nil {
			h.log.Error("Failed to export bookings CSV", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		writeDownload(w, data, "text/csv", "bookings.csv")

	case "", "pdf":
		data, err := h.service.ExportBookingsPDF(r.Context())
		if err != nil {
			h.log.Error("Failed to export bookings PDF", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		writeDownload(w, data, "application/pdf", "bookings.pdf")

	default:
		utils.ResponseBadRequest(w, "Unsupported format, use pdf or csv", nil)
	}
}

// ExportPayments handles GET /api/reports/payments?format=pdf|csv
func (h *ReportHandler) ExportPayments(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("format") {
	case "csv":
		data, err := h.service.ExportPaymentsCSV(r.Context())
		if err != nil {
			h.log.Error("Failed to export payments CSV", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		writeDownload(w, data, "text/csv", "payments.csv")

	case "", "pdf":
		data, err := h.service.ExportPaymentsPDF(r.Context())
		if err != nil {
			h.log.Error("Failed to export payments PDF", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		writeDownload(w, data, "application/pdf", "payments.pdf")

	default:
		utils.ResponseBadRequest(w, "Unsupported format, use pdf or csv", nil)
	}
}

func writeDownload(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
