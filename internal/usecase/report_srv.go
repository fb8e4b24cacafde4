package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/repository"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// page size for streaming rows out of the store while building a report
const reportPageSize = 500

type ReportService interface {
	ExportBookingsPDF(ctx context.Context) ([]byte, error)
	ExportBookingsCSV(ctx context.Context) ([]byte, error)
	ExportPaymentsPDF(ctx context.Context) ([]byte, error)
	ExportPaymentsCSV(ctx context.Context) ([]byte, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

// reportColumn pairs a header with its PDF cell width in millimeters.
// CSV export uses the headers only.
type reportColumn struct {
	Header string
	Width  float64
}

var bookingColumnsDef = []reportColumn{
	{Header: "Code", Width: 42},
	{Header: "Guest", Width: 45},
	{Header: "Room", Width: 18},
	{Header: "Check-in", Width: 25},
	{Header: "Check-out", Width: 25},
	{Header: "Nights", Width: 16},
	{Header: "Status", Width: 26},
	{Header: "Payment", Width: 22},
	{Header: "Total", Width: 22},
}

var paymentColumnsDef = []reportColumn{
	{Header: "Booking", Width: 48},
	{Header: "Date", Width: 30},
	{Header: "Method", Width: 35},
	{Header: "Status", Width: 32},
	{Header: "Amount", Width: 30},
}

func (s *reportService) bookingRows(ctx context.Context) ([][]string, error) {
	var rows [][]string

	for offset := 0; ; offset += reportPageSize {
		bookings, err := s.repo.Booking.FindAll(ctx, reportPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("export bookings: %w", err)
		}
		if len(bookings) == 0 {
			break
		}

		for _, booking := range bookings {
			guestName := ""
			if guest, _ := s.repo.Guest.FindByID(ctx, booking.GuestID); guest != nil {
				guestName = guest.Name
			}

			roomNumber := ""
			if room, _ := s.repo.Room.FindByID(ctx, booking.RoomID); room != nil {
				roomNumber = room.Number
			}

			rows = append(rows, []string{
				booking.Code,
				guestName,
				roomNumber,
				booking.CheckIn.Format("2006-01-02"),
				booking.CheckOut.Format("2006-01-02"),
				strconv.Itoa(utils.Nights(booking.CheckIn, booking.CheckOut)),
				string(booking.Status),
				string(booking.PaymentStatus),
				fmt.Sprintf("%.2f", booking.TotalAmount),
			})
		}

		if len(bookings) < reportPageSize {
			break
		}
	}

	return rows, nil
}

func (s *reportService) paymentRows(ctx context.Context) ([][]string, error) {
	var rows [][]string

	for offset := 0; ; offset += reportPageSize {
		payments, err := s.repo.Payment.FindAll(ctx, reportPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("export payments: %w", err)
		}
		if len(payments) == 0 {
			break
		}

		for _, payment := range payments {
			bookingCode := payment.BookingID.String()
			if booking, _ := s.repo.Booking.FindByID(ctx, payment.BookingID); booking != nil {
				bookingCode = booking.Code
			}

			rows = append(rows, []string{
				bookingCode,
				payment.PaymentDate.Format("2006-01-02"),
				payment.Method,
				string(payment.Status),
				fmt.Sprintf("%.2f", payment.Amount),
			})
		}

		if len(payments) < reportPageSize {
			break
		}
	}

	return rows, nil
}

func (s *reportService) ExportBookingsPDF(ctx context.Context) ([]byte, error) {
	rows, err := s.bookingRows(ctx)
	if err != nil {
		return nil, err
	}
	return renderPDF("Bookings Report", bookingColumnsDef, rows)
}

func (s *reportService) ExportBookingsCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.bookingRows(ctx)
	if err != nil {
		return nil, err
	}
	return renderCSV(bookingColumnsDef, rows)
}

func (s *reportService) ExportPaymentsPDF(ctx context.Context) ([]byte, error) {
	rows, err := s.paymentRows(ctx)
	if err != nil {
		return nil, err
	}
	return renderPDF("Payments Report", paymentColumnsDef, rows)
}

func (s *reportService) ExportPaymentsCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.paymentRows(ctx)
	if err != nil {
		return nil, err
	}
	return renderCSV(paymentColumnsDef, rows)
}

func renderPDF(title string, columns []reportColumn, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Generated at "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range columns {
			pdf.CellFormat(col.Width, 7, col.Header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, marginBottom := pdf.GetMargins()

	for _, row := range rows {
		if pdf.GetY() > pageHeight-marginBottom-10 {
			pdf.AddPage()
			header()
		}
		for i, col := range columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			pdf.CellFormat(col.Width, 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCSV(columns []reportColumn, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("render csv: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}
