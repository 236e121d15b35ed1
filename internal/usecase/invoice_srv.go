package usecase

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

type InvoiceService interface {
	// RenderInvoice produces the finished PDF in memory. Rendering
	// fully before streaming means a generation failure never leaves a
	// half-written response behind.
	RenderInvoice(req *request.InvoiceRequest) ([]byte, error)
}

type invoiceService struct {
	log *zap.Logger
}

func NewInvoiceService(log *zap.Logger) InvoiceService {
	return &invoiceService{
		log: log.With(zap.String("service", "invoice")),
	}
}

func (s *invoiceService) RenderInvoice(req *request.InvoiceRequest) ([]byte, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Invoice validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "BOOKING INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	s.line(pdf, "Invoice ID: %s", req.InvoiceID)
	s.line(pdf, "Booking ID: %s", req.BookingID)
	s.line(pdf, "Date: %s", formatInvoiceDate(req.CreatedAt))
	pdf.Ln(6)

	s.section(pdf, "CUSTOMER DETAILS")
	s.line(pdf, "Name: %s", orNA(req.UserName))
	s.line(pdf, "Email: %s", orNA(req.UserEmail))
	s.line(pdf, "Mobile: %s", orNA(req.UserMobile))
	pdf.Ln(6)

	s.section(pdf, "BOOKING DETAILS")
	s.line(pdf, "Hotel: %s", orNA(req.HotelName))
	s.line(pdf, "Room Type: %s", orNA(req.RoomType))
	s.line(pdf, "Check-in: %s", formatInvoiceDate(req.CheckInDate))
	s.line(pdf, "Check-out: %s", formatInvoiceDate(req.CheckOutDate))
	s.line(pdf, "Guests: %d", req.Guests)
	s.line(pdf, "Duration: %d nights", req.Duration)
	pdf.Ln(6)

	s.section(pdf, "PRICING BREAKDOWN")
	s.line(pdf, "Base Price: Rs. %d", req.BasePrice)
	s.line(pdf, "Subtotal: Rs. %d", req.TotalPriceINR-req.Taxes)
	s.line(pdf, "Taxes (18%% GST): Rs. %d", req.Taxes)
	s.line(pdf, "Total Amount: Rs. %d", req.TotalPriceINR)
	pdf.Ln(6)

	s.section(pdf, "PAYMENT DETAILS")
	s.line(pdf, "Payment Status: %s", strings.ToUpper(orNA(req.PaymentStatus)))
	s.line(pdf, "Transaction ID: %s", orNA(req.PaymentRef))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Thank you for choosing TripAIway!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "This is a computer-generated invoice and does not require a signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.log.Error("Failed to render invoice PDF",
			zap.Error(err),
			zap.String("invoice_id", req.InvoiceID),
		)
		return nil, fmt.Errorf("render invoice %s: %w", req.InvoiceID, err)
	}

	s.log.Info("Invoice rendered",
		zap.String("invoice_id", req.InvoiceID),
		zap.Int("bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

func (s *invoiceService) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func (s *invoiceService) line(pdf *gofpdf.Fpdf, format string, args ...any) {
	pdf.Cell(0, 7, fmt.Sprintf(format, args...))
	pdf.Ln(7)
}

func formatInvoiceDate(iso string) string {
	if iso == "" {
		return "N/A"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return iso
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
