package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== TOKEN ====================

func GenerateSessionToken() string {
	return uuid.New().String()
}

// ==================== BOOKING / INVOICE ID ====================

// GenerateBookingID creates a unique booking reference.
// Format: BK-YYYYMMDD-HHMMSS-RANDOM
func GenerateBookingID() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("BK-%s-%s-%s", datePart, timePart, randomPart)
}

// InvoiceIDFor derives the invoice id permanently bound to a booking.
func InvoiceIDFor(bookingID string) string {
	return "INV" + bookingID
}
