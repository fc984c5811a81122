package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReceiptID generates a gateway receipt reference of the form
// TECH14-YYYYMMDD-XXXXXX. The suffix only needs to be unique per
// order, not cryptographically meaningful.
func NewReceiptID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("TECH14-%s-%s", now.Format("20060102"), suffix)
}

// FormatAmount renders a rupee amount for display, e.g. "₹299".
func FormatAmount(amount int) string {
	return fmt.Sprintf("₹%d", amount)
}
