package utils

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate parses a YYYY-MM-DD date string
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// Nights returns the whole-day count between check-in and check-out,
// minimum 1. Partial days round up.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// GenerateBookingCode creates a unique booking code with timestamp
func GenerateBookingCode() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: RSV-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RSV-%s-%s-%s", datePart, timePart, randomPart)
}
