package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

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

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferenceNumber creates a booking reference number.
// Format: SPA-YYYYMMDD-XXXXXX
func GenerateReferenceNumber() string {
	now := time.Now()
	datePart := now.Format("20060102")

	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteByte(referenceAlphabet[rand.Intn(len(referenceAlphabet))])
	}

	return fmt.Sprintf("SPA-%s-%s", datePart, sb.String())
}
