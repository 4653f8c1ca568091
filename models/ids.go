package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh record id. Ids only need to be unique within
// their own collection.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

func utcNow() time.Time {
	return time.Now().UTC()
}

const (
	bookingReferencePrefix = "TUR"
	bookingReferenceDigits = 6
)

// BookingReference derives the display reference from the trailing digits of id,
// left padded with zeros when id has fewer than six digits.
func BookingReference(id string) string {
	var digits strings.Builder
	for _, r := range id {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > bookingReferenceDigits {
		d = d[len(d)-bookingReferenceDigits:]
	}
	return bookingReferencePrefix + strings.Repeat("0", bookingReferenceDigits-len(d)) + d
}
