package model

import (
	"fmt"
	"strings"
	"time"
)

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PaymentMethod records how a player paid for the session
type PaymentMethod string

const (
	PaymentUnpaid PaymentMethod = "unpaid"
	PaymentOnline PaymentMethod = "online"
	PaymentCash   PaymentMethod = "cash"
)

// ParsePaymentMethod validates a payment method string
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentUnpaid, PaymentOnline, PaymentCash:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPayment
	}
}

// Player represents a session participant.
// Queue position is defined solely by the player's index in the session
// registry; AddedAt is informational.
type Player struct {
	ID        PlayerID      `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Phone     string        `json:"phone,omitempty"`
	Payment   PaymentMethod `json:"payment"`
	AddedAt   time.Time     `json:"added_at"`
}

// FullName returns the player's display name. Legacy single-name records
// have an empty LastName.
func (p Player) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// IdentityKey returns the case-normalized full name used to match players
// across the registry, pause set, and court slots.
func (p Player) IdentityKey() string {
	return IdentityKey(p.FullName())
}

// IdentityKey normalizes a full name into a comparison key
func IdentityKey(fullName string) string {
	return strings.ToLower(strings.TrimSpace(fullName))
}

// DisambiguateName appends a numeric suffix until the name no longer
// collides with any key in taken: "Alice" -> "Alice (2)" -> "Alice (3)".
func DisambiguateName(name string, taken func(key string) bool) string {
	candidate := name
	for n := 2; taken(IdentityKey(candidate)); n++ {
		candidate = fmt.Sprintf("%s (%d)", name, n)
	}
	return candidate
}
