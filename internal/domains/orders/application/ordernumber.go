package application

import (
	"crypto/rand"
	"fmt"
	"time"
)

// numberAlphabet skips lookalike characters (0/O, 1/I/L) so order numbers
// survive being read over the phone.
const numberAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const numberSuffixLen = 6

// maxNumberAttempts bounds retries when a generated number collides with an
// existing order. Collisions are resolved by the unique index on the number
// column, not trusted to randomness alone.
const maxNumberAttempts = 5

// newOrderNumber builds a human-facing identifier like ORD-20260828-K7Q2MX.
func newOrderNumber(now time.Time) (string, error) {
	buf := make([]byte, numberSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	for i := range buf {
		buf[i] = numberAlphabet[int(buf[i])%len(numberAlphabet)]
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), buf), nil
}
