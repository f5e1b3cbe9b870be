package ingest

import (
	"errors"
	"fmt"
)

// MaxPayloadBytes is the hard ceiling on an uploaded payload. Oversized
// payloads are rejected before any parsing, never partially parsed.
const MaxPayloadBytes = 5 << 20

// ErrPayloadTooLarge is returned when a payload exceeds MaxPayloadBytes.
var ErrPayloadTooLarge = errors.New("payload exceeds size limit")

// CheckSize rejects payloads over the limit.
func CheckSize(n int) error {
	if n > MaxPayloadBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrPayloadTooLarge, n, MaxPayloadBytes)
	}
	return nil
}
