// Package notes multiplexes the extras/removed ingredient lists of a cart line
// into the single free-text notes column of order_items, and back.
//
// Format: "EXTRAS: a,b | SIN: x,y". Either part may be absent. Tokens containing
// "," or "|" cannot be represented and are rejected by ValidateTokens.
package notes

import (
	"errors"
	"fmt"
	"strings"
)

const (
	extrasMarker  = "EXTRAS:"
	removedMarker = "SIN:"
	partSeparator = " | "
	tokenSep      = ","
)

var ErrUnsupportedToken = errors.New("ingredient token contains a reserved character")

// Decoded is the structured view of a notes field.
type Decoded struct {
	Extras  []string
	Removed []string
}

// Encode builds the notes field. It returns nil when there is nothing to store.
func Encode(extras, removed []string) *string {
	parts := make([]string, 0, 2)
	if len(extras) > 0 {
		parts = append(parts, extrasMarker+" "+strings.Join(extras, tokenSep))
	}
	if len(removed) > 0 {
		parts = append(parts, removedMarker+" "+strings.Join(removed, tokenSep))
	}
	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, partSeparator)
	return &s
}

// Decode parses a notes field. Segments are matched by marker so either order
// is accepted; anything unrecognizable decodes to empty lists.
func Decode(raw *string) Decoded {
	out := Decoded{Extras: []string{}, Removed: []string{}}
	if raw == nil {
		return out
	}
	for _, segment := range strings.Split(*raw, "|") {
		segment = strings.TrimSpace(segment)
		switch {
		case strings.HasPrefix(segment, extrasMarker):
			out.Extras = append(out.Extras, splitTokens(strings.TrimPrefix(segment, extrasMarker))...)
		case strings.HasPrefix(segment, removedMarker):
			out.Removed = append(out.Removed, splitTokens(strings.TrimPrefix(segment, removedMarker))...)
		}
	}
	return out
}

// DecodeString is Decode for a plain string; "" behaves like a missing field.
func DecodeString(raw string) Decoded {
	if raw == "" {
		return Decode(nil)
	}
	return Decode(&raw)
}

// Clean trims every token and drops the empty ones.
func Clean(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func ValidateTokens(tokens []string) error {
	for _, t := range tokens {
		if strings.ContainsAny(t, ",|") {
			return fmt.Errorf("%w: %q", ErrUnsupportedToken, t)
		}
	}
	return nil
}

func splitTokens(s string) []string {
	return Clean(strings.Split(s, tokenSep))
}
