package gateway

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutSeconds  = "2006-01-02T15:04:05-07:00"
	layoutFraction = "2006-01-02T15:04:05.000000-07:00"
	// StampLayout is how timestamps are written back to the store. The fixed
	// fraction width keeps text columns sortable.
	StampLayout = "2006-01-02T15:04:05.000000Z07:00"
)

// ParseTimestamp parses the ISO-8601 variants stores emit: a trailing Z or a
// numeric offset, no offset at all (taken as UTC), and fractions of any width,
// which are padded or truncated to microseconds.
func ParseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if len(s) < len("2006-01-02T15:04:05") {
		return time.Time{}, fmt.Errorf("timestamp %q: too short", raw)
	}
	if s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}

	head, tail := s[:19], s[19:]
	frac := ""
	if strings.HasPrefix(tail, ".") {
		i := 1
		for i < len(tail) && tail[i] >= '0' && tail[i] <= '9' {
			i++
		}
		frac, tail = tail[1:i], tail[i:]
	}

	switch {
	case tail == "" || tail == "Z" || tail == "z":
		tail = "+00:00"
	case len(tail) == 3:
		tail += ":00"
	}

	layout := layoutSeconds
	if frac != "" {
		if len(frac) > 6 {
			frac = frac[:6]
		} else {
			frac += strings.Repeat("0", 6-len(frac))
		}
		head += "." + frac
		layout = layoutFraction
	}

	t, err := time.Parse(layout, head+tail)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", raw, err)
	}
	return t, nil
}
