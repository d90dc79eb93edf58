package datetime

import (
	"time"

	"github.com/pkg/errors"
)

// Layouts accepted for incoming timestamps, tried in order.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 timestamp string.
func ParseISO(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid ISO-8601 timestamp: %q", s)
}
