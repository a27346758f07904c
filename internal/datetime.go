package internal

import (
	"strings"
	"time"
)

// dateLayouts are the accepted wire formats for entity dates, most specific
// first. The bare calendar date form is what the ledger UI submits.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a wire date string, returning an invalid-date validation
// error when no layout matches.
func ParseDate(value string) (time.Time, *AppError) {
	v := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewInvalidDateError(value)
}
