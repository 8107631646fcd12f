package validation

import (
	"strings"
	"time"

	"github.com/college/academics/internal/pkg/apperrors"
)

// DateLayout is the canonical calendar-date form stored and returned by the API.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseDate parses a date-like string. Inputs carrying a zone offset are
// moved to UTC before the calendar date is taken.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeDate returns s as YYYY-MM-DD or a validation error naming field.
func NormalizeDate(field, s string) (string, error) {
	t, ok := ParseDate(s)
	if !ok {
		return "", apperrors.NewValidationError(field+" must be a valid date (YYYY-MM-DD)", field)
	}
	return t.Format(DateLayout), nil
}
