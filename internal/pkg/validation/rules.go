package validation

import (
	"regexp"
)

// Domain bounds shared by the schema checks and request validation.
const (
	MinSemesterNumber = 1
	MaxSemesterNumber = 8
	MinPeriodNumber   = 1
	MaxPeriodNumber   = 8
	MaxWeightage      = 100

	PasswordMinLength = 8
)

// Validation rule patterns
var (
	// Batch start year, e.g. "2024"
	BatchYearPattern = `^\d{4}$`

	// Batch span, e.g. "2024-2028"
	BatchYearsPattern = `^\d{4}-\d{4}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	BatchYear  *regexp.Regexp
	BatchYears *regexp.Regexp
}{
	BatchYear:  regexp.MustCompile(BatchYearPattern),
	BatchYears: regexp.MustCompile(BatchYearsPattern),
}

// InRange reports whether v lies in [min, max].
func InRange(v, min, max int) bool {
	return v >= min && v <= max
}
