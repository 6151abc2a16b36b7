package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the DD-MM-YYYY format used at the API boundary.
const DateLayout = "02-01-2006"

// parseLayout also takes single-digit days and months, as in 1-1-2025.
const parseLayout = "2-1-2006"

// ParseDate parses a DD-MM-YYYY string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(parseLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use DD-MM-YYYY", s)
	}
	return t, nil
}

// FormatDate renders t as DD-MM-YYYY; the zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
