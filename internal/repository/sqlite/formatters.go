package sqlite

import (
	"time"
)

// DateLayout is the storage format for due dates. Date-only, no time
// component, so lexicographic ordering matches chronological ordering.
const DateLayout = "2006-01-02"

// FormatDateForDB formats a time.Time value as a YYYY-MM-DD string for
// consistent database storage.
func FormatDateForDB(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtrForDB formats a *time.Time value as a YYYY-MM-DD string,
// returning nil if the pointer is nil.
func FormatDatePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatDateForDB(*t)
}

// ParseDateFromDB parses a YYYY-MM-DD formatted date string from the database.
// The result is anchored at midnight UTC.
func ParseDateFromDB(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
