package fitness

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateKeyLayout = "2006-01-02"

// DateKey renders a date as its YYYY-MM-DD key using local calendar
// fields. Converting through UTC shifts the day for offsets straddling
// midnight, so it must never happen here.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey is the exact inverse of DateKey. The key is split into its
// three integer components and a local midnight date is built from them;
// a generic timestamp parser could reinterpret the key as UTC.
func ParseDateKey(key string) (time.Time, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in date key %q", key)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in date key %q", key)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in date key %q", key)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes out-of-range components (Feb 31 becomes Mar 3),
	// which would silently accept a corrupt key
	if DateKey(t) != key {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	return t, nil
}

// AddDays returns a new date offset by n days, leaving t untouched.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// Midnight truncates t to the start of its local day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOf returns the Monday starting the week that contains t.
// Weekday is Sunday=0, so Sunday maps to an offset of -6 and Monday to 0.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return AddDays(Midnight(t), -offset)
}
