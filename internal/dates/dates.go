package dates

import (
	"errors"
	"fmt"
	"time"
)

// SecondsPerDay is the fixed width of a day bucket. No leap second or DST adjustment is applied.
const SecondsPerDay int64 = 24 * 60 * 60

const (
	parseLayout  = "2-1-2006"   // accepts one or two digit day and month
	formatLayout = "02-01-2006" // DD-MM-YYYY
)

// ErrInvalidDateFormat is returned when a string is not a valid DD-MM-YYYY calendar date.
var ErrInvalidDateFormat = errors.New("invalid date format")

func parse(date string) (time.Time, error) {
	t, err := time.ParseInLocation(parseLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, date)
	}
	return t, nil
}

// DayStart returns the UNIX timestamp of 00:00:00 UTC on the given DD-MM-YYYY day.
func DayStart(date string) (int64, error) {
	t, err := parse(date)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// Advance returns the date the given number of calendar days after date.
// Negative offsets move earlier.
func Advance(date string, days int) (string, error) {
	t, err := parse(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(formatLayout), nil
}

// IsDate reports whether date is a valid DD-MM-YYYY calendar date.
func IsDate(date string) bool {
	_, err := parse(date)
	return err == nil
}
