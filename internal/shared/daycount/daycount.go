// Package daycount turns a leave date range with full/half day endpoints
// into a number of leave days.
package daycount

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type DayType string

const (
	FullDay DayType = "Full Day"
	HalfDay DayType = "Half Day"
)

const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var (
	ErrReversedRange  = errors.New("end date is before start date")
	ErrUnknownDayType = errors.New("day type must be Full Day or Half Day")
)

var half = decimal.NewFromFloat(0.5)

func ParseDayType(v string) (DayType, error) {
	switch DayType(v) {
	case FullDay, HalfDay:
		return DayType(v), nil
	case "":
		return FullDay, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDayType, v)
	}
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(v string) (time.Time, error) {
	return time.Parse(DateLayout, v)
}

// TotalDays counts the inclusive calendar days between start and end and
// removes half a day for each endpoint marked Half Day. A single day with
// any half-day endpoint counts as half a day.
func TotalDays(start, end time.Time, startType, endType DayType) (decimal.Decimal, error) {
	start = truncate(start)
	end = truncate(end)
	if end.Before(start) {
		return decimal.Zero, ErrReversedRange
	}

	// Unix seconds, not time.Duration, which saturates past ~292 years.
	days := decimal.NewFromInt((end.Unix()-start.Unix())/secondsPerDay + 1)

	if start.Equal(end) {
		if startType == HalfDay || endType == HalfDay {
			return half, nil
		}
		return days, nil
	}

	if startType == HalfDay {
		days = days.Sub(half)
	}
	if endType == HalfDay {
		days = days.Sub(half)
	}
	return days, nil
}

// YearBounds returns [1 Jan year, 1 Jan year+1) in UTC.
func YearBounds(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
