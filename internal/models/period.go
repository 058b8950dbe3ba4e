package models

import "time"

// Period is one of the fixed lookback windows bounding which orders count
// toward a purchase total.
type Period string

const (
	PeriodDay   Period = "24h"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod normalizes a raw period value. Unrecognized values (including
// the empty string) fall back to the 24-hour window rather than erroring, so
// a misconfigured widget still shows something sensible.
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	default:
		return PeriodDay
	}
}

// Window returns the lookback duration for the period.
func (p Period) Window() time.Duration {
	switch p {
	case PeriodWeek:
		return 7 * 24 * time.Hour
	case PeriodMonth:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// MinDate returns the earliest order creation time included in the window,
// relative to now.
func (p Period) MinDate(now time.Time) time.Time {
	return now.Add(-p.Window())
}

func (p Period) String() string {
	return string(p)
}
