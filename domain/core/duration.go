package core

import (
	"time"
)

// Duration represents elapsed time between two date samples, stored as the
// calendar breakdown of later-earlier: whole months, then whole days, then
// minutes, seconds and nanoseconds within the final day. Named component
// accessors decompose these deltas further (weeks out of days, hours out
// of minutes) so that, for example, a 10-day gap reads as 1 week 3 days.
type Duration struct {
	months  int
	days    int
	minutes int
	seconds int
	nanos   int

	total float64 // elapsed epoch seconds, high resolution
}

// newDuration computes the breakdown of later-earlier. Callers guarantee
// later >= earlier; a reversed pair yields the zero Duration.
func newDuration(earlier, later DateSample) Duration {
	a, b := earlier.Time(), later.Time()
	if b.Before(a) {
		return Duration{}
	}

	// Whole calendar months, backing off AddDate normalization overshoot
	// (Jan 31 + 1 month lands in March).
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	for months > 0 && a.AddDate(0, months, 0).After(b) {
		months--
	}
	base := a.AddDate(0, months, 0)

	rest := b.Sub(base)
	days := int(rest / (24 * time.Hour))
	rest -= time.Duration(days) * 24 * time.Hour
	minutes := int(rest / time.Minute)
	rest -= time.Duration(minutes) * time.Minute
	seconds := int(rest / time.Second)
	nanos := int(rest % time.Second)

	return Duration{
		months:  months,
		days:    days,
		minutes: minutes,
		seconds: seconds,
		nanos:   nanos,
		total:   later.Epoch() - earlier.Epoch(),
	}
}

// Named component accessors

// Years returns the whole-year part of the month delta
func (d Duration) Years() int { return d.months / 12 }

// Months returns the month delta remaining after whole years
func (d Duration) Months() int { return d.months % 12 }

// Weeks returns the whole-week part of the day delta
func (d Duration) Weeks() int { return d.days / 7 }

// Days returns the day delta remaining after whole weeks
func (d Duration) Days() int { return d.days % 7 }

// Hours returns the whole-hour part of the minute delta
func (d Duration) Hours() int { return d.minutes / 60 }

// Minutes returns the minute delta remaining after whole hours
func (d Duration) Minutes() int { return d.minutes % 60 }

// Seconds returns the second delta within the final minute
func (d Duration) Seconds() int { return d.seconds }

// Nanoseconds returns the sub-second remainder
func (d Duration) Nanoseconds() int { return d.nanos }

// TotalSeconds returns the total elapsed epoch seconds
func (d Duration) TotalSeconds() float64 { return d.total }

// Component returns the accessor value for a named unit
func (d Duration) Component(u Unit) int {
	switch u {
	case UnitYear:
		return d.Years()
	case UnitMonth:
		return d.Months()
	case UnitWeek:
		return d.Weeks()
	case UnitDay:
		return d.Days()
	case UnitHour:
		return d.Hours()
	case UnitMinute:
		return d.Minutes()
	case UnitSecond:
		return d.Seconds()
	case UnitNanosecond:
		return d.Nanoseconds()
	default:
		return 0
	}
}
