package core

import (
	"time"
)

// Unit names a calendar or elapsed-time granularity, ordered coarse to fine.
type Unit int

const (
	UnitYear Unit = iota
	UnitQuarter
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitNanosecond
)

// String returns the unit name
func (u Unit) String() string {
	switch u {
	case UnitYear:
		return "year"
	case UnitQuarter:
		return "quarter"
	case UnitMonth:
		return "month"
	case UnitWeek:
		return "week"
	case UnitDay:
		return "day"
	case UnitHour:
		return "hour"
	case UnitMinute:
		return "minute"
	case UnitSecond:
		return "second"
	case UnitNanosecond:
		return "nanosecond"
	default:
		return "unknown"
	}
}

// FinerThan reports whether u is a smaller granularity than o
func (u Unit) FinerThan(o Unit) bool {
	return u > o
}

// DateSample represents an immutable point in time with calendar-component
// accessors. Value semantics: every operation returns a new DateSample and
// never mutates the receiver.
type DateSample time.Time

// NewDateSample creates a date sample from time.Time
func NewDateSample(t time.Time) DateSample {
	return DateSample(t)
}

// ParseDate parses an RFC 3339 timestamp into a date sample
func ParseDate(s string) (DateSample, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateSample{}, err
	}
	return DateSample(t), nil
}

// Time returns the underlying time.Time
func (d DateSample) Time() time.Time {
	return time.Time(d)
}

// IsZero checks if the date sample is the zero time
func (d DateSample) IsZero() bool {
	return time.Time(d).IsZero()
}

// Calendar-component accessors

func (d DateSample) Year() int       { return d.Time().Year() }
func (d DateSample) Month() int      { return int(d.Time().Month()) }
func (d DateSample) Day() int        { return d.Time().Day() }
func (d DateSample) Hour() int       { return d.Time().Hour() }
func (d DateSample) Minute() int     { return d.Time().Minute() }
func (d DateSample) Second() int     { return d.Time().Second() }
func (d DateSample) Nanosecond() int { return d.Time().Nanosecond() }

// DayOfWeek returns the ISO 8601 weekday number (1=Monday .. 7=Sunday)
func (d DateSample) DayOfWeek() int {
	wd := int(d.Time().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DayOfYear returns the ordinal day within the year (1-based)
func (d DateSample) DayOfYear() int {
	return d.Time().YearDay()
}

// Quarter returns the calendar quarter (1..4)
func (d DateSample) Quarter() int {
	return (d.Month()-1)/3 + 1
}

// WeekNumber returns the ISO 8601 week number (1..53)
func (d DateSample) WeekNumber() int {
	_, week := d.Time().ISOWeek()
	return week
}

// WeekdayOfMonth returns which occurrence of its weekday this date is
// within its month (1-based; the 8th is always the 2nd occurrence).
func (d DateSample) WeekdayOfMonth() int {
	return (d.Day()-1)/7 + 1
}

// DayOfQuarter returns the ordinal day within the calendar quarter (1-based)
func (d DateSample) DayOfQuarter() int {
	t := d.Time()
	firstMonth := time.Month((d.Quarter()-1)*3 + 1)
	quarterStart := time.Date(t.Year(), firstMonth, 1, 0, 0, 0, 0, t.Location())
	return d.DayOfYear() - DateSample(quarterStart).DayOfYear() + 1
}

// Ordering

// Compare returns -1, 0 or +1 ordering d against o by absolute time
func (d DateSample) Compare(o DateSample) int {
	return d.Time().Compare(o.Time())
}

// Before returns true if d is before o
func (d DateSample) Before(o DateSample) bool {
	return d.Time().Before(o.Time())
}

// After returns true if d is after o
func (d DateSample) After(o DateSample) bool {
	return d.Time().After(o.Time())
}

// Equal returns true if d and o denote the same instant
func (d DateSample) Equal(o DateSample) bool {
	return d.Time().Equal(o.Time())
}

// Epoch returns high-resolution epoch seconds (unix seconds plus
// fractional nanoseconds)
func (d DateSample) Epoch() float64 {
	t := d.Time()
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// UnixNano returns the timestamp identity used to collapse duplicate candidates
func (d DateSample) UnixNano() int64 {
	return d.Time().UnixNano()
}

// Arithmetic

// Add returns d shifted by n named units, calendar-correct. Month and year
// arithmetic follows time.AddDate normalization.
func (d DateSample) Add(n int, u Unit) DateSample {
	t := d.Time()
	switch u {
	case UnitYear:
		return DateSample(t.AddDate(n, 0, 0))
	case UnitQuarter:
		return DateSample(t.AddDate(0, 3*n, 0))
	case UnitMonth:
		return DateSample(t.AddDate(0, n, 0))
	case UnitWeek:
		return DateSample(t.AddDate(0, 0, 7*n))
	case UnitDay:
		return DateSample(t.AddDate(0, 0, n))
	case UnitHour:
		return DateSample(t.Add(time.Duration(n) * time.Hour))
	case UnitMinute:
		return DateSample(t.Add(time.Duration(n) * time.Minute))
	case UnitSecond:
		return DateSample(t.Add(time.Duration(n) * time.Second))
	case UnitNanosecond:
		return DateSample(t.Add(time.Duration(n)))
	default:
		return d
	}
}

// AddSeconds returns d advanced by a fractional number of seconds,
// rounded to nanosecond resolution.
func (d DateSample) AddSeconds(sec float64) DateSample {
	return DateSample(d.Time().Add(time.Duration(sec * float64(time.Second))))
}

// Truncate returns d with every calendar component finer than u set to its
// minimum (months and days to 1, clock fields to 0). Truncation zeroes, it
// never rounds.
func (d DateSample) Truncate(u Unit) DateSample {
	t := d.Time()
	y, m, day := t.Date()
	loc := t.Location()
	switch u {
	case UnitYear:
		return DateSample(time.Date(y, time.January, 1, 0, 0, 0, 0, loc))
	case UnitQuarter:
		firstMonth := time.Month((d.Quarter()-1)*3 + 1)
		return DateSample(time.Date(y, firstMonth, 1, 0, 0, 0, 0, loc))
	case UnitMonth:
		return DateSample(time.Date(y, m, 1, 0, 0, 0, 0, loc))
	case UnitWeek:
		midnight := time.Date(y, m, day, 0, 0, 0, 0, loc)
		return DateSample(midnight.AddDate(0, 0, -(d.DayOfWeek() - 1)))
	case UnitDay:
		return DateSample(time.Date(y, m, day, 0, 0, 0, 0, loc))
	case UnitHour:
		return DateSample(time.Date(y, m, day, t.Hour(), 0, 0, 0, loc))
	case UnitMinute:
		return DateSample(time.Date(y, m, day, t.Hour(), t.Minute(), 0, 0, loc))
	case UnitSecond:
		return DateSample(time.Date(y, m, day, t.Hour(), t.Minute(), t.Second(), 0, loc))
	default:
		return d
	}
}

// Diff returns the elapsed time from earlier to d as a calendar-correct
// Duration. d must not be before earlier.
func (d DateSample) Diff(earlier DateSample) Duration {
	return newDuration(earlier, d)
}
