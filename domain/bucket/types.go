package bucket

import (
	"datepredict/domain/core"
)

// ============================================================================
// STABLE PRIMITIVES
// ============================================================================

// Kind distinguishes the two bucket families
type Kind string

const (
	// KindDistinct tracks a calendar-aligned component of an absolute date
	KindDistinct Kind = "distinct"
	// KindInterval tracks a component of elapsed time between adjacent samples
	KindInterval Kind = "interval"
)

// AccessorID names the typed extraction function a bucket reads its
// values through. Resolution happens once at Set assembly, never per sample.
type AccessorID string

const (
	AccessorYear           AccessorID = "year"
	AccessorQuarter        AccessorID = "quarter"
	AccessorMonth          AccessorID = "month"
	AccessorWeekNumber     AccessorID = "week_number"
	AccessorDayOfQuarter   AccessorID = "day_of_quarter"
	AccessorDayOfYear      AccessorID = "day_of_year"
	AccessorDayOfMonth     AccessorID = "day_of_month"
	AccessorWeekdayOfMonth AccessorID = "weekday_of_month"
	AccessorDayOfWeek      AccessorID = "day_of_week"
	AccessorHour           AccessorID = "hour"
	AccessorMinute         AccessorID = "minute"
	AccessorSecond         AccessorID = "second"
	AccessorNanosecond     AccessorID = "nanosecond"

	AccessorIntervalYears   AccessorID = "interval_years"
	AccessorIntervalMonths  AccessorID = "interval_months"
	AccessorIntervalWeeks   AccessorID = "interval_weeks"
	AccessorIntervalDays    AccessorID = "interval_days"
	AccessorIntervalHours   AccessorID = "interval_hours"
	AccessorIntervalMinutes AccessorID = "interval_minutes"
	AccessorIntervalSeconds AccessorID = "interval_seconds"
	AccessorIntervalNanos   AccessorID = "interval_nanoseconds"
)

// Definition describes one bucket in the catalog.
// INVARIANTS:
// - Order is unique per kind; larger order means coarser, searched first
// - StepUnit is the unit candidate dates are shifted by during search
// - Granularity is only consulted when Trimmable is true
type Definition struct {
	Name        string
	Kind        Kind
	Accessor    AccessorID
	StepUnit    core.Unit
	Order       int
	Trimmable   bool
	Granularity core.Unit
}

// IsDistinct reports whether the bucket tracks an absolute date component
func (d Definition) IsDistinct() bool { return d.Kind == KindDistinct }

// IsInterval reports whether the bucket tracks an elapsed-time component
func (d Definition) IsInterval() bool { return d.Kind == KindInterval }
