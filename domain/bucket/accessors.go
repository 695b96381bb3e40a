package bucket

import (
	"datepredict/domain/core"
)

// DistinctAccessor extracts one calendar component from an absolute date
type DistinctAccessor func(core.DateSample) int

// IntervalAccessor extracts one named component from an elapsed Duration
type IntervalAccessor func(core.Duration) int

// Static dispatch tables. These replace any runtime method lookup: a bucket
// names its accessor, the Set resolves it here exactly once at assembly,
// and an unknown id surfaces ErrMissingCapability instead of being skipped.
var distinctAccessors = map[AccessorID]DistinctAccessor{
	AccessorYear:           core.DateSample.Year,
	AccessorQuarter:        core.DateSample.Quarter,
	AccessorMonth:          core.DateSample.Month,
	AccessorWeekNumber:     core.DateSample.WeekNumber,
	AccessorDayOfQuarter:   core.DateSample.DayOfQuarter,
	AccessorDayOfYear:      core.DateSample.DayOfYear,
	AccessorDayOfMonth:     core.DateSample.Day,
	AccessorWeekdayOfMonth: core.DateSample.WeekdayOfMonth,
	AccessorDayOfWeek:      core.DateSample.DayOfWeek,
	AccessorHour:           core.DateSample.Hour,
	AccessorMinute:         core.DateSample.Minute,
	AccessorSecond:         core.DateSample.Second,
	AccessorNanosecond:     core.DateSample.Nanosecond,
}

var intervalAccessors = map[AccessorID]IntervalAccessor{
	AccessorIntervalYears:   core.Duration.Years,
	AccessorIntervalMonths:  core.Duration.Months,
	AccessorIntervalWeeks:   core.Duration.Weeks,
	AccessorIntervalDays:    core.Duration.Days,
	AccessorIntervalHours:   core.Duration.Hours,
	AccessorIntervalMinutes: core.Duration.Minutes,
	AccessorIntervalSeconds: core.Duration.Seconds,
	AccessorIntervalNanos:   core.Duration.Nanoseconds,
}

// resolveDistinct returns the extraction function for a distinct bucket
func resolveDistinct(id AccessorID) (DistinctAccessor, error) {
	fn, ok := distinctAccessors[id]
	if !ok {
		return nil, core.NewMissingCapabilityError("date", string(id))
	}
	return fn, nil
}

// resolveInterval returns the extraction function for an interval bucket
func resolveInterval(id AccessorID) (IntervalAccessor, error) {
	fn, ok := intervalAccessors[id]
	if !ok {
		return nil, core.NewMissingCapabilityError("duration", string(id))
	}
	return fn, nil
}
