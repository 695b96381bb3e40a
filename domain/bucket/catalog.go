package bucket

import (
	"fmt"
	"sort"

	"datepredict/domain/core"
)

// ============================================================================
// CATALOG (process-wide, read-only, built once at startup)
// ============================================================================

// catalog maps bucket name to its definition. Never mutated after init.
var catalog = map[string]Definition{
	// Distinct buckets: calendar-aligned components of an absolute date.
	"year":             {Name: "year", Kind: KindDistinct, Accessor: AccessorYear, StepUnit: core.UnitYear, Order: 130, Trimmable: true, Granularity: core.UnitYear},
	"quarter_of_year":  {Name: "quarter_of_year", Kind: KindDistinct, Accessor: AccessorQuarter, StepUnit: core.UnitQuarter, Order: 120, Trimmable: true, Granularity: core.UnitQuarter},
	"month_of_year":    {Name: "month_of_year", Kind: KindDistinct, Accessor: AccessorMonth, StepUnit: core.UnitMonth, Order: 110, Trimmable: true, Granularity: core.UnitMonth},
	"week_of_year":     {Name: "week_of_year", Kind: KindDistinct, Accessor: AccessorWeekNumber, StepUnit: core.UnitWeek, Order: 100, Granularity: core.UnitWeek},
	"day_of_quarter":   {Name: "day_of_quarter", Kind: KindDistinct, Accessor: AccessorDayOfQuarter, StepUnit: core.UnitDay, Order: 95, Trimmable: true, Granularity: core.UnitDay},
	"day_of_year":      {Name: "day_of_year", Kind: KindDistinct, Accessor: AccessorDayOfYear, StepUnit: core.UnitDay, Order: 90, Trimmable: true, Granularity: core.UnitDay},
	"day_of_month":     {Name: "day_of_month", Kind: KindDistinct, Accessor: AccessorDayOfMonth, StepUnit: core.UnitDay, Order: 85, Trimmable: true, Granularity: core.UnitDay},
	"weekday_of_month": {Name: "weekday_of_month", Kind: KindDistinct, Accessor: AccessorWeekdayOfMonth, StepUnit: core.UnitWeek, Order: 80, Granularity: core.UnitDay},
	"day_of_week":      {Name: "day_of_week", Kind: KindDistinct, Accessor: AccessorDayOfWeek, StepUnit: core.UnitDay, Order: 75, Granularity: core.UnitDay},
	"hour_of_day":      {Name: "hour_of_day", Kind: KindDistinct, Accessor: AccessorHour, StepUnit: core.UnitHour, Order: 60, Trimmable: true, Granularity: core.UnitHour},
	"minute_of_hour":   {Name: "minute_of_hour", Kind: KindDistinct, Accessor: AccessorMinute, StepUnit: core.UnitMinute, Order: 50, Trimmable: true, Granularity: core.UnitMinute},
	"second_of_minute": {Name: "second_of_minute", Kind: KindDistinct, Accessor: AccessorSecond, StepUnit: core.UnitSecond, Order: 40, Trimmable: true, Granularity: core.UnitSecond},
	"nanosecond":       {Name: "nanosecond", Kind: KindDistinct, Accessor: AccessorNanosecond, StepUnit: core.UnitNanosecond, Order: 30, Trimmable: true, Granularity: core.UnitNanosecond},

	// Interval buckets: components of elapsed time between adjacent samples.
	// Trimming is driven by distinct granularities only, so none of these
	// carry the trim flag.
	"years":        {Name: "years", Kind: KindInterval, Accessor: AccessorIntervalYears, StepUnit: core.UnitYear, Order: 130, Granularity: core.UnitYear},
	"months":       {Name: "months", Kind: KindInterval, Accessor: AccessorIntervalMonths, StepUnit: core.UnitMonth, Order: 110, Granularity: core.UnitMonth},
	"weeks":        {Name: "weeks", Kind: KindInterval, Accessor: AccessorIntervalWeeks, StepUnit: core.UnitWeek, Order: 100, Granularity: core.UnitWeek},
	"days":         {Name: "days", Kind: KindInterval, Accessor: AccessorIntervalDays, StepUnit: core.UnitDay, Order: 85, Granularity: core.UnitDay},
	"hours":        {Name: "hours", Kind: KindInterval, Accessor: AccessorIntervalHours, StepUnit: core.UnitHour, Order: 60, Granularity: core.UnitHour},
	"minutes":      {Name: "minutes", Kind: KindInterval, Accessor: AccessorIntervalMinutes, StepUnit: core.UnitMinute, Order: 50, Granularity: core.UnitMinute},
	"seconds":      {Name: "seconds", Kind: KindInterval, Accessor: AccessorIntervalSeconds, StepUnit: core.UnitSecond, Order: 40, Granularity: core.UnitSecond},
	"nanoseconds":  {Name: "nanoseconds", Kind: KindInterval, Accessor: AccessorIntervalNanos, StepUnit: core.UnitNanosecond, Order: 30, Granularity: core.UnitNanosecond},
}

// presets name commonly useful bucket subsets
var presets = map[string][]string{
	"default":   {"day_of_week", "day_of_month", "day_of_year"},
	"daily":     {"hour_of_day", "minute_of_hour"},
	"monthly":   {"day_of_month", "weekday_of_month", "day_of_week"},
	"yearly":    {"month_of_year", "day_of_year", "day_of_week"},
	"intervals": {"years", "months", "weeks", "days"},
}

// Lookup returns the catalog definition for a bucket name
func Lookup(name string) (Definition, bool) {
	def, ok := catalog[name]
	return def, ok
}

// Names returns all catalog bucket names, sorted
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetNames returns all preset names, sorted
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ============================================================================
// SET (an assembled, toggleable selection of buckets)
// ============================================================================

// ActiveBucket pairs a definition with its resolved extraction function.
// Exactly one of Distinct/Interval is non-nil, matching Def.Kind.
type ActiveBucket struct {
	Def      Definition
	Distinct DistinctAccessor
	Interval IntervalAccessor
}

type entry struct {
	def      Definition
	distinct DistinctAccessor
	interval IntervalAccessor
	enabled  bool
}

// Set is a validated selection of catalog buckets. Buckets toggle on and
// off without leaving the set. A Set is not safe for concurrent mutation.
type Set struct {
	entries map[string]*entry
}

// NewSet assembles a set from explicit bucket names. Accessors are resolved
// once here; an unknown bucket name is an ErrInvalidConfiguration and an
// unregistered accessor is an ErrMissingCapability.
func NewSet(names ...string) (*Set, error) {
	if len(names) == 0 {
		return nil, core.NewConfigurationError("no buckets selected")
	}
	s := &Set{entries: make(map[string]*entry, len(names))}
	for _, name := range names {
		def, ok := catalog[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownBucket, name)
		}
		e := &entry{def: def, enabled: true}
		var err error
		switch def.Kind {
		case KindDistinct:
			e.distinct, err = resolveDistinct(def.Accessor)
		case KindInterval:
			e.interval, err = resolveInterval(def.Accessor)
		}
		if err != nil {
			return nil, err
		}
		s.entries[name] = e
	}
	return s, nil
}

// NewSetFromPreset assembles a set from a named preset
func NewSetFromPreset(preset string) (*Set, error) {
	names, ok := presets[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownPreset, preset)
	}
	return NewSet(names...)
}

// Enable turns a bucket in the set back on
func (s *Set) Enable(name string) error {
	e, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("%w: %q not in set", core.ErrUnknownBucket, name)
	}
	e.enabled = true
	return nil
}

// Disable turns a bucket off without removing it from the set
func (s *Set) Disable(name string) error {
	e, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("%w: %q not in set", core.ErrUnknownBucket, name)
	}
	e.enabled = false
	return nil
}

// Contains reports whether the set holds a bucket, enabled or not
func (s *Set) Contains(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// ActiveDistinct returns enabled distinct buckets, coarsest first
// (strictly descending order)
func (s *Set) ActiveDistinct() []ActiveBucket {
	return s.active(KindDistinct)
}

// ActiveInterval returns enabled interval buckets, coarsest first
func (s *Set) ActiveInterval() []ActiveBucket {
	return s.active(KindInterval)
}

func (s *Set) active(kind Kind) []ActiveBucket {
	out := make([]ActiveBucket, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.enabled || e.def.Kind != kind {
			continue
		}
		out = append(out, ActiveBucket{Def: e.def, Distinct: e.distinct, Interval: e.interval})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Def.Order > out[j].Def.Order
	})
	return out
}
