// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"math"
)

// Key names an entry in DailyEvents.
type Key string

const (
	SolarNoon        Key = "solarNoon"
	SolarMidnight    Key = "solarMidnight"
	Sunrise          Key = "sunrise"
	Sunset           Key = "sunset"
	DayLength        Key = "dayLength"
	CivilDawn        Key = "civilDawn"
	CivilDusk        Key = "civilDusk"
	NauticalDawn     Key = "nauticalDawn"
	NauticalDusk     Key = "nauticalDusk"
	AstronomicalDawn Key = "astronomicalDawn"
	AstronomicalDusk Key = "astronomicalDusk"
	GoldenHourStart  Key = "goldenHourStart"
	GoldenHourEnd    Key = "goldenHourEnd"
	BlueHourStart    Key = "blueHourStart"
)

// Keys lists every Key in display order.
var Keys = []Key{
	AstronomicalDawn, NauticalDawn, CivilDawn,
	Sunrise, GoldenHourEnd,
	SolarNoon,
	GoldenHourStart, Sunset, BlueHourStart,
	CivilDusk, NauticalDusk, AstronomicalDusk,
	SolarMidnight, DayLength,
}

// Sentinel is displayed in place of a time when an event does not occur.
type Sentinel string

const (
	NoEvent     Sentinel = "No event"
	AllDay      Sentinel = "All day"
	AllNight    Sentinel = "All night"
	Continuous  Sentinel = "Continuous"
	Placeholder Sentinel = "—"
)

// ValueKind distinguishes the three forms a Value may take.
type ValueKind int

const (
	SentinelValue ValueKind = iota
	ClockValue
	DurationValue
)

// Value is a single entry in DailyEvents: a clock time, a duration or
// a Sentinel.
type Value struct {
	kind     ValueKind
	hours    float64
	sentinel Sentinel
}

// Clock returns a Value for a clock time expressed in hours, it is
// reduced to [0, 24).
func Clock(hours float64) Value {
	if !math.IsNaN(hours) && !math.IsInf(hours, 0) {
		hours = WrapHours(hours)
	}
	return Value{kind: ClockValue, hours: hours}
}

// Duration returns a Value for a span of hours.
func Duration(hours float64) Value {
	return Value{kind: DurationValue, hours: hours}
}

// Mark returns a Value for a Sentinel.
func Mark(s Sentinel) Value {
	return Value{kind: SentinelValue, sentinel: s}
}

// Kind returns the kind of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Hours returns the numeric value of a clock or duration, ok is false
// for a sentinel.
func (v Value) Hours() (float64, bool) {
	if v.kind == SentinelValue {
		return 0, false
	}
	return v.hours, true
}

// Sentinel returns the sentinel for v, ok is false for a clock or duration.
func (v Value) Sentinel() (Sentinel, bool) {
	if v.kind != SentinelValue {
		return "", false
	}
	return v.sentinel, true
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case ClockValue:
		return FormatClock(v.hours)
	case DurationValue:
		return FormatDuration(v.hours)
	default:
		if len(v.sentinel) == 0 {
			return string(Placeholder)
		}
		return string(v.sentinel)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.String(), nil
}

// Family identifies how the crossings of an EventAngle are reported.
type Family int

const (
	// RiseSet reports the morning and evening crossings plus their
	// difference as DayLength.
	RiseSet Family = iota
	// Twilight reports a dawn and dusk pair.
	Twilight
	// GoldenHour reports the evening crossing as its start and the
	// morning crossing as its end.
	GoldenHour
	// BlueHour reports only the evening crossing, it ends at civil dusk.
	BlueHour
)

func (f Family) String() string {
	switch f {
	case RiseSet:
		return "rise-set"
	case Twilight:
		return "twilight"
	case GoldenHour:
		return "golden-hour"
	case BlueHour:
		return "blue-hour"
	}
	return "unknown"
}

// EventAngle is a named solar altitude threshold.
type EventAngle struct {
	Name     string
	Altitude float64 // degrees
	Family   Family
	// First and Second are the keys reported for the crossings. For RiseSet
	// and Twilight they are the morning and evening keys, for GoldenHour
	// they are the start and end keys and BlueHour uses First only.
	First, Second Key
	// Absent is reported by Twilight when the Sun does not cross Altitude.
	Absent Sentinel
}

// Altitudes of the event thresholds, in degrees.
const (
	SunriseAltitude      = -0.833
	CivilAltitude        = -6
	NauticalAltitude     = -12
	AstronomicalAltitude = -18
	GoldenHourAltitude   = 6
	BlueHourAltitude     = -2
)

// EventAngles is the fixed table of events computed for each day.
var EventAngles = []EventAngle{
	{Name: "sunrise", Altitude: SunriseAltitude, Family: RiseSet, First: Sunrise, Second: Sunset},
	{Name: "civil", Altitude: CivilAltitude, Family: Twilight, First: CivilDawn, Second: CivilDusk, Absent: NoEvent},
	{Name: "nautical", Altitude: NauticalAltitude, Family: Twilight, First: NauticalDawn, Second: NauticalDusk, Absent: NoEvent},
	{Name: "astronomical", Altitude: AstronomicalAltitude, Family: Twilight, First: AstronomicalDawn, Second: AstronomicalDusk, Absent: Continuous},
	{Name: "goldenHour", Altitude: GoldenHourAltitude, Family: GoldenHour, First: GoldenHourStart, Second: GoldenHourEnd},
	{Name: "blueHour", Altitude: BlueHourAltitude, Family: BlueHour, First: BlueHourStart},
}
