// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solar computes the times of the solar events for a single day
// at a given location: sunrise and sunset, the three twilights, golden and
// blue hour as well as solar noon and midnight. Days on which the Sun
// never sets, or never rises, are reported using Sentinel values rather
// than errors.
package solar

import (
	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
	"cloudeng.io/sunlight/geospatial/timezone"
)

// Condition describes the overall state of the Sun for a day.
type Condition int

const (
	Normal Condition = iota
	// PolarDay means that the Sun does not set.
	PolarDay
	// PolarNight means that the Sun does not rise.
	PolarNight
)

func (c Condition) String() string {
	switch c {
	case PolarDay:
		return string(AllDay)
	case PolarNight:
		return string(AllNight)
	}
	return "Normal"
}

// Option represents an option to Compute.
type Option func(o *options)

type options struct {
	utcOffset    float64
	hasUTCOffset bool
}

// WithUTCOffset specifies the UTC offset, in hours, to use for the
// location rather than the approximate offset returned by
// timezone.Resolve.
func WithUTCOffset(hours float64) Option {
	return func(o *options) {
		o.utcOffset = hours
		o.hasUTCOffset = true
	}
}

// DailyEvents contains the solar events for a single day and location.
// All clock times are local times for UTCOffset.
type DailyEvents struct {
	Date      datetime.CalendarDate
	Latitude  float64
	Longitude float64
	UTCOffset float64
	Position  astronomy.Position
	// NoonAltitude is the altitude of the Sun at solar noon in degrees.
	NoonAltitude float64

	condition Condition
	values    map[Key]Value
}

// Compute returns the solar events on the specified date for the location
// lat, long (degrees, north and east are positive).
func Compute(cd datetime.CalendarDate, lat, long float64, opts ...Option) DailyEvents {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	pos := astronomy.PositionOn(cd)
	tz := o.utcOffset
	if !o.hasUTCOffset {
		tz = timezone.Resolve(lat, long, cd.Month)
	}
	ev := DailyEvents{
		Date:         cd,
		Latitude:     lat,
		Longitude:    long,
		UTCOffset:    tz,
		Position:     pos,
		NoonAltitude: astronomy.NoonAltitude(lat, pos.Declination),
		values:       make(map[Key]Value, len(Keys)),
	}
	noon := 12 - long/15 - pos.EquationOfTime/60 + tz
	ev.values[SolarNoon] = Clock(noon)
	ev.values[SolarMidnight] = Clock(noon - 12)
	for _, ea := range EventAngles {
		ha, ok := astronomy.HourAngle(lat, pos.Declination, ea.Altitude)
		if !ok {
			ev.absent(ea)
			continue
		}
		ev.crossing(ea, noon-ha, noon+ha)
	}
	return ev
}

func (ev *DailyEvents) crossing(ea EventAngle, morning, evening float64) {
	switch ea.Family {
	case RiseSet:
		ev.values[ea.First] = Clock(morning)
		ev.values[ea.Second] = Clock(evening)
		ev.values[DayLength] = Duration(evening - morning)
	case Twilight:
		ev.values[ea.First] = Clock(morning)
		ev.values[ea.Second] = Clock(evening)
	case GoldenHour:
		ev.values[ea.First] = Clock(evening)
		ev.values[ea.Second] = Clock(morning)
	case BlueHour:
		ev.values[ea.First] = Clock(evening)
	}
}

func (ev *DailyEvents) absent(ea EventAngle) {
	switch ea.Family {
	case RiseSet:
		if ev.NoonAltitude > ea.Altitude {
			ev.condition = PolarDay
			ev.values[ea.First] = Mark(AllDay)
			ev.values[DayLength] = Duration(24)
		} else {
			ev.condition = PolarNight
			ev.values[ea.First] = Mark(NoEvent)
			ev.values[DayLength] = Duration(0)
		}
		ev.values[ea.Second] = ev.values[ea.First]
	case Twilight:
		ev.values[ea.First] = Mark(ea.Absent)
		ev.values[ea.Second] = Mark(ea.Absent)
	case GoldenHour:
		ev.values[ea.First] = Mark(NoEvent)
		ev.values[ea.Second] = Mark(NoEvent)
	case BlueHour:
		ev.values[ea.First] = Mark(Placeholder)
	}
}

// Condition returns the overall state of the Sun for the day.
func (ev DailyEvents) Condition() Condition {
	return ev.condition
}

// Get returns the value for key, ok is false if key is unknown.
func (ev DailyEvents) Get(key Key) (Value, bool) {
	v, ok := ev.values[key]
	return v, ok
}

// String returns the formatted value for key, or Placeholder if
// key is unknown.
func (ev DailyEvents) String(key Key) string {
	if v, ok := ev.values[key]; ok {
		return v.String()
	}
	return string(Placeholder)
}

// Hours returns the numeric value of key in hours, ok is false if the
// key is unknown or its value is a sentinel.
func (ev DailyEvents) Hours(key Key) (float64, bool) {
	v, ok := ev.values[key]
	if !ok {
		return 0, false
	}
	return v.Hours()
}

// Strings returns all of the formatted values keyed by their names.
func (ev DailyEvents) Strings() map[string]string {
	m := make(map[string]string, len(ev.values))
	for k, v := range ev.values {
		m[string(k)] = v.String()
	}
	return m
}
