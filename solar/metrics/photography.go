// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"math"

	"cloudeng.io/sunlight/geospatial/astronomy"
	"cloudeng.io/sunlight/solar"
	"github.com/soniakeys/unit"
)

// Span is the length of a window between two events in whole minutes.
// OK is false if either event does not occur.
type Span struct {
	Minutes int
	OK      bool
}

// String implements fmt.Stringer.
func (s Span) String() string {
	if !s.OK {
		return string(solar.Placeholder)
	}
	return fmt.Sprintf("%d min", s.Minutes)
}

// MarshalYAML implements yaml.Marshaler.
func (s Span) MarshalYAML() (any, error) {
	if !s.OK {
		return nil, nil
	}
	return s.Minutes, nil
}

// SpanOf returns the Span from the event start to the event end, an end
// that is earlier than start is taken to be on the following day.
func SpanOf(ev solar.DailyEvents, start, end solar.Key) Span {
	s, sok := ClockSeconds(ev, start)
	e, eok := ClockSeconds(ev, end)
	if !sok || !eok {
		return Span{}
	}
	secs := (e - s + SecondsPerDay) % SecondsPerDay
	return Span{Minutes: int(math.Round(float64(secs) / 60)), OK: true}
}

// GoldenDuration returns the lengths of the morning golden hour, from
// sunrise to its end, and the evening golden hour, from its start to
// sunset.
func GoldenDuration(ev solar.DailyEvents) (morning, evening Span) {
	return SpanOf(ev, solar.Sunrise, solar.GoldenHourEnd),
		SpanOf(ev, solar.GoldenHourStart, solar.Sunset)
}

// BlueDuration returns the length of the evening blue hour which ends at
// civil dusk.
func BlueDuration(ev solar.DailyEvents) Span {
	return SpanOf(ev, solar.BlueHourStart, solar.CivilDusk)
}

// CivilDuration returns the time from civil dawn to civil dusk.
func CivilDuration(ev solar.DailyEvents) Span {
	return SpanOf(ev, solar.CivilDawn, solar.CivilDusk)
}

// NauticalDuration returns the time from nautical dawn to nautical dusk.
func NauticalDuration(ev solar.DailyEvents) Span {
	return SpanOf(ev, solar.NauticalDawn, solar.NauticalDusk)
}

// AstronomicalDuration returns the time from astronomical dawn to
// astronomical dusk.
func AstronomicalDuration(ev solar.DailyEvents) Span {
	return SpanOf(ev, solar.AstronomicalDawn, solar.AstronomicalDusk)
}

// GoldenElevation returns the altitude in degrees of the Sun at the
// midpoint of the golden hour start and end times. ok is false if there
// is no golden hour.
func GoldenElevation(ev solar.DailyEvents) (float64, bool) {
	s, sok := ClockSeconds(ev, solar.GoldenHourStart)
	e, eok := ClockSeconds(ev, solar.GoldenHourEnd)
	if !sok || !eok {
		return 0, false
	}
	mid := float64(s+e) / 2 / 3600
	// The midpoint is treated as true solar time.
	h := unit.HourAngleFromHour(mid - 12)
	return astronomy.Altitude(ev.Latitude, ev.Position.Declination, h).Deg(), true
}

// LightQuality is a coarse classification of daylight for photography.
type LightQuality int

const (
	Blue LightQuality = iota
	Golden
	Warm
	Neutral
	Harsh
)

func (q LightQuality) String() string {
	switch q {
	case Golden:
		return "Golden"
	case Warm:
		return "Warm"
	case Neutral:
		return "Neutral"
	case Harsh:
		return "Harsh"
	}
	return "Blue"
}

// LightQualityOf classifies the light when the Sun is at altitude degrees.
func LightQualityOf(altitude float64) LightQuality {
	switch {
	case altitude > 45:
		return Harsh
	case altitude > 20:
		return Neutral
	case altitude > 6:
		return Warm
	case altitude > -4:
		return Golden
	}
	return Blue
}

// midpoint returns the clock time, in hours, half way from start to end.
func midpoint(ev solar.DailyEvents, start, end solar.Key) (float64, bool) {
	s, sok := ClockSeconds(ev, start)
	e, eok := ClockSeconds(ev, end)
	if !sok || !eok {
		return 0, false
	}
	span := (e - s + SecondsPerDay) % SecondsPerDay
	return solar.WrapHours(float64(s)/3600 + float64(span)/7200), true
}

// PortraitMid returns the clock time, in hours, half way through the
// evening golden hour.
func PortraitMid(ev solar.DailyEvents) (float64, bool) {
	return midpoint(ev, solar.GoldenHourStart, solar.Sunset)
}

// LandscapeMid returns the clock time, in hours, half way through the
// evening blue hour.
func LandscapeMid(ev solar.DailyEvents) (float64, bool) {
	return midpoint(ev, solar.BlueHourStart, solar.CivilDusk)
}
