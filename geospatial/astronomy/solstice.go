// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"cloudeng.io/sunlight/datetime"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// December returns the December solstice.
func December(year int) datetime.CalendarDate {
	return JulianDayToCalendar(solstice.December(year))
}

// March returns the March equinox.
func March(year int) datetime.CalendarDate {
	return JulianDayToCalendar(solstice.March(year))
}

// June returns the June solstice.
func June(year int) datetime.CalendarDate {
	return JulianDayToCalendar(solstice.June(year))
}

// September returns the September equinox.
func September(year int) datetime.CalendarDate {
	return JulianDayToCalendar(solstice.September(year))
}

// TurningPoints contains the dates of the equinoxes and solstices for
// a single year.
type TurningPoints struct {
	March     datetime.CalendarDate `yaml:"march_equinox"`
	June      datetime.CalendarDate `yaml:"june_solstice"`
	September datetime.CalendarDate `yaml:"september_equinox"`
	December  datetime.CalendarDate `yaml:"december_solstice"`
}

// TurningPointsFor returns the equinoxes and solstices for year.
func TurningPointsFor(year int) TurningPoints {
	return TurningPoints{
		March:     March(year),
		June:      June(year),
		September: September(year),
		December:  December(year),
	}
}

// Season represents one of the four astronomical seasons.
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Autumn
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Autumn:
		return "Autumn"
	default:
		return "Winter"
	}
}

// SeasonOf returns the astronomical season at latitude lat on the
// specified date, the seasons are bounded by the equinoxes and solstices
// and are reversed in the southern hemisphere.
func SeasonOf(cd datetime.CalendarDate, lat float64) Season {
	tp := TurningPointsFor(cd.Year)
	var s Season
	switch {
	case cd.Before(tp.March):
		s = Winter
	case cd.Before(tp.June):
		s = Spring
	case cd.Before(tp.September):
		s = Summer
	case cd.Before(tp.December):
		s = Autumn
	default:
		s = Winter
	}
	if lat < 0 {
		s = (s + 2) % 4
	}
	return s
}
