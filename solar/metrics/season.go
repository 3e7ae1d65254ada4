// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
)

// MeanHalfYear is the mean number of days between solstices.
const MeanHalfYear = 182.625

// NextSolstice returns the next of the fixed dates June 21 or December 21
// that is strictly after cd.
func NextSolstice(cd datetime.CalendarDate) datetime.CalendarDate {
	june := datetime.NewCalendarDate(cd.Year, datetime.June, 21)
	if cd.Before(june) {
		return june
	}
	dec := datetime.NewCalendarDate(cd.Year, datetime.December, 21)
	if cd.Before(dec) {
		return dec
	}
	return datetime.NewCalendarDate(cd.Year+1, datetime.June, 21)
}

// DaysToSolstice returns the number of days until NextSolstice.
func DaysToSolstice(cd datetime.CalendarDate) int {
	return cd.DaysUntil(NextSolstice(cd))
}

// SeasonProgress returns the percentage, to one decimal place, of the
// half year between solstices that has elapsed by cd. The previous
// solstice is taken to be MeanHalfYear days before NextSolstice and the
// result is clamped to [0, 100].
func SeasonProgress(cd datetime.CalendarDate) float64 {
	remaining := float64(DaysToSolstice(cd))
	pct := 100 * (MeanHalfYear - remaining) / MeanHalfYear
	pct = math.Max(0, math.Min(100, pct))
	return math.Round(pct*10) / 10
}

// AstronomicalSeason returns the season at latitude lat on cd using the
// true dates of the equinoxes and solstices.
func AstronomicalSeason(cd datetime.CalendarDate, lat float64) astronomy.Season {
	return astronomy.SeasonOf(cd, lat)
}
