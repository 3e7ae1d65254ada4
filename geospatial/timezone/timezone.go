// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timezone provides an approximate mapping from a geographic
// location to a UTC offset. It uses a small number of rectangles covering
// major political time zones, a simple daylight saving rule and a 15°
// longitude slice as a fallback. It is not a substitute for a time zone
// database: countries without daylight saving time, irregular borders and
// historical changes are not represented.
package timezone

import (
	"fmt"
	"math"
	"time"

	"cloudeng.io/sunlight/datetime"
)

// Zone is a rectangular approximation of a time zone.
type Zone struct {
	Name             string
	MinLat, MaxLat   float64
	MinLong, MaxLong float64
	// Standard is the standard UTC offset in hours.
	Standard float64
	// DST is true if the zone moves forward one hour during daylight saving time.
	DST bool
}

// Contains returns true if lat, long lie within the zone, the bounds are
// inclusive.
func (z Zone) Contains(lat, long float64) bool {
	return lat >= z.MinLat && lat <= z.MaxLat && long >= z.MinLong && long <= z.MaxLong
}

// Offset returns the offset in hours for the zone for the given month.
func (z Zone) Offset(lat float64, month datetime.Month) float64 {
	if z.DST && IsDST(lat, month) {
		return z.Standard + 1
	}
	return z.Standard
}

// Zones are matched in order, the first match wins.
var Zones = []Zone{
	{Name: "Central Europe", MinLat: 45, MaxLat: 55, MinLong: 12, MaxLong: 19, Standard: 1, DST: true},
	{Name: "UK, Ireland, Portugal", MinLat: 50, MaxLat: 60, MinLong: -10, MaxLong: 2, Standard: 0, DST: true},
	{Name: "Eastern Europe", MinLat: 45, MaxLat: 55, MinLong: 19, MaxLong: 30, Standard: 2, DST: true},
	{Name: "China", MinLat: 20, MaxLat: 50, MinLong: 75, MaxLong: 135, Standard: 8},
	{Name: "India", MinLat: 8, MaxLat: 37, MinLong: 68, MaxLong: 97, Standard: 5.5},
	{Name: "Japan", MinLat: 30, MaxLat: 46, MinLong: 130, MaxLong: 146, Standard: 9},
	{Name: "US Eastern", MinLat: 25, MaxLat: 50, MinLong: -85, MaxLong: -67, Standard: -5, DST: true},
	{Name: "US Central", MinLat: 25, MaxLat: 50, MinLong: -105, MaxLong: -85, Standard: -6, DST: true},
	{Name: "US Mountain", MinLat: 25, MaxLat: 50, MinLong: -115, MaxLong: -105, Standard: -7, DST: true},
	{Name: "US Pacific", MinLat: 25, MaxLat: 50, MinLong: -125, MaxLong: -115, Standard: -8, DST: true},
}

// Lookup returns the first of Zones that contains lat, long.
func Lookup(lat, long float64) (Zone, bool) {
	for _, z := range Zones {
		if z.Contains(lat, long) {
			return z, true
		}
	}
	return Zone{}, false
}

// IsDST implements a very simple daylight saving rule: April to October
// inclusive in the northern hemisphere and October to April inclusive
// in the southern hemisphere.
func IsDST(lat float64, month datetime.Month) bool {
	if lat >= 0 {
		return month >= 4 && month <= 10
	}
	return month <= 4 || month >= 10
}

// Longitude slice offsets are clamped to this range.
const (
	MinOffset = -12
	MaxOffset = 14
)

// Resolve returns the approximate UTC offset, in hours, for lat, long
// during month. Locations outside of Zones use round(long/15), plus one
// hour if IsDST, clamped to [MinOffset, MaxOffset]. Halves are rounded
// up, so -7.5 is -7.
func Resolve(lat, long float64, month datetime.Month) float64 {
	if z, ok := Lookup(lat, long); ok {
		return z.Offset(lat, month)
	}
	offset := math.Floor(long/15 + 0.5)
	if IsDST(lat, month) {
		offset++
	}
	return math.Max(MinOffset, math.Min(MaxOffset, offset))
}

// Location returns a fixed time.Location for an offset in hours.
func Location(offset float64) *time.Location {
	secs := int(math.Round(offset * 3600))
	return time.FixedZone(Name(offset), secs)
}

// Name returns a name of the form UTC+05:30 for offset.
func Name(offset float64) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	mins := int(math.Round(offset * 60))
	return fmt.Sprintf("UTC%c%02d:%02d", sign, mins/60, mins%60)
}
