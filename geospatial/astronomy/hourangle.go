// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"

	"github.com/soniakeys/unit"
)

// HourAngle returns the time, in hours, between solar noon and the moment
// the Sun crosses altitude (degrees) for an observer at latitude lat
// (degrees) when the solar declination is decl. The returned value is half
// of the span between the morning and evening crossings. ok is false when
// the Sun never crosses that altitude on that day, ie. it is always above
// (polar day) or always below (polar night) it; NoonAltitude can be used
// to tell the two apart. A zero denominator, at the poles or for a
// declination of ±90°, is also reported as no crossing.
func HourAngle(lat float64, decl unit.Angle, altitude float64) (hours float64, ok bool) {
	phi := unit.AngleFromDeg(lat)
	den := phi.Cos() * decl.Cos()
	if den == 0 {
		return 0, false
	}
	cosH := (unit.AngleFromDeg(altitude).Sin() - phi.Sin()*decl.Sin()) / den
	if math.IsNaN(cosH) || math.IsInf(cosH, 0) || cosH < -1 || cosH > 1 {
		return 0, false
	}
	return unit.HourAngle(math.Acos(cosH)).Hour(), true
}
