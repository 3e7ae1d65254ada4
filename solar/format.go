// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// NoTime is displayed for clock values that are not finite.
const NoTime = "--:--"

// WrapHours returns hours reduced to the range [0, 24).
func WrapHours(hours float64) float64 {
	h := math.Mod(math.Mod(hours, 24)+24, 24)
	if h >= 24 {
		// math.Mod(-tiny + 24, 24) can round to 24.
		return 0
	}
	return h
}

// FormatClock formats hours as HH:MM after reducing it to [0, 24) and
// rounding to the nearest minute. It never returns 24:00 or a minute field
// of 60. Non-finite values are formatted as NoTime.
func FormatClock(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return NoTime
	}
	total := int(math.Floor(WrapHours(hours)*60+0.5)) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatDuration formats hours as "<h>h <m>m", the minutes are truncated.
func FormatDuration(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return NoTime
	}
	h := math.Floor(hours)
	m := math.Floor((hours - h) * 60)
	return fmt.Sprintf("%dh %dm", int(h), int(m))
}

var clockRE = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ParseClock parses a clock value of the form HH:MM or HH:MM:SS and returns
// the number of seconds since midnight. ok is false for any other value,
// including the sentinels used for events that do not occur.
func ParseClock(val string) (seconds int, ok bool) {
	m := clockRE.FindStringSubmatch(val)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	secs := 0
	if len(m[3]) > 0 {
		secs, _ = strconv.Atoi(m[3])
	}
	return h*3600 + mins*60 + secs, true
}
