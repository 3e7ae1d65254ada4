// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"cloudeng.io/sunlight/solar"
)

func TestFormatClock(t *testing.T) {
	for _, tc := range []struct {
		hours float64
		want  string
	}{
		{0, "00:00"},
		{13.0375, "13:02"},
		{23.999, "00:00"},
		{23.99, "23:59"},
		{24, "00:00"},
		{25.5, "01:30"},
		{-0.5, "23:30"},
		{-24.25, "23:45"},
		{math.NaN(), "--:--"},
		{math.Inf(1), "--:--"},
	} {
		if got, want := solar.FormatClock(tc.hours), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.hours, got, want)
		}
	}
}

func TestFormatClockRange(t *testing.T) {
	for h := -48.0; h <= 48; h += 0.0037 {
		s := solar.FormatClock(h)
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			t.Fatalf("%v: malformed %q", h, s)
		}
		hh, _ := strconv.Atoi(parts[0])
		mm, _ := strconv.Atoi(parts[1])
		if hh < 0 || hh >= 24 || mm < 0 || mm >= 60 {
			t.Errorf("%v: out of range %q", h, s)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	for _, tc := range []struct {
		hours float64
		want  string
	}{
		{0, "0h 0m"},
		{24, "24h 0m"},
		{16.64, "16h 38m"},
		{12.11, "12h 6m"},
		{9.999, "9h 59m"},
	} {
		if got, want := solar.FormatDuration(tc.hours), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.hours, got, want)
		}
	}
}

func TestParseClock(t *testing.T) {
	for _, tc := range []struct {
		val  string
		secs int
		ok   bool
	}{
		{"04:43", 4*3600 + 43*60, true},
		{"4:43", 4*3600 + 43*60, true},
		{"21:21:30", 21*3600 + 21*60 + 30, true},
		{"No event", 0, false},
		{"—", 0, false},
		{"--:--", 0, false},
		{"", 0, false},
		{"123:00", 0, false},
	} {
		secs, ok := solar.ParseClock(tc.val)
		if got, want := ok, tc.ok; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
		if got, want := secs, tc.secs; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
}

func TestWrapHours(t *testing.T) {
	for _, h := range []float64{-1e-15, -25, 0, 23.9999, 24, 1000.5} {
		w := solar.WrapHours(h)
		if w < 0 || w >= 24 {
			t.Errorf("%v: %v out of range", h, w)
		}
	}
}
