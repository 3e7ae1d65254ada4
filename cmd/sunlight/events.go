// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
	"cloudeng.io/sunlight/geospatial/timezone"
	"cloudeng.io/sunlight/solar"
)

type eventsFlags struct {
	CommonFlags
	Days      int  `subcmd:"days,1,number of consecutive days to display"`
	Reference bool `subcmd:"reference,false,'also display the sunrise and sunset computed by github.com/nathan-osman/go-sunrise'"`
}

type reference struct {
	Sunrise string `yaml:"sunrise"`
	Sunset  string `yaml:"sunset"`
}

type dayEvents struct {
	Date      datetime.CalendarDate `yaml:"date"`
	Place     string                `yaml:"place"`
	Latitude  float64               `yaml:"latitude"`
	Longitude float64               `yaml:"longitude"`
	UTCOffset string                `yaml:"utc_offset"`
	Condition string                `yaml:"condition"`
	Events    solar.DailyEvents     `yaml:"events"`
	Reference *reference            `yaml:"reference,omitempty"`
}

func referenceTimes(cd datetime.CalendarDate, loc location, offset float64) *reference {
	rise, set := astronomy.ReferenceSunRise(cd, loc.Latitude, loc.Longitude)
	tz := timezone.Location(offset)
	format := func(t time.Time) string {
		if t.IsZero() {
			return string(solar.NoEvent)
		}
		return t.In(tz).Format("15:04")
	}
	return &reference{Sunrise: format(rise), Sunset: format(set)}
}

func dailyEvents(cd datetime.CalendarDate, loc location, withReference bool) dayEvents {
	ev := solar.Compute(cd, loc.Latitude, loc.Longitude, loc.options()...)
	de := dayEvents{
		Date:      cd,
		Place:     loc.Name,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		UTCOffset: timezone.Name(ev.UTCOffset),
		Condition: ev.Condition().String(),
		Events:    ev,
	}
	if withReference {
		de.Reference = referenceTimes(cd, loc, ev.UTCOffset)
	}
	return de
}

func showEvents(ctx context.Context, values interface{}, _ []string) error {
	return runEvents(ctx, os.Stdout, time.Now(), values.(*eventsFlags))
}

func runEvents(ctx context.Context, out io.Writer, now time.Time, fv *eventsFlags) error {
	ctx, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	cd, loc, err := fv.resolve(ctx, now)
	if err != nil {
		return err
	}
	days := max(fv.Days, 1)
	if fv.Format == "yaml" {
		all := make([]dayEvents, 0, days)
		for i := range days {
			all = append(all, dailyEvents(cd.AddDays(i), loc, fv.Reference))
		}
		return writeYAML(out, all)
	}
	fmt.Fprintln(out, loc)
	for i := range days {
		day := cd.AddDays(i)
		de := dailyEvents(day, loc, fv.Reference)
		fmt.Fprintf(out, "\n%v %v (%v)\n", day, de.UTCOffset, de.Condition)
		if err := writeTable(out, de.Events); err != nil {
			return err
		}
		if de.Reference != nil {
			fmt.Fprintln(out, "reference:")
			if err := writeTable(out, de.Reference); err != nil {
				return err
			}
		}
	}
	return nil
}
