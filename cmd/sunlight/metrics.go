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
	"cloudeng.io/sunlight/geospatial/timezone"
	"cloudeng.io/sunlight/solar"
	"cloudeng.io/sunlight/solar/metrics"
)

type metricsFlags struct {
	CommonFlags
	Time   string  `subcmd:"time,,'local time of day as HH:MM or HH:MM:SS, defaults to now'"`
	Height float64 `subcmd:"height,1,'height of the object used to calculate shadow lengths'"`
}

func showMetrics(ctx context.Context, values interface{}, _ []string) error {
	return runMetrics(ctx, os.Stdout, time.Now(), values.(*metricsFlags))
}

func (fv *metricsFlags) timeOfDay(now time.Time, offset float64) (datetime.TimeOfDay, error) {
	if len(fv.Time) == 0 {
		return datetime.TimeOfDayFromTime(now.In(timezone.Location(offset))), nil
	}
	var tod datetime.TimeOfDay
	if err := tod.Parse(fv.Time); err != nil {
		return 0, err
	}
	return tod, nil
}

func runMetrics(ctx context.Context, out io.Writer, now time.Time, fv *metricsFlags) error {
	ctx, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	if fv.Height <= 0 {
		return fmt.Errorf("height must be positive: %v", fv.Height)
	}
	cd, loc, err := fv.resolve(ctx, now)
	if err != nil {
		return err
	}
	tod, err := fv.timeOfDay(now, loc.offset)
	if err != nil {
		return err
	}
	ev := solar.Compute(cd, loc.Latitude, loc.Longitude, loc.options()...)
	report := metrics.Summarize(ev, tod, fv.Height)
	if fv.Format != "yaml" {
		fmt.Fprintln(out, loc)
	}
	return write(out, fv.Format, report)
}
