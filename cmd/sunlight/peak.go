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
	"cloudeng.io/sunlight/solar"
	"cloudeng.io/sunlight/solar/metrics"
)

type peakFlags struct {
	CommonFlags
}

type peakReport struct {
	Date           datetime.CalendarDate   `yaml:"date"`
	Place          string                  `yaml:"place"`
	Latitude       float64                 `yaml:"latitude"`
	Season         string                  `yaml:"season"`
	SeasonProgress float64                 `yaml:"season_progress"`
	DayLength      string                  `yaml:"day_length"`
	PeakChange     datetime.CalendarDate   `yaml:"peak_change"`
	PeakDelta      string                  `yaml:"peak_delta"`
	DaysToPeak     int                     `yaml:"days_to_peak"`
	NextSolstice   datetime.CalendarDate   `yaml:"next_solstice"`
	DaysToSolstice int                     `yaml:"days_to_solstice"`
	TurningPoints  astronomy.TurningPoints `yaml:"turning_points"`
}

func showPeak(ctx context.Context, values interface{}, _ []string) error {
	return runPeak(ctx, os.Stdout, time.Now(), values.(*peakFlags))
}

func newPeakReport(cd datetime.CalendarDate, loc location) peakReport {
	peak := metrics.PeakChangeDate(cd, loc.Latitude)
	return peakReport{
		Date:           cd,
		Place:          loc.Name,
		Latitude:       loc.Latitude,
		Season:         metrics.AstronomicalSeason(cd, loc.Latitude).String(),
		SeasonProgress: metrics.SeasonProgress(cd),
		DayLength:      solar.FormatDuration(float64(metrics.DaylightSeconds(cd, loc.Latitude)) / 3600),
		PeakChange:     peak,
		PeakDelta:      metrics.DeltaLabel(float64(metrics.DeltaDayLength(peak, loc.Latitude, -1)), true),
		DaysToPeak:     cd.DaysUntil(peak),
		NextSolstice:   metrics.NextSolstice(cd),
		DaysToSolstice: metrics.DaysToSolstice(cd),
		TurningPoints:  astronomy.TurningPointsFor(cd.Year),
	}
}

func runPeak(ctx context.Context, out io.Writer, now time.Time, fv *peakFlags) error {
	ctx, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	cd, loc, err := fv.resolve(ctx, now)
	if err != nil {
		return err
	}
	if fv.Format != "yaml" {
		fmt.Fprintln(out, loc)
	}
	return write(out, fv.Format, newPeakReport(cd, loc))
}
