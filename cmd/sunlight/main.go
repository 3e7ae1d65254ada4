// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command sunlight displays the times of the solar events, and metrics
// derived from them, for a given date and location.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	eventsFlagSet := subcmd.NewFlagSet()
	eventsFlagSet.MustRegisterFlagStruct(&eventsFlags{}, nil, nil)
	metricsFlagSet := subcmd.NewFlagSet()
	metricsFlagSet.MustRegisterFlagStruct(&metricsFlags{}, nil, nil)
	peakFlagSet := subcmd.NewFlagSet()
	peakFlagSet.MustRegisterFlagStruct(&peakFlags{}, nil, nil)
	placesFlagSet := subcmd.NewFlagSet()
	placesFlagSet.MustRegisterFlagStruct(&placesFlags{}, nil, nil)

	eventsCmd := subcmd.NewCommand("events", eventsFlagSet, showEvents, subcmd.WithoutArguments())
	eventsCmd.Document("display sunrise, sunset, twilight, golden and blue hour times")

	metricsCmd := subcmd.NewCommand("metrics", metricsFlagSet, showMetrics, subcmd.WithoutArguments())
	metricsCmd.Document("display day length trends, solar geometry and photography metrics")

	peakCmd := subcmd.NewCommand("peak", peakFlagSet, showPeak, subcmd.WithoutArguments())
	peakCmd.Document("display the date of the fastest change in day length, the season and the equinoxes and solstices")

	placesCmd := subcmd.NewCommand("places", placesFlagSet, listPlaces, subcmd.WithoutArguments())
	placesCmd.Document("list the places defined in the configuration file")

	cmdSet = subcmd.NewCommandSet(eventsCmd, metricsCmd, peakCmd, placesCmd)
	cmdSet.Document(`display solar events and daylight metrics.

The location may be specified as a latitude and longitude, as a postal code
found in a geonames.org postal code file, or as the name of a place in the
configuration file. The configuration file's default place is used when
no location is specified. UTC offsets are approximated from the location
unless overridden.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
