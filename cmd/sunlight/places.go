// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"cloudeng.io/cmdutil"
	"cloudeng.io/sunlight/geospatial/timezone"
)

type placesFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,$HOME/.sunlight.yaml,'yaml configuration file containing named places'"`
	Format string `subcmd:"format,text,'output format: text or yaml'"`
}

func listPlaces(ctx context.Context, values interface{}, _ []string) error {
	return runPlaces(ctx, os.Stdout, values.(*placesFlags))
}

func runPlaces(ctx context.Context, out io.Writer, fv *placesFlags) error {
	cl := &CommonFlags{LoggingFlags: fv.LoggingFlags, Config: fv.Config, Format: fv.Format}
	ctx, done, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	cfg, err := cl.config(ctx)
	if err != nil {
		return err
	}
	if fv.Format == "yaml" {
		return writeYAML(out, cfg)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tname\tlatitude\tlongitude\tutc offset\n")
	for _, p := range cfg.Places {
		def := ""
		if strings.EqualFold(p.Name, cfg.Default) {
			def = "*"
		}
		offset := "approximate"
		if p.UTCOffset != nil {
			offset = timezone.Name(*p.UTCOffset)
		}
		fmt.Fprintf(tw, "%v\t%v\t%.4f\t%.4f\t%v\n", def, p.Name, p.Latitude, p.Longitude, offset)
	}
	return tw.Flush()
}
