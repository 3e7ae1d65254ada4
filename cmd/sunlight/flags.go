// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/places"
	"cloudeng.io/sunlight/geospatial/timezone"
	"cloudeng.io/sunlight/solar"
)

const defaultConfig = "$HOME/.sunlight.yaml"

// LocationFlags specify the location to use, in order of precedence:
// an explicit latitude and longitude, a postal code, a named place and
// finally the default place in the configuration file.
type LocationFlags struct {
	Latitude    string `subcmd:"lat,,'latitude in degrees, north is positive'"`
	Longitude   string `subcmd:"lng,,'longitude in degrees, east is positive'"`
	Place       string `subcmd:"place,,'name of a place in the configuration file'"`
	Postal      string `subcmd:"postal,,'postal code of the form <admin-code> <postal-code>, eg. AK 99553'"`
	PostalCodes string `subcmd:"postal-codes,,'tab separated postal code file from www.geonames.org'"`
	UTCOffset   string `subcmd:"utc-offset,,'utc offset in hours, overrides the approximate offset for the location'"`
}

type CommonFlags struct {
	cmdutil.LoggingFlags
	LocationFlags
	Config string `subcmd:"config,$HOME/.sunlight.yaml,'yaml configuration file containing named places'"`
	Date   string `subcmd:"date,,'date in YYYY-MM-DD format, defaults to today'"`
	Format string `subcmd:"format,text,'output format: text or yaml'"`
}

// setup creates the logger specified by the logging flags and returns a
// context that carries it. The returned function must be called to close
// the logger.
func (cl *CommonFlags) setup(ctx context.Context) (context.Context, func(), error) {
	switch cl.Format {
	case "", "text", "yaml":
	default:
		return ctx, func() {}, fmt.Errorf("unsupported output format: %q", cl.Format)
	}
	logger, err := cl.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

// date returns the date specified by the date flag or today's date.
func (cl *CommonFlags) date(now time.Time) (datetime.CalendarDate, error) {
	if len(cl.Date) == 0 {
		return datetime.CalendarDateFromTime(now), nil
	}
	return datetime.ParseCalendarDate(cl.Date)
}

// config reads the configuration file, a missing file is only an error
// if it is not the default.
func (cl *CommonFlags) config(ctx context.Context) (places.Config, error) {
	if len(cl.Config) == 0 {
		return places.Config{}, nil
	}
	filename := flags.ExpandEnv(cl.Config)
	if _, err := os.Stat(filename); os.IsNotExist(err) && cl.Config == defaultConfig {
		ctxlog.Logger(ctx).Debug("no configuration file", "file", filename)
		return places.Config{}, nil
	}
	return places.LoadConfig(ctx, filename)
}

// location is a resolved location and its UTC offset.
type location struct {
	places.Place
	offset float64
}

func (l location) String() string {
	if l.UTCOffset == nil {
		return fmt.Sprintf("%v (%v, approximate)", l.Place, timezone.Name(l.offset))
	}
	return l.Place.String()
}

// options returns the options to use with solar.Compute, the offset is
// left to solar.Compute unless one was explicitly specified so that it
// tracks daylight saving time across dates.
func (l location) options() []solar.Option {
	if l.UTCOffset == nil {
		return nil
	}
	return []solar.Option{solar.WithUTCOffset(*l.UTCOffset)}
}

func parseDegrees(name, val string) (float64, error) {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %q", name, val)
	}
	return v, nil
}

// place determines the place specified by the location flags.
func (cl *CommonFlags) place(ctx context.Context, cfg places.Config) (places.Place, error) {
	lf := cl.LocationFlags
	switch {
	case len(lf.Latitude) > 0 || len(lf.Longitude) > 0:
		if len(lf.Latitude) == 0 || len(lf.Longitude) == 0 {
			return places.Place{}, fmt.Errorf("both --lat and --lng must be specified")
		}
		lat, err := parseDegrees("latitude", lf.Latitude)
		if err != nil {
			return places.Place{}, err
		}
		long, err := parseDegrees("longitude", lf.Longitude)
		if err != nil {
			return places.Place{}, err
		}
		p := places.Place{Name: "location", Latitude: lat, Longitude: long}
		return p, places.ValidateCoordinates(lat, long)
	case len(lf.Postal) > 0:
		if len(lf.PostalCodes) == 0 {
			return places.Place{}, fmt.Errorf("--postal-codes must be specified with --postal")
		}
		admin, postal, err := places.ParsePostal(lf.Postal)
		if err != nil {
			return places.Place{}, err
		}
		pc := places.NewPostalCodes()
		if err := pc.LoadFile(ctx, flags.ExpandEnv(lf.PostalCodes)); err != nil {
			return places.Place{}, err
		}
		p, ok := pc.Lookup(admin, postal)
		if !ok {
			return places.Place{}, fmt.Errorf("unknown postal code: %v", lf.Postal)
		}
		return p, nil
	case len(lf.Place) > 0:
		p, ok := cfg.Lookup(lf.Place)
		if !ok {
			return places.Place{}, fmt.Errorf("unknown place: %v", lf.Place)
		}
		return p, nil
	}
	p, ok := cfg.DefaultPlace()
	if !ok {
		return places.Place{}, fmt.Errorf("no location specified and no default place is configured")
	}
	return p, nil
}

// location resolves the location flags and determines the UTC offset to
// use on the specified date.
func (cl *CommonFlags) location(ctx context.Context, cd datetime.CalendarDate) (location, error) {
	cfg, err := cl.config(ctx)
	if err != nil {
		return location{}, err
	}
	p, err := cl.place(ctx, cfg)
	if err != nil {
		return location{}, err
	}
	if len(cl.UTCOffset) > 0 {
		o, err := strconv.ParseFloat(cl.UTCOffset, 64)
		if err != nil {
			return location{}, fmt.Errorf("invalid utc offset: %q", cl.UTCOffset)
		}
		p.UTCOffset = &o
		if err := p.Validate(); err != nil {
			return location{}, err
		}
	}
	loc := location{Place: p}
	if p.UTCOffset != nil {
		loc.offset = *p.UTCOffset
	} else {
		loc.offset = timezone.Resolve(p.Latitude, p.Longitude, cd.Month)
	}
	ctxlog.Logger(ctx).Info("location", "place", p.Name, "latitude", p.Latitude, "longitude", p.Longitude, "utc_offset", loc.offset)
	return loc, nil
}

// resolve is a convenience routine that performs all of the common
// setup for a command.
func (cl *CommonFlags) resolve(ctx context.Context, now time.Time) (datetime.CalendarDate, location, error) {
	cd, err := cl.date(now)
	if err != nil {
		return datetime.CalendarDate{}, location{}, err
	}
	loc, err := cl.location(ctx, cd)
	return cd, loc, err
}
