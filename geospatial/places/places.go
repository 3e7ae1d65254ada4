// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package places provides named locations, read from a YAML configuration
// file, and postal code lookups using data from www.geonames.org.
package places

import (
	"context"
	"fmt"
	"math"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sunlight/geospatial/timezone"
)

// Place is a named location.
type Place struct {
	Name      string  `yaml:"name" cmd:"name of the place"`
	Latitude  float64 `yaml:"latitude" cmd:"latitude in degrees, north is positive"`
	Longitude float64 `yaml:"longitude" cmd:"longitude in degrees, east is positive"`
	// UTCOffset, if set, overrides the approximate offset derived from the
	// location.
	UTCOffset *float64 `yaml:"utc_offset,omitempty" cmd:"utc offset in hours"`
}

func (p Place) String() string {
	if p.UTCOffset != nil {
		return fmt.Sprintf("%v: %.4f, %.4f (%v)", p.Name, p.Latitude, p.Longitude, timezone.Name(*p.UTCOffset))
	}
	return fmt.Sprintf("%v: %.4f, %.4f", p.Name, p.Latitude, p.Longitude)
}

// ValidateCoordinates returns an error if lat or long are not valid
// latitudes and longitudes.
func ValidateCoordinates(lat, long float64) error {
	errs := errors.M{}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		errs.Append(fmt.Errorf("latitude %v is not in the range [-90, 90]", lat))
	}
	if math.IsNaN(long) || long < -180 || long > 180 {
		errs.Append(fmt.Errorf("longitude %v is not in the range [-180, 180]", long))
	}
	return errs.Err()
}

// Validate returns all of the problems found with p.
func (p Place) Validate() error {
	errs := errors.M{}
	if len(p.Name) == 0 {
		errs.Append(fmt.Errorf("place has no name"))
	}
	if err := ValidateCoordinates(p.Latitude, p.Longitude); err != nil {
		errs.Append(fmt.Errorf("%v: %w", p.Name, err))
	}
	if o := p.UTCOffset; o != nil && (*o < timezone.MinOffset || *o > timezone.MaxOffset) {
		errs.Append(fmt.Errorf("%v: utc offset %v is not in the range [%v, %v]", p.Name, *o, timezone.MinOffset, timezone.MaxOffset))
	}
	return errs.Err()
}

// Config represents the configuration file.
type Config struct {
	Default string  `yaml:"default" cmd:"name of the place to use when none is specified"`
	Places  []Place `yaml:"places" cmd:"named places"`
}

// Validate returns all of the problems found with the configuration.
func (c Config) Validate() error {
	errs := errors.M{}
	seen := map[string]bool{}
	for _, p := range c.Places {
		errs.Append(p.Validate())
		key := strings.ToLower(p.Name)
		if seen[key] {
			errs.Append(fmt.Errorf("duplicate place: %v", p.Name))
		}
		seen[key] = true
	}
	if len(c.Default) > 0 && !seen[strings.ToLower(c.Default)] {
		errs.Append(fmt.Errorf("default place %q is not defined", c.Default))
	}
	return errs.Err()
}

// Lookup returns the place with the specified name, names are case
// insensitive.
func (c Config) Lookup(name string) (Place, bool) {
	for _, p := range c.Places {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Place{}, false
}

// DefaultPlace returns the default place, if one is configured.
func (c Config) DefaultPlace() (Place, bool) {
	if len(c.Default) == 0 {
		return Place{}, false
	}
	return c.Lookup(c.Default)
}

// ParseConfig parses and validates a YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfig(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and validates the YAML configuration in filename.
// The file is read using cloudeng.io/file.FSReadFile and hence may be
// read from any fs.ReadFileFS stored in ctx via file.ContextWithFS.
func LoadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration %v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Info("loaded places", "file", filename, "places", len(cfg.Places), "default", cfg.Default)
	return cfg, nil
}
