// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package places

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/logging/ctxlog"
)

// PostalCodes provides lookups of postal codes using the tab separated
// files published by www.geonames.org.
type PostalCodes struct {
	lookup map[string]Place
}

// NewPostalCodes returns an empty PostalCodes.
func NewPostalCodes() *PostalCodes {
	return &PostalCodes{lookup: make(map[string]Place)}
}

// Len returns the number of postal codes loaded.
func (pc *PostalCodes) Len() int {
	return len(pc.lookup)
}

// Lookup returns the place for the specified postal code and admin code
// (eg. AK 99553). The place is named for the geonames place name.
// GB and CA postal codes come in two formats, either the short form or
// long form:
//
//	GB: Eng BN91, or Eng "BN91 9AA".
//	CA: AB T0A, or AB "T0A 0A0".
func (pc *PostalCodes) Lookup(admin, postal string) (Place, bool) {
	p, ok := pc.lookup[strings.ToUpper(admin)+" "+strings.ToUpper(postal)]
	return p, ok
}

// ParsePostal parses a postal code specification of the form
// "<admin> <postal code>", eg. "AK 99553" or "ENG AL3 8QE".
func ParsePostal(spec string) (admin, postal string, err error) {
	admin, postal, ok := strings.Cut(strings.TrimSpace(spec), " ")
	postal = strings.TrimSpace(postal)
	if !ok || len(admin) == 0 || len(postal) == 0 {
		return "", "", fmt.Errorf("invalid postal code %q, expected <admin> <postal code>", spec)
	}
	return admin, postal, nil
}

// Load parses geonames postal code data.
func (pc *PostalCodes) Load(ctx context.Context, data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Text()) == 0 {
			continue
		}
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) != 12 {
			return fmt.Errorf("line %v: invalid line, wrong number of fields: (%v != 12) %v", line, len(parts), scanner.Text())
		}
		latStr, longStr := parts[9], parts[10]
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return fmt.Errorf("line %v: invalid latitude: %v: %w", line, latStr, err)
		}
		long, err := strconv.ParseFloat(longStr, 64)
		if err != nil {
			return fmt.Errorf("line %v: invalid longitude: %v: %w", line, longStr, err)
		}
		if err := ValidateCoordinates(lat, long); err != nil {
			return fmt.Errorf("line %v: %w", line, err)
		}
		key := strings.ToUpper(parts[4]) + " " + strings.ToUpper(parts[1])
		pc.lookup[key] = Place{Name: parts[2], Latitude: lat, Longitude: long}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data: %w", err)
	}
	ctxlog.Logger(ctx).Debug("loaded postal codes", "lines", line, "codes", len(pc.lookup))
	return nil
}

// LoadFile reads geonames postal code data from filename.
func (pc *PostalCodes) LoadFile(ctx context.Context, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := pc.Load(ctx, data); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Info("loaded postal codes", "file", filename, "codes", len(pc.lookup))
	return nil
}
