// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler, dates are written as YYYY-MM-DD.
func (cd CalendarDate) MarshalYAML() (any, error) {
	return cd.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, any of the formats accepted
// by Parse may be used.
func (cd *CalendarDate) UnmarshalYAML(value *yaml.Node) error {
	return cd.Parse(value.Value)
}

// MarshalYAML implements yaml.Marshaler, times are written as HH:MM:SS.
func (t TimeOfDay) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TimeOfDay) UnmarshalYAML(value *yaml.Node) error {
	return t.Parse(value.Value)
}
