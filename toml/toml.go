// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package toml

import (
	"fmt"
	"time"
)

// Duration is a TOML wrapper type for time.Duration. Every Duration this
// package decodes is used as a deadline (config.Config.Timeout, and
// ctl.DumpCommand.Timeout which is copied from it, are the only fields of
// this type), so, unlike a bare time.Duration, zero and
// negative values are rejected at decode time rather than reaching a
// caller as a deadline that has already passed or never applies.
type Duration time.Duration

// String returns the string representation of the duration.
func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalText parses a TOML value into a duration value. The duration
// must be strictly positive.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("duration %q must be positive", text)
	}

	*d = Duration(v)
	return nil
}

// MarshalText writes duration value in text format.
func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// MarshalTOML write duration into valid TOML.
func (d Duration) MarshalTOML() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}
