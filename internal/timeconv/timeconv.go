// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package timeconv converts between human-readable clock strings, elapsed
// durations and unix timestamps.
package timeconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Average month and year lengths in seconds (30.44 days, 365.25 days).
const (
	secondsInMinute = 60
	secondsInHour   = 3600
	secondsInDay    = 86400
	secondsInMonth  = 2629743
	secondsInYear   = 31556926
)

// FormatSeconds renders an elapsed duration in seconds as
// [yy-][mm-][dd T]hh'h':mm'm':ss['.'ffff]s. Year, month and day components
// only appear when nonzero; the fractional part only appears when the input
// has one, truncated to four digits. Negative input is clamped to zero.
func FormatSeconds(sec float64) string {
	if sec < 0 || math.IsNaN(sec) {
		sec = 0
	}

	years, rem := math.Floor(sec/secondsInYear), math.Mod(sec, secondsInYear)
	months, rem := math.Floor(rem/secondsInMonth), math.Mod(rem, secondsInMonth)
	days, rem := math.Floor(rem/secondsInDay), math.Mod(rem, secondsInDay)
	hours, rem := math.Floor(rem/secondsInHour), math.Mod(rem, secondsInHour)
	minutes, seconds := math.Floor(rem/secondsInMinute), math.Mod(rem, secondsInMinute)
	intSeconds, fracSeconds := math.Floor(seconds), seconds-math.Floor(seconds)

	var b strings.Builder
	if years > 0 {
		fmt.Fprintf(&b, "%02d-", int(years))
	}
	if months > 0 {
		fmt.Fprintf(&b, "%02d-", int(months))
	}
	if days > 0 {
		fmt.Fprintf(&b, "%02dT", int(days))
	}

	fmt.Fprintf(&b, "%02dh:%02dm:", int(hours), int(minutes))

	if fracSeconds > 0 {
		fmt.Fprintf(&b, "%02d.%04ds", int(intSeconds), int(fracSeconds*1e4))
	} else {
		fmt.Fprintf(&b, "%02ds", int(intSeconds))
	}

	return b.String()
}

// UnixToDatestring converts a unix timestamp to a date string in the local
// system timezone, with millisecond precision and the timezone abbreviation,
// e.g. "2026-08-26 14:03:07.251 CEST".
func UnixToDatestring(unix float64) string {
	sec := int64(unix)
	nsec := int64((unix - float64(sec)) * 1e9)
	local := time.Unix(sec, nsec).Local()
	return local.Format("2006-01-02 15:04:05.000 MST")
}

// ParseClock parses "h:m:s" or "m:s" into a total number of seconds.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")

	var hours, minutes, seconds int
	var err error
	switch len(parts) {
	case 3:
		if hours, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return 0, fmt.Errorf("invalid time format %q: %w", s, err)
		}
		if minutes, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return 0, fmt.Errorf("invalid time format %q: %w", s, err)
		}
		if seconds, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return 0, fmt.Errorf("invalid time format %q: %w", s, err)
		}
	case 2:
		if minutes, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return 0, fmt.Errorf("invalid time format %q: %w", s, err)
		}
		if seconds, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return 0, fmt.Errorf("invalid time format %q: %w", s, err)
		}
	default:
		return 0, fmt.Errorf("invalid time format %q: want h:m:s or m:s", s)
	}

	return hours*secondsInHour + minutes*secondsInMinute + seconds, nil
}
