// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package timeconv

import (
	"strings"
	"testing"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		name string
		sec  float64
		want string
	}{
		{"zero", 0, "00h:00m:00s"},
		{"seconds only", 59, "00h:00m:59s"},
		{"minutes", 61, "00h:01m:01s"},
		{"hours", 3723, "01h:02m:03s"},
		{"days", 90061, "01T01h:01m:01s"},
		{"fractional", 1.5, "00h:00m:01.5000s"},
		{"negative clamps", -5, "00h:00m:00s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatSeconds(tc.sec); got != tc.want {
				t.Fatalf("FormatSeconds(%v) = %q, want %q", tc.sec, got, tc.want)
			}
		})
	}
}

func TestFormatSecondsYearsAndMonths(t *testing.T) {
	// One average year plus one average month plus one hour.
	sec := float64(31556926 + 2629743 + 3600)
	got := FormatSeconds(sec)
	if !strings.HasPrefix(got, "01-01-") {
		t.Fatalf("FormatSeconds(%v) = %q, want year and month prefix", sec, got)
	}
	if !strings.Contains(got, "01h:") {
		t.Fatalf("FormatSeconds(%v) = %q, want hour component", sec, got)
	}
}

func TestUnixToDatestring(t *testing.T) {
	got := UnixToDatestring(0)
	// The exact rendering depends on the host timezone; check the shape.
	if len(got) < len("1970-01-01 00:00:00.000 X") {
		t.Fatalf("UnixToDatestring(0) = %q, too short", got)
	}
	if !strings.Contains(got, "-01-0") {
		t.Fatalf("UnixToDatestring(0) = %q, want epoch date", got)
	}
	if !strings.Contains(got, ".000 ") {
		t.Fatalf("UnixToDatestring(0) = %q, want millisecond precision and tz", got)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1:2:3", 3723},
		{"0:0:0", 0},
		{"10:30", 630},
		{"2:00:00", 7200},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("ParseClock(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseClockRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "5", "1:2:3:4", "a:b", "1:x:3"} {
		if _, err := ParseClock(in); err == nil {
			t.Fatalf("ParseClock(%q) succeeded, want error", in)
		}
	}
}
