package calendar

import (
	"testing"
	"time"
)

func TestParseHHMM(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:00", 360, false},
		{"14:30", 870, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
		{"6", 0, true},
	}
	for _, c := range cases {
		got, err := ParseHHMM(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseHHMM(%q) expected error, got %d", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHHMM(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHHMM(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestFormatHHMM(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{360, "06:00"},
		{1439, "23:59"},
		{-20, "23:40"}, // wraps to previous day
		{1440, "00:00"},
	}
	for _, c := range cases {
		if got := FormatHHMM(c.minutes); got != c.want {
			t.Errorf("FormatHHMM(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestISOWeekday(t *testing.T) {
	// 2025-11-03 is a Monday, 2025-11-09 a Sunday.
	monday := time.Date(2025, 11, 3, 12, 0, 0, 0, time.Local)
	sunday := time.Date(2025, 11, 9, 12, 0, 0, 0, time.Local)

	if got := ISOWeekday(monday); got != 1 {
		t.Errorf("ISOWeekday(monday) = %d, want 1", got)
	}
	if got := ISOWeekday(sunday); got != 7 {
		t.Errorf("ISOWeekday(sunday) = %d, want 7", got)
	}
}

func TestMinuteOfDayAndAtMinute(t *testing.T) {
	at := time.Date(2025, 11, 3, 6, 4, 30, 0, time.Local)
	if got := MinuteOfDay(at); got != 364 {
		t.Errorf("MinuteOfDay = %d, want 364", got)
	}

	rebuilt := AtMinute(at, 360)
	if rebuilt.Hour() != 6 || rebuilt.Minute() != 0 {
		t.Errorf("AtMinute rebuilt %v, want 06:00 on same day", rebuilt)
	}
	if !SameDay(at, rebuilt) {
		t.Error("AtMinute must stay on the same calendar day")
	}
}
