package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "06:00", "14:30", "23:59"}
	invalid := []string{"24:00", "12:60", "6:00", "06:0", "noon", "", "06-00"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-11-01", "2000-12-31"}
	invalid := []string{"2025-13-01", "01-01-2025", "2025/11/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidISOWeekday(t *testing.T) {
	for day := 1; day <= 7; day++ {
		if !IsValidISOWeekday(day) {
			t.Errorf("IsValidISOWeekday(%d) = false, want true", day)
		}
	}
	for _, day := range []int{0, 8, -1} {
		if IsValidISOWeekday(day) {
			t.Errorf("IsValidISOWeekday(%d) = true, want false", day)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"shift_in", "shift_out", "break_start"}
	if !IsInSlice("shift_in", slice) {
		t.Error("IsInSlice should find shift_in")
	}
	if IsInSlice("absent", slice) {
		t.Error("IsInSlice should not find absent")
	}
}
