package core

import (
	"testing"
	"time"
)

func TestDateOfDropsTimeOfDay(t *testing.T) {
	instant := time.Date(2024, 5, 31, 23, 15, 42, 0, time.UTC)
	d := DateOf(instant)
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Fatalf("expected midnight, got %v", d.Time)
	}
	if d.Year() != 2024 || d.Month() != time.May || d.Day() != 31 {
		t.Fatalf("wrong calendar day: %v", d)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b Date
		want int
	}{
		{NewDate(2024, 1, 1), NewDate(2024, 1, 1), 0},
		{NewDate(2024, 1, 1), NewDate(2024, 1, 8), 7},
		{NewDate(2024, 1, 8), NewDate(2024, 1, 1), -7},
		{NewDate(2024, 2, 28), NewDate(2024, 3, 1), 2}, // leap year
	}
	for _, tc := range cases {
		if got := DaysBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDateInMonth(t *testing.T) {
	d := NewDate(2024, 5, 31)
	if !d.InMonth(2024, time.May) {
		t.Fatalf("2024-05-31 should be in May 2024")
	}
	if d.InMonth(2024, time.June) {
		t.Fatalf("2024-05-31 should not be in June 2024")
	}
	if d.InMonth(2023, time.May) {
		t.Fatalf("2024-05-31 should not be in May 2023")
	}
}

func TestDateJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Date
		ok   bool
	}{
		{"date", `"2024-05-31"`, NewDate(2024, 5, 31), true},
		{"empty", `""`, Date{}, true},
		{"null", `null`, Date{}, true},
		{"garbage", `"not-a-date"`, Date{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			err := d.UnmarshalJSON([]byte(tc.in))
			if tc.ok != (err == nil) {
				t.Fatalf("err = %v, ok = %v", err, tc.ok)
			}
			if tc.ok && !d.Equal(tc.want.Time) {
				t.Fatalf("got %v, want %v", d, tc.want)
			}
		})
	}

	data, err := NewDate(2024, 5, 31).MarshalJSON()
	if err != nil || string(data) != `"2024-05-31"` {
		t.Fatalf("marshal: %s (err=%v)", data, err)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Fatalf("expected error for month 13")
	}
	d, err := ParseDate(" 2024-05-31 ")
	if err != nil || d != NewDate(2024, 5, 31) {
		t.Fatalf("got %v (err=%v)", d, err)
	}
}
