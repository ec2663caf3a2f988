package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2024-06-01T00:00:00+09:00", "2024-06-01"},
		{"2024-06-01T23:59:59+09:00", "2024-06-01"},
		// 2024-06-01 05:00 UTC is 14:00 KST the same day
		{"2024-06-01T05:00:00Z", "2024-06-01"},
		// 2024-06-01 20:00 UTC is already 2024-06-02 in KST
		{"2024-06-01T20:00:00Z", "2024-06-02"},
	}
	for _, c := range cases {
		in, err := time.Parse(time.RFC3339, c.input)
		if err != nil {
			t.Fatalf("bad test input %q: %v", c.input, err)
		}
		got := StartOfDay(in)
		if FormatDate(got) != c.want {
			t.Errorf("StartOfDay(%s) = %s, want %s", c.input, FormatDate(got), c.want)
		}
		if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
			t.Errorf("StartOfDay(%s) is not midnight: %v", c.input, got)
		}
	}
}

func TestSameDay(t *testing.T) {
	a, _ := time.Parse(time.RFC3339, "2024-06-01T01:00:00+09:00")
	b, _ := time.Parse(time.RFC3339, "2024-06-01T23:00:00+09:00")
	c, _ := time.Parse(time.RFC3339, "2024-06-02T00:00:00+09:00")

	if !SameDay(a, b) {
		t.Error("SameDay(a, b) = false, want true")
	}
	if SameDay(b, c) {
		t.Error("SameDay(b, c) = true, want false")
	}
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2023-02-01", "2023-02-01", 1},
		{"2023-02-01", "2023-02-05", 5},
		{"2023-12-31", "2024-01-01", 2},
		// Across February in a leap year
		{"2024-02-28", "2024-03-01", 3},
	}
	for _, c := range cases {
		start, err := ParseDate(c.start)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", c.start, err)
		}
		end, err := ParseDate(c.end)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", c.end, err)
		}
		if got := DaysInclusive(start, end); got != c.want {
			t.Errorf("DaysInclusive(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestFormatMonthDay(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	if err != nil {
		t.Fatal(err)
	}
	got := FormatMonthDay(d)
	if got != "03-01" {
		t.Errorf("FormatMonthDay = %q, want %q", got, "03-01")
	}
	if len(got) != 5 {
		t.Errorf("FormatMonthDay length = %d, want 5", len(got))
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024/06/01", "06-01", "2024-13-01", "not-a-date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", s)
		}
	}
}
