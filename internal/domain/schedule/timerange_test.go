package schedule

import (
	"testing"
	"time"
)

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:30", want: 510},
		{in: "23:59", want: 1439},
		{in: " 9:15 ", want: 555},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "nope", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ClockMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestTimeRangeOverlaps(t *testing.T) {
	cases := []struct {
		a, b TimeRange
		want bool
	}{
		{a: TimeRange{Start: 480, End: 720}, b: TimeRange{Start: 600, End: 780}, want: true},
		{a: TimeRange{Start: 480, End: 720}, b: TimeRange{Start: 720, End: 780}, want: false},
		{a: TimeRange{Start: 480, End: 720}, b: TimeRange{Start: 0, End: 480}, want: false},
		{a: TimeRange{Start: 480, End: 720}, b: TimeRange{Start: 500, End: 600}, want: true},
	}

	for _, tc := range cases {
		if got := tc.a.Overlaps(tc.b); got != tc.want {
			t.Fatalf("%+v vs %+v: expected %v", tc.a, tc.b, tc.want)
		}
		// Overlap is symmetric.
		if got := tc.b.Overlaps(tc.a); got != tc.want {
			t.Fatalf("%+v vs %+v: overlap must be symmetric", tc.b, tc.a)
		}
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("08:00", "16:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != 480 || r.End != 960 {
		t.Fatalf("unexpected range: %+v", r)
	}

	if _, err := ParseRange("08:00", "26:00"); err == nil {
		t.Fatalf("expected error for invalid end")
	}
}

func TestWeekStart(t *testing.T) {
	// 2026-03-04 is a Wednesday; the containing week starts Sunday 2026-03-01.
	wed := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	got := WeekStart(wed)
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// A Sunday is its own week start.
	sun := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	if got := WeekStart(sun); !got.Equal(want) {
		t.Fatalf("sunday: expected %v, got %v", want, got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 4, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Fatalf("expected same day")
	}
	if SameDay(a, c) {
		t.Fatalf("expected different days")
	}
}
