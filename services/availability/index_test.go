package availability

import (
	"testing"

	"eventoz/models"
)

func hourPtr(h int) *int { return &h }

func TestOccupiedIntervals(t *testing.T) {
	date := "2026-03-11"
	reservations := []models.Reservation{
		{ServiceID: "s1", Date: date, StartHour: 16, EndHour: hourPtr(18)},
		{ServiceID: "s1", Date: date, StartHour: 10}, // no end: occupies one hour
		{ServiceID: "s1", Date: "2026-03-12", StartHour: 9, EndHour: hourPtr(11)}, // other day
		{ServiceID: "s1", Date: date, StartHour: 23},                              // capped at end of day
	}

	intervals := OccupiedIntervals(reservations, date)
	if len(intervals) != 3 {
		t.Fatalf("expected 3 intervals, got %d: %+v", len(intervals), intervals)
	}
	if intervals[0] != (Interval{Start: 16, End: 18}) {
		t.Errorf("interval 0 = %+v, want [16,18)", intervals[0])
	}
	if intervals[1] != (Interval{Start: 10, End: 11}) {
		t.Errorf("interval 1 = %+v, want [10,11)", intervals[1])
	}
	if intervals[2] != (Interval{Start: 23, End: 24}) {
		t.Errorf("interval 2 = %+v, want [23,24)", intervals[2])
	}
}

func TestOccupiedIntervalsMalformed(t *testing.T) {
	date := "2026-03-11"
	reservations := []models.Reservation{
		{Date: date, StartHour: 14, EndHour: hourPtr(12)}, // end before start: one hour
		{Date: date, StartHour: 22, EndHour: hourPtr(30)}, // runs past midnight: capped
		{Date: date, StartHour: -2},                       // out of range: dropped
	}

	intervals := OccupiedIntervals(reservations, date)
	if len(intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d: %+v", len(intervals), intervals)
	}
	if intervals[0] != (Interval{Start: 14, End: 15}) {
		t.Errorf("malformed end should occupy one hour, got %+v", intervals[0])
	}
	if intervals[1] != (Interval{Start: 22, End: 24}) {
		t.Errorf("overlong end should cap at 24, got %+v", intervals[1])
	}
}

func TestOccupiedUnion(t *testing.T) {
	// Overlapping intervals must still answer as a plain union.
	intervals := []Interval{{Start: 9, End: 12}, {Start: 11, End: 14}}

	for h := 9; h < 14; h++ {
		if !occupied(intervals, h) {
			t.Errorf("hour %d should be occupied", h)
		}
	}
	if occupied(intervals, 8) || occupied(intervals, 14) {
		t.Error("hours outside the union should be free")
	}
}

func TestNextStartAfter(t *testing.T) {
	intervals := []Interval{{Start: 16, End: 18}, {Start: 10, End: 11}, {Start: 20, End: 21}}

	if next, ok := nextStartAfter(intervals, 14); !ok || next != 16 {
		t.Errorf("nextStartAfter(14) = %d, %v; want 16, true", next, ok)
	}
	if next, ok := nextStartAfter(intervals, 9); !ok || next != 10 {
		t.Errorf("nextStartAfter(9) = %d, %v; want 10, true", next, ok)
	}
	if _, ok := nextStartAfter(intervals, 20); ok {
		t.Error("nextStartAfter(20) should find nothing")
	}
	if _, ok := nextStartAfter(nil, 0); ok {
		t.Error("nextStartAfter on empty index should find nothing")
	}
}
