package availability

import (
	"testing"

	"eventoz/models"
)

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name      string
		hours     models.BusinessHours
		wantOpen  int
		wantClose int
		wantAll   bool
		wantErr   bool
	}{
		{
			name:    "all day",
			hours:   models.BusinessHours{Type: models.HoursAllDay},
			wantAll: true,
		},
		{
			name:      "custom hours",
			hours:     models.BusinessHours{Type: models.HoursCustom, Start: "09:00", End: "17:00"},
			wantOpen:  9,
			wantClose: 17,
		},
		{
			name:      "unset hours fall back to defaults",
			hours:     models.BusinessHours{},
			wantOpen:  8,
			wantClose: 20,
		},
		{
			name:      "closing at the end-of-day boundary",
			hours:     models.BusinessHours{Type: models.HoursCustom, Start: "18:00", End: "24:00"},
			wantOpen:  18,
			wantClose: 24,
		},
		{
			name:      "only opening hour set keeps default close",
			hours:     models.BusinessHours{Type: models.HoursCustom, Start: "10:00"},
			wantOpen:  10,
			wantClose: 20,
		},
		{
			name:      "only closing hour set keeps default open",
			hours:     models.BusinessHours{Type: models.HoursCustom, End: "15:00"},
			wantOpen:  8,
			wantClose: 15,
		},
		{
			name:    "half-set window still must not invert",
			hours:   models.BusinessHours{Type: models.HoursCustom, Start: "21:00"},
			wantErr: true,
		},
		{
			name:    "open after close is rejected",
			hours:   models.BusinessHours{Type: models.HoursCustom, Start: "22:00", End: "02:00"},
			wantErr: true,
		},
		{
			name:    "open equals close is rejected",
			hours:   models.BusinessHours{Type: models.HoursCustom, Start: "10:00", End: "10:00"},
			wantErr: true,
		},
		{
			name:    "garbage start hour",
			hours:   models.BusinessHours{Type: models.HoursCustom, Start: "soon", End: "17:00"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			win, err := resolveWindow(tc.hours)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected configuration error, got window %+v", win)
				}
				if !IsConfigurationError(err) {
					t.Fatalf("expected configuration error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if win.allDay != tc.wantAll {
				t.Fatalf("allDay = %v, want %v", win.allDay, tc.wantAll)
			}
			if !win.allDay && (win.open != tc.wantOpen || win.close != tc.wantClose) {
				t.Fatalf("window = [%d, %d], want [%d, %d]", win.open, win.close, tc.wantOpen, tc.wantClose)
			}
		})
	}
}

func TestCandidateHours(t *testing.T) {
	allDay := window{open: 0, close: 23, allDay: true}
	hours := allDay.candidateHours()
	if len(hours) != 24 {
		t.Fatalf("expected 24 candidate hours for all-day, got %d", len(hours))
	}
	if hours[0] != 0 || hours[23] != 23 {
		t.Fatalf("expected hours 0..23, got %d..%d", hours[0], hours[23])
	}

	fixed := window{open: 8, close: 20}
	hours = fixed.candidateHours()
	if len(hours) != 13 {
		t.Fatalf("expected 13 candidate hours for 8..20, got %d", len(hours))
	}
	for i, h := range hours {
		if h != 8+i {
			t.Fatalf("candidate hours not ascending from open: index %d holds %d", i, h)
		}
	}

	// A window closing at the end-of-day boundary never offers hour 24 as
	// a start; 24 exists only as an end.
	lateNight := window{open: 18, close: 24}
	hours = lateNight.candidateHours()
	if len(hours) != 6 {
		t.Fatalf("expected 6 candidate hours for 18..24, got %d", len(hours))
	}
	if hours[len(hours)-1] != 23 {
		t.Fatalf("last candidate hour = %d, want 23", hours[len(hours)-1])
	}
}

func TestHourFormatting(t *testing.T) {
	tests := []struct {
		in   string
		want int
		err  bool
	}{
		{in: "08:00", want: 8},
		{in: "0:00", want: 0},
		{in: "23:00", want: 23},
		{in: "24:00", want: 24},
		{in: "25:00", err: true},
		{in: "-1:00", err: true},
		{in: "noon", err: true},
	}
	for _, tc := range tests {
		got, err := ParseHour(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParseHour(%q) = %d, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHour(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHour(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if s := FormatHour(8); s != "08:00" {
		t.Errorf(`FormatHour(8) = %q, want "08:00"`, s)
	}
	if s := FormatHour(24); s != "24:00" {
		t.Errorf(`FormatHour(24) = %q, want "24:00"`, s)
	}
}
