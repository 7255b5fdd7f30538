package tasks

import (
	"testing"
	"time"

	"eventoz/models"
)

func hourPtr(h int) *int { return &h }

func TestEndInstant(t *testing.T) {
	tests := []struct {
		name        string
		reservation models.Reservation
		want        time.Time
	}{
		{
			name:        "explicit end hour",
			reservation: models.Reservation{Date: "2026-03-10", StartHour: 14, EndHour: hourPtr(16)},
			want:        time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC),
		},
		{
			name:        "delivery booking occupies one hour",
			reservation: models.Reservation{Date: "2026-03-10", StartHour: 9},
			want:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			name:        "end of day rolls to midnight",
			reservation: models.Reservation{Date: "2026-03-10", StartHour: 22, EndHour: hourPtr(24)},
			want:        time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndInstant(tt.reservation)
			if !got.Equal(tt.want) {
				t.Errorf("EndInstant() = %v, want %v", got, tt.want)
			}
		})
	}
}
