package availability

import (
	"reflect"
	"testing"
	"time"

	"eventoz/models"
)

// Fixed clock: 2026-03-10 12:00 local to the test.
var testNow = func() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

const (
	yesterday = "2026-03-09"
	today     = "2026-03-10"
	tomorrow  = "2026-03-11"
)

func fixedHoursService() models.Service {
	return models.Service{
		ID:          "svc-dj",
		BookingType: models.BookingTimeBound,
		BusinessHours: models.BusinessHours{
			Type: models.HoursCustom, Start: "08:00", End: "20:00",
		},
	}
}

func mustCalculator(t *testing.T, svc models.Service) *Calculator {
	t.Helper()
	calc, err := NewCalculator(svc, testNow)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestNewCalculatorRejectsBadHours(t *testing.T) {
	svc := fixedHoursService()
	svc.BusinessHours = models.BusinessHours{Type: models.HoursCustom, Start: "20:00", End: "08:00"}
	if _, err := NewCalculator(svc, testNow); !IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestIsDayBookable(t *testing.T) {
	svc := fixedHoursService()
	svc.UnavailableDates = []string{"2026-03-20"}
	calc := mustCalculator(t, svc)

	tests := []struct {
		date string
		want bool
	}{
		{yesterday, false},
		{today, true},
		{tomorrow, true},
		{"2026-03-20", false}, // blocked by the provider
		{"not-a-date", false},
	}
	for _, tc := range tests {
		if got := calc.IsDayBookable(tc.date); got != tc.want {
			t.Errorf("IsDayBookable(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestMonthDays(t *testing.T) {
	svc := fixedHoursService()
	svc.UnavailableDates = []string{"2026-03-20"}
	calc := mustCalculator(t, svc)

	days := calc.MonthDays(2026, time.March)
	if len(days) != 31 {
		t.Fatalf("expected 31 days for March, got %d", len(days))
	}
	for _, d := range days {
		want := d.Date >= today && d.Date != "2026-03-20"
		if d.Bookable != want {
			t.Errorf("day %s bookable = %v, want %v", d.Date, d.Bookable, want)
		}
	}
}

// Scenario: fixed 8..20 hours, no reservations. Every hour offered and
// bookable, nothing outside the window.
func TestStartTimeOptionsOpenDay(t *testing.T) {
	calc := mustCalculator(t, fixedHoursService())

	options := calc.StartTimeOptions(tomorrow, nil)
	if len(options) != 13 {
		t.Fatalf("expected 13 options for 8..20, got %d", len(options))
	}
	for i, opt := range options {
		if opt.Hour != 8+i {
			t.Fatalf("option %d has hour %d, want %d", i, opt.Hour, 8+i)
		}
		if !opt.Bookable {
			t.Errorf("hour %d should be bookable on an empty day", opt.Hour)
		}
	}
	if options[0].Time != "08:00" || options[12].Time != "20:00" {
		t.Errorf("unexpected time labels %q..%q", options[0].Time, options[12].Time)
	}
}

// Scenario: existing reservation [16,18) strikes out exactly hours 16 and 17.
func TestStartTimeOptionsWithReservation(t *testing.T) {
	calc := mustCalculator(t, fixedHoursService())
	active := []models.Reservation{
		{ServiceID: "svc-dj", Date: tomorrow, StartHour: 16, EndHour: hourPtr(18), Status: models.ReservationConfirmed},
	}

	options := calc.StartTimeOptions(tomorrow, active)
	for _, opt := range options {
		wantBookable := opt.Hour < 16 || opt.Hour >= 18
		if opt.Bookable != wantBookable {
			t.Errorf("hour %d bookable = %v, want %v", opt.Hour, opt.Bookable, wantBookable)
		}
	}
}

func TestStartTimeOptionsBlockedDay(t *testing.T) {
	svc := fixedHoursService()
	svc.UnavailableDates = []string{tomorrow}
	calc := mustCalculator(t, svc)

	options := calc.StartTimeOptions(tomorrow, nil)
	if len(options) != 13 {
		t.Fatalf("blocked day must still return the full list, got %d entries", len(options))
	}
	for _, opt := range options {
		if opt.Bookable {
			t.Errorf("hour %d must not be bookable on a blocked day", opt.Hour)
		}
	}
}

func TestStartTimeOptionsIdempotent(t *testing.T) {
	calc := mustCalculator(t, fixedHoursService())
	active := []models.Reservation{
		{ServiceID: "svc-dj", Date: tomorrow, StartHour: 10, Status: models.ReservationPending},
	}

	first := calc.StartTimeOptions(tomorrow, active)
	second := calc.StartTimeOptions(tomorrow, active)
	if !reflect.DeepEqual(first, second) {
		t.Error("StartTimeOptions is not idempotent for unchanged inputs")
	}
}

func TestEndTimeOptions(t *testing.T) {
	reservation := models.Reservation{
		ServiceID: "svc-dj", Date: tomorrow, StartHour: 16, EndHour: hourPtr(18),
		Status: models.ReservationConfirmed,
	}

	tests := []struct {
		name      string
		active    []models.Reservation
		startHour int
		want      []int
	}{
		{
			name:      "free afternoon runs to closing",
			startHour: 14,
			want:      []int{15, 16, 17, 18, 19, 20},
		},
		{
			name:      "next reservation is a hard wall",
			active:    []models.Reservation{reservation},
			startHour: 14,
			want:      []int{15, 16},
		},
		{
			name:      "booking may touch the wall",
			active:    []models.Reservation{reservation},
			startHour: 15,
			want:      []int{16},
		},
		{
			name:      "closing hour start has no extension",
			startHour: 20,
			want:      nil,
		},
	}

	calc := mustCalculator(t, fixedHoursService())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.EndTimeOptions(tomorrow, tc.startHour, tc.active)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("EndTimeOptions = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEndTimeOptionsRejections(t *testing.T) {
	calc := mustCalculator(t, fixedHoursService())
	occupiedDay := []models.Reservation{
		{ServiceID: "svc-dj", Date: tomorrow, StartHour: 16, EndHour: hourPtr(18), Status: models.ReservationConfirmed},
	}

	// Start inside an occupied interval.
	if _, err := calc.EndTimeOptions(tomorrow, 17, occupiedDay); !IsInvalidSelection(err) {
		t.Errorf("occupied start should be an invalid selection, got %v", err)
	}
	// Start outside the window.
	if _, err := calc.EndTimeOptions(tomorrow, 6, nil); !IsInvalidSelection(err) {
		t.Errorf("out-of-window start should be an invalid selection, got %v", err)
	}
	// Delivery-bound services have no end times.
	svc := fixedHoursService()
	svc.BookingType = models.BookingDeliveryBound
	delivery := mustCalculator(t, svc)
	if _, err := delivery.EndTimeOptions(tomorrow, 10, nil); !IsInvalidSelection(err) {
		t.Errorf("delivery-bound end times should be an invalid selection, got %v", err)
	}
}

func TestEndTimeOptionsAllDay(t *testing.T) {
	svc := fixedHoursService()
	svc.BusinessHours = models.BusinessHours{Type: models.HoursAllDay}
	calc := mustCalculator(t, svc)

	got, err := calc.EndTimeOptions(tomorrow, 23, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{24}) {
		t.Fatalf("expected end-of-day boundary [24], got %v", got)
	}
}

// Scenario: delivery-bound service with a reservation at hour 10.
func TestDeliveryBoundStartOptions(t *testing.T) {
	svc := fixedHoursService()
	svc.BookingType = models.BookingDeliveryBound
	calc := mustCalculator(t, svc)
	active := []models.Reservation{
		{ServiceID: "svc-dj", Date: tomorrow, StartHour: 10, Status: models.ReservationPending},
	}

	for _, opt := range calc.StartTimeOptions(tomorrow, active) {
		if opt.Hour == 10 && opt.Bookable {
			t.Error("hour 10 should be struck out by the delivery reservation")
		}
		if opt.Hour != 10 && !opt.Bookable {
			t.Errorf("hour %d should stay bookable", opt.Hour)
		}
	}
}

func TestValidateSelection(t *testing.T) {
	reservation := models.Reservation{
		ServiceID: "svc-dj", Date: tomorrow, StartHour: 16, EndHour: hourPtr(18),
		Status: models.ReservationConfirmed,
	}

	tests := []struct {
		name      string
		selection models.SlotSelection
		active    []models.Reservation
		wantStale bool
		wantBad   bool
	}{
		{
			name:      "valid booking",
			selection: models.SlotSelection{Date: tomorrow, StartTime: "10:00", EndTime: "13:00"},
		},
		{
			name:      "booking ending at the wall",
			selection: models.SlotSelection{Date: tomorrow, StartTime: "14:00", EndTime: "16:00"},
			active:    []models.Reservation{reservation},
		},
		{
			name:      "start taken concurrently",
			selection: models.SlotSelection{Date: tomorrow, StartTime: "16:00", EndTime: "18:00"},
			active:    []models.Reservation{reservation},
			wantStale: true,
		},
		{
			name:      "end now crosses another booking",
			selection: models.SlotSelection{Date: tomorrow, StartTime: "14:00", EndTime: "17:00"},
			active:    []models.Reservation{reservation},
			wantStale: true,
		},
		{
			name:      "past date",
			selection: models.SlotSelection{Date: yesterday, StartTime: "10:00", EndTime: "12:00"},
			wantBad:   true,
		},
		{
			name:      "end before start",
			selection: models.SlotSelection{Date: tomorrow, StartTime: "12:00", EndTime: "10:00"},
			wantBad:   true,
		},
		{
			name:      "end beyond closing",
			selection: models.SlotSelection{Date: tomorrow, StartTime: "18:00", EndTime: "22:00"},
			wantBad:   true,
		},
		{
			name:      "start before opening",
			selection: models.SlotSelection{Date: tomorrow, StartTime: "06:00", EndTime: "09:00"},
			wantBad:   true,
		},
	}

	calc := mustCalculator(t, fixedHoursService())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.ValidateSelection(tc.selection, tc.active)
			switch {
			case tc.wantStale:
				if !IsStaleAvailability(err) {
					t.Fatalf("expected stale availability, got %v", err)
				}
			case tc.wantBad:
				if !IsInvalidSelection(err) {
					t.Fatalf("expected invalid selection, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.selection {
					t.Fatalf("selection mutated: got %+v, want %+v", got, tc.selection)
				}
			}
		})
	}
}

func TestValidateSelectionBlockedDay(t *testing.T) {
	svc := fixedHoursService()
	svc.UnavailableDates = []string{tomorrow}
	calc := mustCalculator(t, svc)

	sel := models.SlotSelection{Date: tomorrow, StartTime: "10:00", EndTime: "12:00"}
	if _, err := calc.ValidateSelection(sel, nil); !IsInvalidSelection(err) {
		t.Fatalf("blocked day should be an invalid selection, got %v", err)
	}
}

func TestValidateSelectionDelivery(t *testing.T) {
	svc := fixedHoursService()
	svc.BookingType = models.BookingDeliveryBound
	calc := mustCalculator(t, svc)
	active := []models.Reservation{
		{ServiceID: "svc-dj", Date: tomorrow, StartHour: 10, Status: models.ReservationPending},
	}

	// End time mirrors start time for delivery bookings.
	sel := models.SlotSelection{Date: tomorrow, StartTime: "09:00", EndTime: "09:00"}
	if _, err := calc.ValidateSelection(sel, active); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sel = models.SlotSelection{Date: tomorrow, StartTime: "09:00", EndTime: "11:00"}
	if _, err := calc.ValidateSelection(sel, active); !IsInvalidSelection(err) {
		t.Fatalf("delivery selection with a range should be invalid, got %v", err)
	}

	sel = models.SlotSelection{Date: tomorrow, StartTime: "10:00"}
	if _, err := calc.ValidateSelection(sel, active); !IsStaleAvailability(err) {
		t.Fatalf("taken delivery hour should be stale, got %v", err)
	}
}

func TestEndOfDayBoundaryNeverStarts(t *testing.T) {
	svc := fixedHoursService()
	svc.BookingType = models.BookingDeliveryBound
	svc.BusinessHours = models.BusinessHours{Type: models.HoursCustom, Start: "18:00", End: "24:00"}
	calc := mustCalculator(t, svc)

	options := calc.StartTimeOptions(tomorrow, nil)
	if len(options) != 6 {
		t.Fatalf("expected 6 start options for 18:00-24:00, got %d", len(options))
	}
	for _, opt := range options {
		if opt.Hour > 23 {
			t.Errorf("hour %d offered as a start time", opt.Hour)
		}
	}
	last := options[len(options)-1]
	if last.Hour != 23 || last.Time != "23:00" || !last.Bookable {
		t.Fatalf("last start option = %+v, want bookable hour 23", last)
	}

	// A 24:00 start can never be booked, even though 24:00 is a valid end.
	sel := models.SlotSelection{Date: tomorrow, StartTime: "24:00"}
	if _, err := calc.ValidateSelection(sel, nil); !IsInvalidSelection(err) {
		t.Fatalf("24:00 start should be an invalid selection, got %v", err)
	}
}

func TestEndOfDayBoundaryAsEnd(t *testing.T) {
	svc := fixedHoursService()
	svc.BusinessHours = models.BusinessHours{Type: models.HoursCustom, Start: "18:00", End: "24:00"}
	calc := mustCalculator(t, svc)

	ends, err := calc.EndTimeOptions(tomorrow, 23, nil)
	if err != nil {
		t.Fatalf("EndTimeOptions: %v", err)
	}
	if len(ends) != 1 || ends[0] != 24 {
		t.Fatalf("ends = %v, want [24]", ends)
	}

	sel := models.SlotSelection{Date: tomorrow, StartTime: "23:00", EndTime: "24:00"}
	if _, err := calc.ValidateSelection(sel, nil); err != nil {
		t.Fatalf("23:00-24:00 should validate, got %v", err)
	}
}
