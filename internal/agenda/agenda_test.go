package agenda

import (
	"testing"
	"time"

	"therapycare-api/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func appt(id, day, at string) model.Appointment {
	return model.Appointment{ID: id, PatientName: "P " + id, Date: day, Time: at, Duration: 60}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", date(2025, 3, 10), date(2025, 3, 10)},
		{"wednesday steps back", date(2025, 3, 12), date(2025, 3, 10)},
		{"saturday steps back", date(2025, 3, 15), date(2025, 3, 10)},
		{"sunday steps back six", date(2025, 3, 16), date(2025, 3, 10)},
		{"across month boundary", date(2025, 4, 2), date(2025, 3, 31)},
		{"across year boundary", date(2026, 1, 1), date(2025, 12, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekStartIdempotent(t *testing.T) {
	d := date(2025, 1, 1)
	for i := 0; i < 400; i++ {
		ws := WeekStart(d)
		if !WeekStart(ws).Equal(ws) {
			t.Fatalf("WeekStart not idempotent for %v: %v -> %v", d, ws, WeekStart(ws))
		}
		if ws.Weekday() != time.Monday {
			t.Fatalf("WeekStart(%v) = %v is not a Monday", d, ws)
		}
		if ws.After(d) {
			t.Fatalf("WeekStart(%v) = %v is after the input", d, ws)
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestWeekDays(t *testing.T) {
	d := date(2025, 3, 13) // Thursday
	days := WeekDays(WeekStart(d))
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for i := 1; i < 7; i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Errorf("days not consecutive at %d: %v -> %v", i, days[i-1], days[i])
		}
	}
	// the input date lies inside its own week
	if d.Before(days[0]) || d.After(days[6]) {
		t.Errorf("%v outside its week range %v..%v", d, days[0], days[6])
	}
}

func TestNavigate(t *testing.T) {
	start := date(2025, 3, 10)
	now := date(2025, 6, 18) // a Wednesday

	if got := Navigate(start, Next, now); !got.Equal(date(2025, 3, 17)) {
		t.Errorf("next: got %v", got)
	}
	if got := Navigate(start, Previous, now); !got.Equal(date(2025, 3, 3)) {
		t.Errorf("previous: got %v", got)
	}
	if got := Navigate(start, Today, now); !got.Equal(date(2025, 6, 16)) {
		t.Errorf("today: got %v", got)
	}
}

func TestSlotAppointmentsBucketing(t *testing.T) {
	appts := []model.Appointment{
		appt("a", "2025-03-10", "09:15"),
		appt("b", "2025-03-10", "09:00"),
		appt("c", "2025-03-10", "10:00"),
		appt("d", "2025-03-11", "09:15"), // other day
	}
	day := date(2025, 3, 10)

	nine := SlotAppointments(appts, day, 9)
	if len(nine) != 2 {
		t.Fatalf("09 bucket: expected 2, got %d", len(nine))
	}
	if len(SlotAppointments(appts, day, 8)) != 0 {
		t.Error("09:15 leaked into the 08 bucket")
	}
	ten := SlotAppointments(appts, day, 10)
	if len(ten) != 1 || ten[0].ID != "c" {
		t.Errorf("10 bucket: got %v", ten)
	}
}

func TestSlotAppointmentsMalformedTime(t *testing.T) {
	appts := []model.Appointment{
		appt("a", "2025-03-10", "garbage"),
		appt("b", "2025-03-10", "9"),
		appt("c", "2025-03-10", "aa:bb"),
		appt("d", "2025-03-10", ""),
	}
	day := date(2025, 3, 10)
	for h := GridStartHour; h <= GridEndHour; h++ {
		if got := SlotAppointments(appts, day, h); len(got) != 0 {
			t.Errorf("malformed times matched bucket %d: %v", h, got)
		}
	}
}

func TestOutOfWindowAppointmentAbsentFromGridPresentInList(t *testing.T) {
	appts := []model.Appointment{
		appt("early", "2025-03-10", "06:00"),
		appt("mid", "2025-03-10", "09:15"),
	}

	w := BuildWeekView(appts, date(2025, 3, 10))
	seen := map[string]bool{}
	for _, day := range w.Slots {
		for _, slot := range day {
			for _, a := range slot {
				seen[a.ID] = true
			}
		}
	}
	if seen["early"] {
		t.Error("06:00 appointment rendered in the grid")
	}
	if !seen["mid"] {
		t.Error("09:15 appointment missing from the grid")
	}

	grouped := GroupByDate(appts)
	if len(grouped["2025-03-10"]) != 2 {
		t.Errorf("list view dropped appointments: %v", grouped["2025-03-10"])
	}
}

func TestGroupByDatePreservesAndOrders(t *testing.T) {
	appts := []model.Appointment{
		appt("c", "2025-03-10", "14:30"),
		appt("a", "2025-03-10", "09:00"),
		appt("b", "2025-03-10", "09:15"),
		appt("x", "2025-03-12", "08:00"),
	}

	grouped := GroupByDate(appts)

	total := 0
	for _, list := range grouped {
		total += len(list)
	}
	if total != len(appts) {
		t.Fatalf("grouping dropped appointments: %d != %d", total, len(appts))
	}

	day := grouped["2025-03-10"]
	for i := 1; i < len(day); i++ {
		if day[i-1].Time > day[i].Time {
			t.Errorf("not ordered by time: %s before %s", day[i-1].Time, day[i].Time)
		}
	}

	if dates := SortedDates(grouped); len(dates) != 2 || dates[0] != "2025-03-10" || dates[1] != "2025-03-12" {
		t.Errorf("SortedDates: %v", dates)
	}
}

func TestBuildWeekViewShape(t *testing.T) {
	w := BuildWeekView(nil, date(2025, 3, 13))
	if !w.Start.Equal(date(2025, 3, 10)) {
		t.Errorf("anchor not snapped to Monday: %v", w.Start)
	}
	if len(w.Days) != 7 || len(w.Slots) != 7 {
		t.Fatalf("expected 7 days, got %d/%d", len(w.Days), len(w.Slots))
	}
	for i, day := range w.Slots {
		if len(day) != 13 {
			t.Errorf("day %d: expected 13 hour buckets, got %d", i, len(day))
		}
	}
	if hours := GridHours(); hours[0] != 8 || hours[len(hours)-1] != 20 || len(hours) != 13 {
		t.Errorf("GridHours: %v", hours)
	}
}
