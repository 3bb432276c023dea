// Package agenda turns a flat appointment list into the week grid the
// dashboard renders. Everything here is pure: appointments in, grid
// out, no I/O and no clock reads.
package agenda

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"therapycare-api/internal/model"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// visible window of the week grid, 08:00 to 20:00 inclusive
	GridStartHour = 8
	GridEndHour   = 20
)

// GridHours lists the hour buckets of the display window, in order.
func GridHours() []int {
	hours := make([]int, 0, GridEndHour-GridStartHour+1)
	for h := GridStartHour; h <= GridEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// WeekStart returns the Monday on or before d, at midnight in d's
// location. Sundays step back six days, every other day steps back to
// the Monday of its own week.
func WeekStart(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	back := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		back = 6
	}
	return day.AddDate(0, 0, -back)
}

// WeekDays returns the seven consecutive dates starting at start.
func WeekDays(start time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

type Direction int

const (
	Previous Direction = iota
	Next
	Today
)

// Navigate moves the week anchor: previous/next shift by exactly seven
// days, today snaps to the current week's Monday.
func Navigate(current time.Time, dir Direction, now time.Time) time.Time {
	switch dir {
	case Previous:
		return current.AddDate(0, 0, -7)
	case Next:
		return current.AddDate(0, 0, 7)
	default:
		return WeekStart(now)
	}
}

// startFraction converts HH:MM to hour + minute/60. Unparsable input
// returns false and the appointment matches no bucket; the grid must
// never crash on bad data, it just drops it.
func startFraction(hhmm string) (float64, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

// SlotAppointments returns the appointments on date whose start falls
// inside the one-hour bucket [hour, hour+1).
func SlotAppointments(appts []model.Appointment, date time.Time, hour int) []model.Appointment {
	dateStr := date.Format(DateLayout)
	var out []model.Appointment
	for _, a := range appts {
		if a.Date != dateStr {
			continue
		}
		start, ok := startFraction(a.Time)
		if !ok {
			continue
		}
		if start >= float64(hour) && start < float64(hour+1) {
			out = append(out, a)
		}
	}
	return out
}

// GroupByDate buckets appointments by their date string and orders each
// bucket ascending by time. The HH:MM format is zero-padded and fixed
// width, so plain string comparison sorts correctly. Unlike the grid,
// this keeps every appointment, including ones outside the display
// window.
func GroupByDate(appts []model.Appointment) map[string][]model.Appointment {
	grouped := make(map[string][]model.Appointment)
	for _, a := range appts {
		grouped[a.Date] = append(grouped[a.Date], a)
	}
	for _, list := range grouped {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Time < list[j].Time
		})
	}
	return grouped
}

// SortedDates returns the keys of a GroupByDate result in ascending
// order, for list-style rendering.
func SortedDates(grouped map[string][]model.Appointment) []string {
	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// WeekView is the materialized grid for one week: seven days by
// thirteen hour buckets. Slots[day][hourIndex] holds the appointments
// whose start lies in that bucket; hourIndex 0 is GridStartHour.
type WeekView struct {
	Start time.Time
	Days  []time.Time
	Slots [][][]model.Appointment
}

func BuildWeekView(appts []model.Appointment, anchor time.Time) WeekView {
	start := WeekStart(anchor)
	days := WeekDays(start)
	slots := make([][][]model.Appointment, len(days))
	for i, day := range days {
		slots[i] = make([][]model.Appointment, 0, GridEndHour-GridStartHour+1)
		for h := GridStartHour; h <= GridEndHour; h++ {
			slots[i] = append(slots[i], SlotAppointments(appts, day, h))
		}
	}
	return WeekView{Start: start, Days: days, Slots: slots}
}
