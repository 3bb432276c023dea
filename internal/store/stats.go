package store

import (
	"context"
	"time"

	"therapycare-api/internal/agenda"
	"therapycare-api/internal/model"
)

// Stats aggregates the dashboard counters for one practitioner. All
// period buckets compare the stored date strings lexicographically,
// which is safe because the wire format is zero-padded YYYY-MM-DD. The
// week bucket uses the same Monday-start week as the agenda grid.
func (s *Store) Stats(ctx context.Context, practitionerID string, now time.Time) (*model.Stats, error) {
	today := now.Format(agenda.DateLayout)
	weekStart := agenda.WeekStart(now)
	weekStartStr := weekStart.Format(agenda.DateLayout)
	weekEndStr := weekStart.AddDate(0, 0, 6).Format(agenda.DateLayout)
	monthPrefix := now.Format("2006-01") + "%"
	yearPrefix := now.Format("2006") + "%"

	st := &model.Stats{}
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE date >= $2),
		        COUNT(*) FILTER (WHERE date BETWEEN $3 AND $4),
		        COUNT(*) FILTER (WHERE date LIKE $5),
		        COUNT(*) FILTER (WHERE date LIKE $6)
		 FROM appointments WHERE practitioner_id = $1`,
		practitionerID, today, weekStartStr, weekEndStr, monthPrefix, yearPrefix,
	).Scan(&st.TotalAppointments, &st.UpcomingAppointments,
		&st.AppointmentsThisWeek, &st.AppointmentsThisMonth, &st.AppointmentsThisYear)
	if err != nil {
		return nil, err
	}

	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patients WHERE practitioner_id = $1`, practitionerID,
	).Scan(&st.TotalPatients); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT date, COUNT(*)
		 FROM appointments
		 WHERE practitioner_id = $1 AND date BETWEEN $2 AND $3
		 GROUP BY date`, practitionerID, weekStartStr, weekEndStr,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var d string
		var n int
		if err := rows.Scan(&d, &n); err != nil {
			return nil, err
		}
		counts[d] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// every day of the current week appears, zero or not
	for _, day := range agenda.WeekDays(weekStart) {
		d := day.Format(agenda.DateLayout)
		st.AppointmentsByDay = append(st.AppointmentsByDay, model.DayCount{Date: d, Count: counts[d]})
	}

	recent, err := s.recentAppointments(ctx, practitionerID, 5)
	if err != nil {
		return nil, err
	}
	st.RecentAppointments = recent

	return st, nil
}

func (s *Store) recentAppointments(ctx context.Context, practitionerID string, limit int) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, practitioner_id, patient_id, patient_name,
		        date, time, duration, notes, created_at
		 FROM appointments
		 WHERE practitioner_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`, practitionerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PractitionerID, &a.PatientID, &a.PatientName,
			&a.Date, &a.Time, &a.Duration, &a.Notes, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
