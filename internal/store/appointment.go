package store

import (
	"context"

	"therapycare-api/internal/model"
)

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments
		   (id, practitioner_id, patient_id, patient_name, date, time, duration, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.PractitionerID, a.PatientID, a.PatientName,
		a.Date, a.Time, a.Duration, a.Notes,
	)
	return err
}

func (s *Store) ListAppointments(ctx context.Context, practitionerID string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, practitioner_id, patient_id, patient_name,
		        date, time, duration, notes, created_at
		 FROM appointments
		 WHERE practitioner_id = $1
		 ORDER BY date, time`, practitionerID,
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

func (s *Store) DeleteAppointment(ctx context.Context, practitionerID, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM appointments WHERE id = $1 AND practitioner_id = $2`, id, practitionerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
