package store

import (
	"context"

	"therapycare-api/internal/model"
)

func (s *Store) CreatePatient(ctx context.Context, p *model.Patient) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO patients (id, practitioner_id, full_name, email, phone, notes)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.PractitionerID, p.FullName, p.Email, p.Phone, p.Notes,
	)
	return err
}

func (s *Store) ListPatients(ctx context.Context, practitionerID string) ([]model.Patient, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, practitioner_id, full_name, email, phone, notes, created_at
		 FROM patients
		 WHERE practitioner_id = $1
		 ORDER BY created_at`, practitionerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Patient
	for rows.Next() {
		var p model.Patient
		if err := rows.Scan(&p.ID, &p.PractitionerID, &p.FullName, &p.Email,
			&p.Phone, &p.Notes, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) PatientByID(ctx context.Context, practitionerID, id string) (*model.Patient, error) {
	p := &model.Patient{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, practitioner_id, full_name, email, phone, notes, created_at
		 FROM patients WHERE id = $1 AND practitioner_id = $2`, id, practitionerID,
	).Scan(&p.ID, &p.PractitionerID, &p.FullName, &p.Email, &p.Phone, &p.Notes, &p.CreatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Store) UpdatePatient(ctx context.Context, practitionerID, id string, upd model.PatientUpdate) (*model.Patient, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE patients SET
		   full_name = COALESCE($1, full_name),
		   email     = COALESCE($2, email),
		   phone     = COALESCE($3, phone),
		   notes     = COALESCE($4, notes)
		 WHERE id = $5 AND practitioner_id = $6`,
		upd.FullName, upd.Email, upd.Phone, upd.Notes, id, practitionerID,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return s.PatientByID(ctx, practitionerID, id)
}

// DeletePatient removes the patient row only. Appointments keep their
// patient_id and denormalized name; orphaned references are accepted.
func (s *Store) DeletePatient(ctx context.Context, practitionerID, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM patients WHERE id = $1 AND practitioner_id = $2`, id, practitionerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
