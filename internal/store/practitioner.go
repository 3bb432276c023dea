package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"therapycare-api/internal/model"
)

func (s *Store) CreatePractitioner(ctx context.Context, p *model.Practitioner) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO practitioners
		   (id, full_name, email, password_hash, specialty, description,
		    phone, schedule, address, city, photo_url)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.FullName, p.Email, p.PasswordHash, p.Specialty, p.Description,
		p.Phone, p.Schedule, p.Address, p.City, p.PhotoURL,
	)
	return err
}

const practitionerCols = `id, full_name, email, password_hash, specialty,
	description, phone, schedule, address, city, photo_url, created_at`

func scanPractitioner(row interface{ Scan(...any) error }) (*model.Practitioner, error) {
	p := &model.Practitioner{}
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.PasswordHash, &p.Specialty,
		&p.Description, &p.Phone, &p.Schedule, &p.Address, &p.City, &p.PhotoURL,
		&p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Store) PractitionerByEmail(ctx context.Context, email string) (*model.Practitioner, error) {
	return scanPractitioner(s.pool.QueryRow(ctx,
		`SELECT `+practitionerCols+` FROM practitioners WHERE email = $1`, email))
}

func (s *Store) PractitionerByID(ctx context.Context, id string) (*model.Practitioner, error) {
	return scanPractitioner(s.pool.QueryRow(ctx,
		`SELECT `+practitionerCols+` FROM practitioners WHERE id = $1`, id))
}

func (s *Store) UpdatePractitioner(ctx context.Context, id string, upd model.PractitionerUpdate) (*model.Practitioner, error) {
	_, err := s.pool.Exec(ctx,
		`UPDATE practitioners SET
		   full_name   = COALESCE($1, full_name),
		   specialty   = COALESCE($2, specialty),
		   description = COALESCE($3, description),
		   phone       = COALESCE($4, phone),
		   schedule    = COALESCE($5, schedule),
		   address     = COALESCE($6, address),
		   city        = COALESCE($7, city),
		   photo_url   = COALESCE($8, photo_url)
		 WHERE id = $9`,
		upd.FullName, upd.Specialty, upd.Description, upd.Phone,
		upd.Schedule, upd.Address, upd.City, upd.PhotoURL, id,
	)
	if err != nil {
		return nil, err
	}
	return s.PractitionerByID(ctx, id)
}

// SearchPractitioners filters by case-insensitive substring on
// specialty and city; empty filters match everything.
func (s *Store) SearchPractitioners(ctx context.Context, specialty, city string) ([]model.Practitioner, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+practitionerCols+` FROM practitioners
		 WHERE ($1 = '' OR specialty ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR city ILIKE '%' || $2 || '%')
		 ORDER BY created_at
		 LIMIT 100`, specialty, city,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Practitioner
	for rows.Next() {
		p, err := scanPractitioner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
