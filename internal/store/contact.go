package store

import (
	"context"

	"therapycare-api/internal/model"
)

func (s *Store) CreateContactMessage(ctx context.Context, m *model.ContactMessage) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, message)
		 VALUES ($1,$2,$3,$4)`,
		m.ID, m.Name, m.Email, m.Message,
	)
	return err
}
