package store

import (
	"context"

	"github.com/google/uuid"

	"clinic-booking-api/internal/model"
)

// ListServiceTypes returns active service types only, by name ascending.
// COLLATE "C" keeps the ordering byte-wise regardless of the database
// locale, matching the in-memory backend.
func (s *Postgres) ListServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, description, duration, price, is_active, created_at
		 FROM service_types
		 WHERE is_active = 'active'
		 ORDER BY name COLLATE "C" ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ServiceType
	for rows.Next() {
		var st model.ServiceType
		if err := rows.Scan(&st.ID, &st.Name, &st.Description, &st.Duration,
			&st.Price, &st.IsActive, &st.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// CreateServiceType forces is_active to "active" regardless of input.
func (s *Postgres) CreateServiceType(ctx context.Context, in model.InsertServiceType) (*model.ServiceType, error) {
	st := &model.ServiceType{}
	err := s.db.QueryRow(ctx,
		`INSERT INTO service_types (id, name, description, duration, price, is_active)
		 VALUES ($1,$2,$3,$4,$5,'active')
		 RETURNING id, name, description, duration, price, is_active, created_at`,
		uuid.New().String(), in.Name, in.Description, in.Duration, in.Price,
	).Scan(&st.ID, &st.Name, &st.Description, &st.Duration, &st.Price, &st.IsActive, &st.CreatedAt)
	if err != nil {
		return nil, err
	}
	return st, nil
}
