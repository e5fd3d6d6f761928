package store

import (
	"context"

	"github.com/google/uuid"

	"clinic-booking-api/internal/model"
)

func (s *Postgres) CreateInquiry(ctx context.Context, in model.InsertInquiry) (*model.Inquiry, error) {
	q := &model.Inquiry{}
	err := s.db.QueryRow(ctx,
		`INSERT INTO inquiries (id, name, phone, inquiry, status)
		 VALUES ($1,$2,$3,$4,'new')
		 RETURNING id, name, phone, inquiry, status, created_at`,
		uuid.New().String(), in.Name, in.Phone, in.Inquiry,
	).Scan(&q.ID, &q.Name, &q.Phone, &q.Inquiry, &q.Status, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Postgres) ListInquiries(ctx context.Context) ([]model.Inquiry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, phone, inquiry, status, created_at
		 FROM inquiries
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Inquiry
	for rows.Next() {
		var q model.Inquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Phone, &q.Inquiry, &q.Status, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// UpdateInquiryStatus is a silent no-op when id does not exist.
func (s *Postgres) UpdateInquiryStatus(ctx context.Context, id, status string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE inquiries SET status = $2 WHERE id = $1`, id, status)
	return err
}
