package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clinic-booking-api/internal/model"
)

const appointmentColumns = `id, name, phone, email, service_type_id, appointment_date,
       notes, address, latitude, longitude, status, created_at, updated_at`

func (s *Postgres) CreateAppointment(ctx context.Context, in model.InsertAppointment) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.db.QueryRow(ctx,
		`INSERT INTO appointments
		   (id, name, phone, email, service_type_id, appointment_date,
		    notes, address, latitude, longitude, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,'pending')
		 RETURNING `+appointmentColumns,
		uuid.New().String(), in.Name, in.Phone, in.Email, in.ServiceTypeID,
		in.AppointmentDate, in.Notes, in.Address, in.Latitude, in.Longitude,
	).Scan(&a.ID, &a.Name, &a.Phone, &a.Email, &a.ServiceTypeID, &a.AppointmentDate,
		&a.Notes, &a.Address, &a.Latitude, &a.Longitude, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Postgres) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+appointmentColumns+`
		 FROM appointments
		 ORDER BY appointment_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

// ListAppointmentsByDate returns appointments inside the closed day
// interval, chronological. The ordering intentionally differs from
// ListAppointments: dashboards want newest first, a daily schedule
// wants the day in order.
func (s *Postgres) ListAppointmentsByDate(ctx context.Context, day time.Time) ([]model.Appointment, error) {
	from, to := dayBounds(day)
	rows, err := s.db.Query(ctx,
		`SELECT `+appointmentColumns+`
		 FROM appointments
		 WHERE appointment_date BETWEEN $1 AND $2
		 ORDER BY appointment_date ASC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (s *Postgres) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE appointments SET status = $2, updated_at = now() WHERE id = $1`,
		id, status)
	return err
}

func collectAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Name, &a.Phone, &a.Email, &a.ServiceTypeID,
			&a.AppointmentDate, &a.Notes, &a.Address, &a.Latitude, &a.Longitude,
			&a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
