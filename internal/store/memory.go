package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"clinic-booking-api/internal/model"
)

// Memory is the zero-configuration fallback backend. Data lives for the
// process lifetime only. Handlers run on arbitrary goroutines, so every
// operation takes the mutex; callers always get deep copies, never
// references into the collections.
type Memory struct {
	mu           sync.Mutex
	users        []model.User
	inquiries    []model.Inquiry
	serviceTypes []model.ServiceType
	appointments []model.Appointment
	sessions     []model.RefreshSession
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Close() {}

func ptrOf[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyUser(u model.User) *model.User {
	out := u
	out.Email = ptrOf(u.Email)
	out.FirstName = ptrOf(u.FirstName)
	out.LastName = ptrOf(u.LastName)
	out.ProfileImageURL = ptrOf(u.ProfileImageURL)
	return &out
}

func copyServiceType(st model.ServiceType) model.ServiceType {
	out := st
	out.Description = ptrOf(st.Description)
	out.Price = ptrOf(st.Price)
	return out
}

func copyAppointment(a model.Appointment) model.Appointment {
	out := a
	out.Email = ptrOf(a.Email)
	out.ServiceTypeID = ptrOf(a.ServiceTypeID)
	out.Notes = ptrOf(a.Notes)
	out.Address = ptrOf(a.Address)
	out.Latitude = ptrOf(a.Latitude)
	out.Longitude = ptrOf(a.Longitude)
	return out
}

// ----- users -----

func (m *Memory) GetUser(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			return copyUser(m.users[i]), nil
		}
	}
	return nil, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email != nil && *m.users[i].Email == email {
			return copyUser(m.users[i]), nil
		}
	}
	return nil, nil
}

func (m *Memory) UpsertUser(_ context.Context, u model.UpsertUser) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if u.ID != "" {
		for i := range m.users {
			if m.users[i].ID != u.ID {
				continue
			}
			if u.Email != nil {
				m.users[i].Email = ptrOf(u.Email)
			}
			if u.FirstName != nil {
				m.users[i].FirstName = ptrOf(u.FirstName)
			}
			if u.LastName != nil {
				m.users[i].LastName = ptrOf(u.LastName)
			}
			if u.ProfileImageURL != nil {
				m.users[i].ProfileImageURL = ptrOf(u.ProfileImageURL)
			}
			m.users[i].UpdatedAt = now
			return copyUser(m.users[i]), nil
		}
	}

	id := u.ID
	if id == "" {
		id = uuid.New().String()
	}
	nu := model.User{
		ID:              id,
		Email:           ptrOf(u.Email),
		FirstName:       ptrOf(u.FirstName),
		LastName:        ptrOf(u.LastName),
		ProfileImageURL: ptrOf(u.ProfileImageURL),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.users = append(m.users, nu)
	return copyUser(nu), nil
}

func (m *Memory) UpdateUserPassword(_ context.Context, id, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].PasswordHash = passwordHash
			m.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// ----- inquiries -----

func (m *Memory) CreateInquiry(_ context.Context, in model.InsertInquiry) (*model.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := model.Inquiry{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Inquiry:   in.Inquiry,
		Status:    "new",
		CreatedAt: time.Now(),
	}
	// newest first, so listing needs no sort
	m.inquiries = append([]model.Inquiry{q}, m.inquiries...)
	return &q, nil
}

func (m *Memory) ListInquiries(_ context.Context) ([]model.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Inquiry, len(m.inquiries))
	copy(out, m.inquiries)
	return out, nil
}

func (m *Memory) UpdateInquiryStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.inquiries {
		if m.inquiries[i].ID == id {
			m.inquiries[i].Status = status
			return nil
		}
	}
	return nil
}

// ----- service types -----

func (m *Memory) ListServiceTypes(_ context.Context) ([]model.ServiceType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.ServiceType
	for i := range m.serviceTypes {
		if m.serviceTypes[i].IsActive == "active" {
			out = append(out, copyServiceType(m.serviceTypes[i]))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) CreateServiceType(_ context.Context, in model.InsertServiceType) (*model.ServiceType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := model.ServiceType{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: ptrOf(in.Description),
		Duration:    in.Duration,
		Price:       ptrOf(in.Price),
		IsActive:    "active",
		CreatedAt:   time.Now(),
	}
	m.serviceTypes = append(m.serviceTypes, st)
	out := copyServiceType(st)
	return &out, nil
}

// ----- appointments -----

func (m *Memory) CreateAppointment(_ context.Context, in model.InsertAppointment) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	a := model.Appointment{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Phone:           in.Phone,
		Email:           ptrOf(in.Email),
		ServiceTypeID:   ptrOf(in.ServiceTypeID),
		AppointmentDate: in.AppointmentDate,
		Notes:           ptrOf(in.Notes),
		Address:         ptrOf(in.Address),
		Latitude:        ptrOf(in.Latitude),
		Longitude:       ptrOf(in.Longitude),
		Status:          "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.appointments = append(m.appointments, a)
	out := copyAppointment(a)
	return &out, nil
}

func (m *Memory) ListAppointments(_ context.Context) ([]model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Appointment, 0, len(m.appointments))
	for i := range m.appointments {
		out = append(out, copyAppointment(m.appointments[i]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out, nil
}

func (m *Memory) ListAppointmentsByDate(_ context.Context, day time.Time) ([]model.Appointment, error) {
	from, to := dayBounds(day)

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Appointment
	for i := range m.appointments {
		d := m.appointments[i].AppointmentDate
		if !d.Before(from) && !d.After(to) {
			out = append(out, copyAppointment(m.appointments[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

func (m *Memory) UpdateAppointmentStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments[i].Status = status
			m.appointments[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// ----- refresh sessions -----

func (m *Memory) CreateRefreshSession(_ context.Context, userID, tokenHash string, expiresAt time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rs := model.RefreshSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	m.sessions = append(m.sessions, rs)
	return rs.ID, nil
}

func (m *Memory) RefreshSessionByHash(_ context.Context, tokenHash string) (*model.RefreshSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sessions {
		if m.sessions[i].TokenHash == tokenHash {
			out := m.sessions[i]
			out.ReplacedBy = ptrOf(out.ReplacedBy)
			return &out, nil
		}
	}
	return nil, nil
}

func (m *Memory) RotateRefreshSession(_ context.Context, oldID, newID, userID, newHash string, newExpiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.sessions {
		if m.sessions[i].ID == oldID {
			m.sessions[i].Revoked = true
			m.sessions[i].ReplacedBy = &newID
		}
	}
	m.sessions = append(m.sessions, model.RefreshSession{
		ID:        newID,
		UserID:    userID,
		TokenHash: newHash,
		ExpiresAt: newExpiry,
		CreatedAt: time.Now(),
	})
	return nil
}

func (m *Memory) RevokeRefreshSessions(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sessions {
		if m.sessions[i].UserID == userID {
			m.sessions[i].Revoked = true
		}
	}
	return nil
}
