package store

import (
	"context"
	"testing"
	"time"

	"clinic-booking-api/internal/model"
)

func strPtr(s string) *string { return &s }

func TestMemoryCreateInquiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.CreateInquiry(ctx, model.InsertInquiry{Name: "Kim", Phone: "010-0000-0000", Inquiry: "test"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == "" {
		t.Fatal("empty id")
	}
	if first.Status != "new" {
		t.Errorf("status = %q, want new", first.Status)
	}

	second, err := m.CreateInquiry(ctx, model.InsertInquiry{Name: "Lee", Phone: "010-1111-1111", Inquiry: "again"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("ids not unique")
	}

	list, err := m.ListInquiries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	// most recent first
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("order = [%s %s], want newest first", list[0].Name, list[1].Name)
	}
}

func TestMemoryUpdateInquiryStatus(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	q, _ := m.CreateInquiry(ctx, model.InsertInquiry{Name: "Kim", Phone: "010", Inquiry: "x"})

	if err := m.UpdateInquiryStatus(ctx, q.ID, "contacted"); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, _ := m.ListInquiries(ctx)
	if list[0].Status != "contacted" {
		t.Errorf("status = %q, want contacted", list[0].Status)
	}

	// unknown id is a silent no-op
	if err := m.UpdateInquiryStatus(ctx, "no-such-id", "closed"); err != nil {
		t.Fatalf("unknown id should not error: %v", err)
	}
	list, _ = m.ListInquiries(ctx)
	if list[0].Status != "contacted" {
		t.Error("unknown-id update mutated stored data")
	}
}

func TestMemoryServiceTypes(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, name := range []string{"Peel", "Botox", "Laser"} {
		if _, err := m.CreateServiceType(ctx, model.InsertServiceType{Name: name, Duration: 30}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	// deactivate one behind the facade's back to prove filtering
	m.mu.Lock()
	m.serviceTypes[0].IsActive = "inactive"
	m.mu.Unlock()

	list, err := m.ListServiceTypes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2 (inactive filtered)", len(list))
	}
	if list[0].Name != "Botox" || list[1].Name != "Laser" {
		t.Errorf("order = [%s %s], want name ascending", list[0].Name, list[1].Name)
	}
	for _, st := range list {
		if st.IsActive != "active" {
			t.Errorf("inactive service type leaked: %s", st.Name)
		}
	}
}

func TestMemoryCreateServiceTypeForcesActive(t *testing.T) {
	m := NewMemory()
	st, err := m.CreateServiceType(context.Background(), model.InsertServiceType{Name: "Laser", Duration: 45})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if st.IsActive != "active" {
		t.Errorf("isActive = %q, want active", st.IsActive)
	}
}

func TestMemoryAppointmentDayBoundary(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	mk := func(d time.Time) *model.Appointment {
		a, err := m.CreateAppointment(ctx, model.InsertAppointment{
			Name: "Kim", Phone: "010", AppointmentDate: d,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return a
	}

	startOfDay := mk(day)
	lastMillisecond := mk(day.Add(24*time.Hour - time.Millisecond))
	nextMidnight := mk(day.AddDate(0, 0, 1))
	dayBefore := mk(day.Add(-time.Second))

	got, err := m.ListAppointmentsByDate(ctx, day)
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// chronological within the day
	if got[0].ID != startOfDay.ID || got[1].ID != lastMillisecond.ID {
		t.Errorf("unexpected day contents/order: %v", got)
	}
	for _, a := range got {
		if a.ID == nextMidnight.ID || a.ID == dayBefore.ID {
			t.Error("appointment outside the day leaked in")
		}
	}
}

func TestMemoryListAppointmentsNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	early, _ := m.CreateAppointment(ctx, model.InsertAppointment{
		Name: "Kim", Phone: "010", AppointmentDate: time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local),
	})
	late, _ := m.CreateAppointment(ctx, model.InsertAppointment{
		Name: "Lee", Phone: "010", AppointmentDate: time.Date(2025, 3, 20, 9, 0, 0, 0, time.Local),
	})

	list, err := m.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].ID != late.ID || list[1].ID != early.ID {
		t.Error("expected appointmentDate descending")
	}
}

func TestMemoryCreateAppointmentDefaults(t *testing.T) {
	m := NewMemory()
	a, err := m.CreateAppointment(context.Background(), model.InsertAppointment{
		Name: "Kim", Phone: "010", AppointmentDate: time.Now(),
		Email: strPtr("kim@example.com"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != "pending" {
		t.Errorf("status = %q, want pending", a.Status)
	}
	if a.ID == "" {
		t.Error("empty id")
	}
	if a.CreatedAt.IsZero() || !a.CreatedAt.Equal(a.UpdatedAt) {
		t.Error("createdAt and updatedAt should both be set to creation time")
	}
	if a.ServiceTypeID != nil || a.Notes != nil {
		t.Error("absent optional fields should stay nil")
	}
}

func TestMemoryUpdateAppointmentStatus(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, _ := m.CreateAppointment(ctx, model.InsertAppointment{
		Name: "Kim", Phone: "010", AppointmentDate: time.Now(),
	})

	if err := m.UpdateAppointmentStatus(ctx, a.ID, "confirmed"); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, _ := m.ListAppointments(ctx)
	if list[0].Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", list[0].Status)
	}
	if !list[0].UpdatedAt.After(a.UpdatedAt) {
		t.Error("updatedAt did not advance")
	}

	before := list[0]
	if err := m.UpdateAppointmentStatus(ctx, "no-such-id", "cancelled"); err != nil {
		t.Fatalf("unknown id should not error: %v", err)
	}
	list, _ = m.ListAppointments(ctx)
	if list[0].Status != before.Status || !list[0].UpdatedAt.Equal(before.UpdatedAt) {
		t.Error("unknown-id update mutated stored data")
	}
}

func TestMemoryUpsertUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.UpsertUser(ctx, model.UpsertUser{Email: strPtr("admin@clinic.kr")})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if created.ID == "" {
		t.Fatal("no id generated")
	}
	if created.FirstName != nil {
		t.Error("absent fields should default to nil")
	}

	// same id, identical fields: id stable, updatedAt strictly advances
	again, err := m.UpsertUser(ctx, model.UpsertUser{ID: created.ID, Email: strPtr("admin@clinic.kr")})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if again.ID != created.ID {
		t.Error("id changed on upsert")
	}
	if !again.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updatedAt did not advance")
	}
	if !again.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt must not change on update")
	}

	// partial merge keeps unsupplied fields
	merged, err := m.UpsertUser(ctx, model.UpsertUser{ID: created.ID, FirstName: strPtr("Soo")})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if merged.Email == nil || *merged.Email != "admin@clinic.kr" {
		t.Error("unsupplied email was lost on merge")
	}
	if merged.FirstName == nil || *merged.FirstName != "Soo" {
		t.Error("supplied firstName not applied")
	}
}

func TestMemoryGetUserAbsent(t *testing.T) {
	m := NewMemory()
	u, err := m.GetUser(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Fatal("expected nil for absent user")
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.CreateInquiry(ctx, model.InsertInquiry{Name: "Kim", Phone: "010", Inquiry: "x"})
	list, _ := m.ListInquiries(ctx)
	list[0].Status = "mangled"

	fresh, _ := m.ListInquiries(ctx)
	if fresh[0].Status != "new" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestMemoryRefreshSessions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.CreateRefreshSession(ctx, "user-1", "hash-1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sess, err := m.RefreshSessionByHash(ctx, "hash-1")
	if err != nil || sess == nil {
		t.Fatalf("lookup: sess=%v err=%v", sess, err)
	}
	if sess.ID != id || sess.Revoked {
		t.Fatalf("unexpected session %+v", sess)
	}

	if err := m.RotateRefreshSession(ctx, id, "new-id", "user-1", "hash-2", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	old, _ := m.RefreshSessionByHash(ctx, "hash-1")
	if !old.Revoked || old.ReplacedBy == nil || *old.ReplacedBy != "new-id" {
		t.Errorf("old session not revoked/linked: %+v", old)
	}
	cur, _ := m.RefreshSessionByHash(ctx, "hash-2")
	if cur == nil || cur.Revoked {
		t.Fatalf("rotated session unusable: %+v", cur)
	}

	if err := m.RevokeRefreshSessions(ctx, "user-1"); err != nil {
		t.Fatalf("revoke all: %v", err)
	}
	cur, _ = m.RefreshSessionByHash(ctx, "hash-2")
	if !cur.Revoked {
		t.Error("revoke all missed a session")
	}
}
