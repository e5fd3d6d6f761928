// Package validate checks inbound payloads before they reach storage.
// Every function here is a pure function of its input.
package validate

import (
	"fmt"
	"time"

	"clinic-booking-api/internal/model"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a validation failure carrying field-level violations.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

func (e *Error) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *Error) or() *Error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

const (
	maxNameLen  = 100
	maxPhoneLen = 20
)

type InquiryPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Inquiry string `json:"inquiry"`
}

func Inquiry(p InquiryPayload) (model.InsertInquiry, *Error) {
	var e Error
	requireBounded(&e, "name", p.Name, maxNameLen)
	requireBounded(&e, "phone", p.Phone, maxPhoneLen)
	if p.Inquiry == "" {
		e.add("inquiry", "required")
	}
	if err := e.or(); err != nil {
		return model.InsertInquiry{}, err
	}
	return model.InsertInquiry{Name: p.Name, Phone: p.Phone, Inquiry: p.Inquiry}, nil
}

type ServiceTypePayload struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Duration    int      `json:"duration"`
	Price       *float64 `json:"price"`
}

func ServiceType(p ServiceTypePayload) (model.InsertServiceType, *Error) {
	var e Error
	requireBounded(&e, "name", p.Name, maxNameLen)
	if p.Duration <= 0 {
		e.add("duration", "must be a positive number of minutes")
	}
	if p.Price != nil && *p.Price < 0 {
		e.add("price", "must not be negative")
	}
	if err := e.or(); err != nil {
		return model.InsertServiceType{}, err
	}
	return model.InsertServiceType{
		Name:        p.Name,
		Description: p.Description,
		Duration:    p.Duration,
		Price:       p.Price,
	}, nil
}

type AppointmentPayload struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           *string  `json:"email"`
	ServiceTypeID   *string  `json:"serviceTypeId"`
	AppointmentDate string   `json:"appointmentDate"`
	Notes           *string  `json:"notes"`
	Address         *string  `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

func Appointment(p AppointmentPayload) (model.InsertAppointment, *Error) {
	var e Error
	requireBounded(&e, "name", p.Name, maxNameLen)
	requireBounded(&e, "phone", p.Phone, maxPhoneLen)

	var when time.Time
	if p.AppointmentDate == "" {
		e.add("appointmentDate", "required")
	} else {
		var err error
		when, err = ParseDateTime(p.AppointmentDate)
		if err != nil {
			e.add("appointmentDate", "not a valid date or datetime")
		}
	}
	if err := e.or(); err != nil {
		return model.InsertAppointment{}, err
	}
	return model.InsertAppointment{
		Name:            p.Name,
		Phone:           p.Phone,
		Email:           p.Email,
		ServiceTypeID:   p.ServiceTypeID,
		AppointmentDate: when,
		Notes:           p.Notes,
		Address:         p.Address,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
	}, nil
}

// dateTimeLayouts are the accepted appointmentDate shapes, tried in order.
// Layouts without an offset are interpreted in server-local time.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime coerces a caller-supplied date representation into a
// canonical time.Time.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", s)
}

// Day parses a calendar date (YYYY-MM-DD) and returns the start of that
// day in server-local time.
func Day(s string) (time.Time, *Error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		var e Error
		e.add("date", "must be a calendar date (YYYY-MM-DD)")
		return time.Time{}, &e
	}
	return t, nil
}

func requireBounded(e *Error, field, v string, max int) {
	if v == "" {
		e.add(field, "required")
		return
	}
	if len([]rune(v)) > max {
		e.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}
