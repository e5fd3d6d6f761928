package model

import "time"

type User struct {
	ID              string    `json:"id"`
	Email           *string   `json:"email"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	PasswordHash    string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpsertUser carries the fields an identity callback may supply.
// Nil pointers mean "not supplied" and leave the stored value untouched.
type UpsertUser struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Inquiry   string    `json:"inquiry"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type InsertInquiry struct {
	Name    string
	Phone   string
	Inquiry string
}

type ServiceType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Duration    int       `json:"duration"`
	Price       *float64  `json:"price"`
	IsActive    string    `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InsertServiceType struct {
	Name        string
	Description *string
	Duration    int
	Price       *float64
}

type Appointment struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email"`
	ServiceTypeID   *string   `json:"serviceTypeId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Notes           *string   `json:"notes"`
	Address         *string   `json:"address"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type InsertAppointment struct {
	Name            string
	Phone           string
	Email           *string
	ServiceTypeID   *string
	AppointmentDate time.Time
	Notes           *string
	Address         *string
	Latitude        *float64
	Longitude       *float64
}

// RefreshSession is an admin login session. Only the sha256 of the
// opaque token is stored.
type RefreshSession struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}
