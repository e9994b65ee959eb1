package db_models

import "github.com/google/uuid"

const (
	RequestStatusPending = "pending"

	RequestTypeConsultation = "consultation"
	RequestTypeBooking      = "booking"
)

// PlanningRequest is the parent record of a completed planning conversation.
// Once written it is never invalidated by later child-write failures.
type PlanningRequest struct {
	BaseModel
	EventType       string
	Location        string
	Budget          int64
	CustomerName    string
	CustomerPhone   string
	SpecialRequests string
	Status          string
	VendorCount     int
	RequestType     string
	UserID          *uuid.UUID `gorm:"type:uuid"`

	Interests []VendorInterest `gorm:"foreignKey:RequestID"`
}

// VendorInterest is one child row per vendor the user marked as wanted.
type VendorInterest struct {
	BaseModel
	RequestID      uuid.UUID `gorm:"type:uuid;index"`
	VendorID       uuid.UUID `gorm:"type:uuid"`
	VendorName     string
	VendorCategory string
	Status         string
}
