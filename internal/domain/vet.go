package domain

import "time"

type VetStatus string

const (
	VetPending   VetStatus = "pending"
	VetApproved  VetStatus = "approved"
	VetSuspended VetStatus = "suspended"
)

// Vet is the public care-provider profile. Vets are never hard-deleted,
// suspension takes them out of search instead.
type Vet struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id" validate:"required"`
	Name               string     `json:"name" validate:"required"`
	ClinicName         string     `json:"clinic_name,omitempty"`
	Location           string     `json:"location,omitempty"`
	Latitude           *float64   `json:"latitude,omitempty"`
	Longitude          *float64   `json:"longitude,omitempty"`
	EmergencyAvailable bool       `json:"emergency_available"`
	Premium            bool       `json:"premium"`
	Rating             float64    `json:"rating"`
	Schedule           string     `json:"schedule,omitempty" gorm:"type:text"`
	Status             VetStatus  `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	SuspendedAt        *time.Time `json:"suspended_at,omitempty"`
}
