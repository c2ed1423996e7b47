package domain

import "time"

type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentAccepted AssignmentStatus = "accepted"
	AssignmentRejected AssignmentStatus = "rejected"
	// A superseded request is withdrawn by the owner before the vet acted on
	// it; stored as cancelled.
	AssignmentCancelled AssignmentStatus = "cancelled"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentAccepted, AssignmentRejected, AssignmentCancelled:
		return true
	}
	return false
}

func (s AssignmentStatus) Terminal() bool {
	return s != AssignmentPending
}

// AssignmentRequest is an owner's proposal that a vet become the designated
// carer for a pet. At most one pending request may exist per pet.
type AssignmentRequest struct {
	ID          int64            `json:"id"`
	PetID       int64            `json:"pet_id" validate:"required"`
	OwnerID     int64            `json:"owner_id" validate:"required"`
	VetID       int64            `json:"vet_id" validate:"required"`
	Status      AssignmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	ProcessedAt *time.Time       `json:"processed_at,omitempty"`
}
