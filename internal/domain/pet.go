package domain

import "time"

// Pet carries the owner's record plus the current vet link. The link is set
// only when an assignment request is accepted, or cleared by the owner.
type Pet struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"`
	VetID     *int64    `json:"vet_id,omitempty"`
	VetName   string    `json:"vet_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
