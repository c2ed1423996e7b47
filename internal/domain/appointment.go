package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentUpcoming  AppointmentStatus = "upcoming"
	AppointmentRejected  AppointmentStatus = "rejected"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentUpcoming, AppointmentRejected,
		AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

func (s AppointmentStatus) Terminal() bool {
	switch s {
	case AppointmentRejected, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

// Appointment keeps the owner's requested slot and, once the vet confirms,
// the possibly different confirmed slot. Date is "2006-01-02", Time "15:04".
type Appointment struct {
	ID              int64             `json:"id"`
	PetID           int64             `json:"pet_id" validate:"required"`
	OwnerID         int64             `json:"owner_id" validate:"required"`
	VetID           int64             `json:"vet_id" validate:"required"`
	Date            string            `json:"date" validate:"required"`
	Time            string            `json:"time" validate:"required"`
	ConfirmedDate   string            `json:"confirmed_date,omitempty"`
	ConfirmedTime   string            `json:"confirmed_time,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty" gorm:"type:text"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	CancelledAt     *time.Time        `json:"cancelled_at,omitempty"`
}

// DisplaySlot returns the slot the owner should see: the vet-confirmed
// date/time once set, otherwise the originally requested one.
func (a *Appointment) DisplaySlot() (date, tm string) {
	if a.ConfirmedDate != "" {
		date = a.ConfirmedDate
	} else {
		date = a.Date
	}
	if a.ConfirmedTime != "" {
		tm = a.ConfirmedTime
	} else {
		tm = a.Time
	}
	return date, tm
}
