package appointment

import "petcare/internal/domain"

type RequestAppointment struct {
	PetID int64  `json:"pet_id" binding:"required"`
	VetID int64  `json:"vet_id" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
}

type ConfirmRequest struct {
	ConfirmedDate string `json:"confirmed_date"`
	ConfirmedTime string `json:"confirmed_time"`
}

type RejectAppointmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// AppointmentDetails is the owner/vet-facing view. DisplayDate/DisplayTime
// already prefer the vet-confirmed slot over the requested one.
type AppointmentDetails struct {
	ID              int64  `json:"id"`
	PetID           int64  `json:"pet_id"`
	OwnerID         int64  `json:"owner_id"`
	VetID           int64  `json:"vet_id"`
	Status          string `json:"status"`
	RequestedDate   string `json:"requested_date"`
	RequestedTime   string `json:"requested_time"`
	ConfirmedDate   string `json:"confirmed_date,omitempty"`
	ConfirmedTime   string `json:"confirmed_time,omitempty"`
	DisplayDate     string `json:"display_date"`
	DisplayTime     string `json:"display_time"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

func DetailsFromEntity(a domain.Appointment) AppointmentDetails {
	date, tm := a.DisplaySlot()
	return AppointmentDetails{
		ID:              a.ID,
		PetID:           a.PetID,
		OwnerID:         a.OwnerID,
		VetID:           a.VetID,
		Status:          string(a.Status),
		RequestedDate:   a.Date,
		RequestedTime:   a.Time,
		ConfirmedDate:   a.ConfirmedDate,
		ConfirmedTime:   a.ConfirmedTime,
		DisplayDate:     date,
		DisplayTime:     tm,
		RejectionReason: a.RejectionReason,
	}
}
