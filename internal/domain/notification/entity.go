package notification

import "time"

// NotificationType enumerates every event the matching workflow can emit.
type NotificationType string

const (
	NotifAssignmentRequest  NotificationType = "pet_assignment_request"  // vet: owner proposed a pet
	NotifAssignmentAccepted NotificationType = "pet_assignment_accepted" // owner: vet took the pet
	NotifAssignmentRejected NotificationType = "pet_assignment_rejected" // owner: vet declined

	NotifAppointmentRequest   NotificationType = "appointment_request"   // vet: owner asked for a slot
	NotifAppointmentConfirmed NotificationType = "appointment_confirmed" // owner: vet confirmed (maybe a new slot)
	NotifAppointmentCancelled NotificationType = "appointment_cancelled" // counter-party: appointment withdrawn
)

// Notification is a row the client polls for; there is no push channel.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	IsRead    bool             `json:"is_read"`
	Data      any              `json:"data,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
