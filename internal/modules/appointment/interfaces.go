package appointment

import (
	"context"
	"time"

	"petcare/internal/domain"
)

// AppointmentRepository defines the persistence operations for appointments
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByOwnerID(ctx context.Context, ownerID int64) ([]domain.Appointment, error)
	ListByVetID(ctx context.Context, vetID int64) ([]domain.Appointment, error)
	Confirm(ctx context.Context, id int64, confirmedDate, confirmedTime string) (int64, error)
	RejectFromPending(ctx context.Context, id int64, reason string) (int64, error)
	Cancel(ctx context.Context, id int64, at time.Time) (int64, error)
}

type PetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
}

type VetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vet, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Vet, error)
}

type NotificationSender interface {
	NotifyAppointmentRequested(ctx context.Context, vetUserID, appointmentID, petID int64, date, tm string) error
	NotifyAppointmentConfirmed(ctx context.Context, ownerUserID, appointmentID int64, date, tm string) error
	NotifyAppointmentCancelled(ctx context.Context, recipientUserID, appointmentID int64, reason string) error
}
