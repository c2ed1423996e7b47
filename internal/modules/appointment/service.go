package appointment

import (
	"context"
	"errors"
	"time"

	"petcare/internal/domain"

	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	appointments AppointmentRepository
	pets         PetRepository
	vets         VetRepository
	notifs       NotificationSender
}

func NewService(
	appointments AppointmentRepository,
	pets PetRepository,
	vets VetRepository,
	notifs NotificationSender,
) *Service {
	return &Service{
		appointments: appointments,
		pets:         pets,
		vets:         vets,
		notifs:       notifs,
	}
}

// Request creates a pending appointment for the owner's requested slot.
func (s *Service) Request(ctx context.Context, petID, ownerID, vetID int64, date, tm string) (*domain.Appointment, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse(timeLayout, tm); err != nil {
		return nil, ErrValidation
	}

	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if pet.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	vet, err := s.vets.GetByID(ctx, vetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	appt := &domain.Appointment{
		PetID:   petID,
		OwnerID: ownerID,
		VetID:   vetID,
		Date:    date,
		Time:    tm,
		Status:  domain.AppointmentPending,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyAppointmentRequested(ctx, vet.UserID, appt.ID, petID, date, tm)
	}

	return appt, nil
}

// Confirm moves pending to upcoming. The vet may override the slot; the
// owner-facing display then prefers the confirmed date/time.
func (s *Service) Confirm(ctx context.Context, apptID, vetUserID int64, confirmedDate, confirmedTime string) (*domain.Appointment, error) {
	if confirmedDate != "" {
		if _, err := time.Parse(dateLayout, confirmedDate); err != nil {
			return nil, ErrValidation
		}
	}
	if confirmedTime != "" {
		if _, err := time.Parse(timeLayout, confirmedTime); err != nil {
			return nil, ErrValidation
		}
	}

	appt, _, err := s.loadForVet(ctx, apptID, vetUserID)
	if err != nil {
		return nil, err
	}

	rows, err := s.appointments.Confirm(ctx, apptID, confirmedDate, confirmedTime)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidState
	}

	updated, err := s.appointments.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		date, tm := updated.DisplaySlot()
		_ = s.notifs.NotifyAppointmentConfirmed(ctx, appt.OwnerID, appt.ID, date, tm)
	}

	return updated, nil
}

// Reject declines a pending appointment. The reason is required: it is the
// owner-facing message, there is no separate rejection notification type.
func (s *Service) Reject(ctx context.Context, apptID, vetUserID int64, reason string) (*domain.Appointment, error) {
	if reason == "" {
		return nil, ErrValidation
	}

	_, _, err := s.loadForVet(ctx, apptID, vetUserID)
	if err != nil {
		return nil, err
	}

	rows, err := s.appointments.RejectFromPending(ctx, apptID, reason)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidState
	}

	return s.appointments.GetByID(ctx, apptID)
}

// Cancel withdraws a pending or upcoming appointment. Either party may
// cancel; the counter-party gets the notification.
func (s *Service) Cancel(ctx context.Context, apptID, actorUserID int64, reason string) (*domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, apptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	vet, err := s.vets.GetByID(ctx, appt.VetID)
	if err != nil {
		return nil, err
	}

	var recipient int64
	switch actorUserID {
	case appt.OwnerID:
		recipient = vet.UserID
	case vet.UserID:
		recipient = appt.OwnerID
	default:
		return nil, ErrForbidden
	}

	rows, err := s.appointments.Cancel(ctx, apptID, time.Now())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidState
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyAppointmentCancelled(ctx, recipient, apptID, reason)
	}

	return s.appointments.GetByID(ctx, apptID)
}

func (s *Service) ListForOwner(ctx context.Context, ownerID int64) ([]domain.Appointment, error) {
	return s.appointments.ListByOwnerID(ctx, ownerID)
}

func (s *Service) ListForVetUser(ctx context.Context, vetUserID int64) ([]domain.Appointment, error) {
	vet, err := s.vets.GetByUserID(ctx, vetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.appointments.ListByVetID(ctx, vet.ID)
}

func (s *Service) loadForVet(ctx context.Context, apptID, vetUserID int64) (*domain.Appointment, *domain.Vet, error) {
	appt, err := s.appointments.GetByID(ctx, apptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	vet, err := s.vets.GetByUserID(ctx, vetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrForbidden
		}
		return nil, nil, err
	}
	if appt.VetID != vet.ID {
		return nil, nil, ErrForbidden
	}

	return appt, vet, nil
}
