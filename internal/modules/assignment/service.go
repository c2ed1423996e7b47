package assignment

import (
	"context"
	"errors"
	"time"

	"petcare/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	requests AssignmentRepository
	pets     PetRepository
	vets     VetRepository
	notifs   NotificationSender
}

func NewService(
	requests AssignmentRepository,
	pets PetRepository,
	vets VetRepository,
	notifs NotificationSender,
) *Service {
	return &Service{
		requests: requests,
		pets:     pets,
		vets:     vets,
		notifs:   notifs,
	}
}

// Create opens a pending care request from the pet's owner to a vet. It fails
// with ErrPendingExists while another request for the same pet is pending;
// owners who want to switch vets go through Replace.
func (s *Service) Create(ctx context.Context, petID, ownerID, vetID int64) (*domain.AssignmentRequest, error) {
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
	if vet.Status != domain.VetApproved {
		return nil, ErrVetUnavailable
	}

	pending, err := s.requests.GetPendingByPetID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, ErrPendingExists
	}

	req := &domain.AssignmentRequest{
		PetID:   petID,
		OwnerID: ownerID,
		VetID:   vetID,
		Status:  domain.AssignmentPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		// A racing creator can slip between the pending check and the insert;
		// the partial unique index rejects the second writer.
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_one_pending_per_pet" {
				return nil, ErrPendingExists
			}
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyAssignmentRequested(ctx, vet.UserID, req.ID, pet.ID, pet.Name)
	}

	return req, nil
}

// Supersede withdraws a still-pending request. The vet never saw it acted
// upon, so no notification is emitted.
func (s *Service) Supersede(ctx context.Context, requestID, ownerID int64) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if req.OwnerID != ownerID {
		return ErrForbidden
	}

	now := time.Now()
	rows, err := s.requests.TransitionFromPending(ctx, requestID, domain.AssignmentCancelled, &now)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInvalidState
	}
	return nil
}

// Replace supersedes any pending request for the pet, then creates a new one.
// Two sequential writes; a racing second writer loses on the unique index.
func (s *Service) Replace(ctx context.Context, petID, ownerID, vetID int64) (*domain.AssignmentRequest, error) {
	pending, err := s.requests.GetPendingByPetID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		if err := s.Supersede(ctx, pending.ID, ownerID); err != nil && !errors.Is(err, ErrInvalidState) {
			return nil, err
		}
	}
	return s.Create(ctx, petID, ownerID, vetID)
}

// Accept is valid only while the request is pending. On success the pet's
// vet link is overwritten and the owner is notified.
func (s *Service) Accept(ctx context.Context, requestID, vetUserID int64) (*domain.AssignmentRequest, error) {
	req, vet, err := s.loadForVet(ctx, requestID, vetUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows, err := s.requests.TransitionFromPending(ctx, requestID, domain.AssignmentAccepted, &now)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Already terminal, or a racing actor got there first. Either way the
		// second writer is rejected and no duplicate side effects happen.
		return nil, ErrInvalidState
	}

	if err := s.pets.SetVetLink(ctx, req.PetID, vet.ID, vet.Name); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyAssignmentAccepted(ctx, req.OwnerID, req.ID, req.PetID, vet.ID, vet.Name)
	}

	return s.requests.GetByID(ctx, requestID)
}

// Reject is valid only while pending. The pet's vet link is untouched.
func (s *Service) Reject(ctx context.Context, requestID, vetUserID int64, reason string) (*domain.AssignmentRequest, error) {
	req, _, err := s.loadForVet(ctx, requestID, vetUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows, err := s.requests.TransitionFromPending(ctx, requestID, domain.AssignmentRejected, &now)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidState
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyAssignmentRejected(ctx, req.OwnerID, req.ID, req.PetID, reason)
	}

	return s.requests.GetByID(ctx, requestID)
}

func (s *Service) ListForOwner(ctx context.Context, ownerID int64) ([]domain.AssignmentRequest, error) {
	return s.requests.ListByOwnerID(ctx, ownerID)
}

func (s *Service) ListForVetUser(ctx context.Context, vetUserID int64) ([]domain.AssignmentRequest, error) {
	vet, err := s.vets.GetByUserID(ctx, vetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.requests.ListByVetID(ctx, vet.ID)
}

func (s *Service) loadForVet(ctx context.Context, requestID, vetUserID int64) (*domain.AssignmentRequest, *domain.Vet, error) {
	req, err := s.requests.GetByID(ctx, requestID)
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
	if req.VetID != vet.ID {
		return nil, nil, ErrForbidden
	}

	return req, vet, nil
}
