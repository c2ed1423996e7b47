package assignment

import (
	"context"
	"time"

	"petcare/internal/domain"
)

// AssignmentRepository defines the persistence operations for care requests
type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.AssignmentRequest) error
	GetByID(ctx context.Context, id int64) (*domain.AssignmentRequest, error)
	GetPendingByPetID(ctx context.Context, petID int64) (*domain.AssignmentRequest, error)
	ListByOwnerID(ctx context.Context, ownerID int64) ([]domain.AssignmentRequest, error)
	ListByVetID(ctx context.Context, vetID int64) ([]domain.AssignmentRequest, error)
	TransitionFromPending(ctx context.Context, id int64, status domain.AssignmentStatus, processedAt *time.Time) (int64, error)
}

type PetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	SetVetLink(ctx context.Context, petID, vetID int64, vetName string) error
}

type VetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vet, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Vet, error)
}

type NotificationSender interface {
	NotifyAssignmentRequested(ctx context.Context, vetUserID, requestID, petID int64, petName string) error
	NotifyAssignmentAccepted(ctx context.Context, ownerUserID, requestID, petID, vetID int64, vetName string) error
	NotifyAssignmentRejected(ctx context.Context, ownerUserID, requestID, petID int64, reason string) error
}
