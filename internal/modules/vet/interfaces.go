package vet

import (
	"context"
	"time"

	"petcare/internal/domain"
)

type VetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vet, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Vet, error)
	Update(ctx context.Context, v *domain.Vet) error
	UpdateStatus(ctx context.Context, id int64, status domain.VetStatus, suspendedAt *time.Time) error
}
