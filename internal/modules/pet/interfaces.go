package pet

import (
	"context"

	"petcare/internal/domain"
)

type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) error
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Pet, error)
	ClearVetLink(ctx context.Context, petID int64) error
}
