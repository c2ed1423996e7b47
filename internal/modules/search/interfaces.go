package search

import (
	"context"

	"petcare/internal/domain"
)

// VetLister supplies the candidate set for ranking.
type VetLister interface {
	ListApproved(ctx context.Context) ([]domain.Vet, error)
}
