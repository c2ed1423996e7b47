package pet

import (
	"context"
	"errors"
	"time"

	"petcare/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	pets PetRepository
}

func NewService(pets PetRepository) *Service {
	return &Service{pets: pets}
}

func (s *Service) Create(ctx context.Context, ownerID int64, name, species, breed, birthDate string) (*domain.Pet, error) {
	if name == "" || species == "" {
		return nil, ErrValidation
	}
	if birthDate != "" {
		if _, err := time.Parse("2006-01-02", birthDate); err != nil {
			return nil, ErrValidation
		}
	}

	p := &domain.Pet{
		OwnerID:   ownerID,
		Name:      name,
		Species:   species,
		Breed:     breed,
		BirthDate: birthDate,
	}
	if err := s.pets.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetOwned(ctx context.Context, petID, ownerID int64) (*domain.Pet, error) {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *Service) ListMine(ctx context.Context, ownerID int64) ([]domain.Pet, error) {
	return s.pets.GetByOwnerID(ctx, ownerID)
}

// ClearVetLink removes the pet's designated vet. Only the owner may do this;
// vets end the relationship by rejecting future requests.
func (s *Service) ClearVetLink(ctx context.Context, petID, ownerID int64) error {
	if _, err := s.GetOwned(ctx, petID, ownerID); err != nil {
		return err
	}
	return s.pets.ClearVetLink(ctx, petID)
}
