package vet

import (
	"context"
	"errors"
	"time"

	"petcare/internal/domain"
	"petcare/internal/geo"

	"gorm.io/gorm"
)

type Service struct {
	vets VetRepository
}

func NewService(vets VetRepository) *Service {
	return &Service{vets: vets}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Vet, error) {
	v, err := s.vets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// UpdateOwnProfile lets a vet edit their own record. Changing the location
// re-resolves coordinates; an unresolvable location just clears them and the
// vet ranks by premium/rating until it resolves.
func (s *Service) UpdateOwnProfile(ctx context.Context, vetUserID int64, req UpdateProfileRequest) (*domain.Vet, error) {
	v, err := s.vets.GetByUserID(ctx, vetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrValidation
		}
		v.Name = *req.Name
	}
	if req.ClinicName != nil {
		v.ClinicName = *req.ClinicName
	}
	if req.Schedule != nil {
		v.Schedule = *req.Schedule
	}
	if req.EmergencyAvailable != nil {
		v.EmergencyAvailable = *req.EmergencyAvailable
	}
	if req.Location != nil {
		v.Location = *req.Location
		if coord, ok := geo.Resolve(v.Location); ok {
			v.Latitude = &coord.Lat
			v.Longitude = &coord.Lng
		} else {
			v.Latitude = nil
			v.Longitude = nil
		}
	}

	if err := s.vets.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetPremium grants or revokes the premium-partner flag. Admin only: the
// flag buys ranking priority, so vets cannot set it on themselves.
func (s *Service) SetPremium(ctx context.Context, vetID int64, premium bool) (*domain.Vet, error) {
	v, err := s.GetByID(ctx, vetID)
	if err != nil {
		return nil, err
	}

	v.Premium = premium
	if err := s.vets.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Approve makes a vet visible to search and assignment.
func (s *Service) Approve(ctx context.Context, vetID int64) (*domain.Vet, error) {
	if _, err := s.GetByID(ctx, vetID); err != nil {
		return nil, err
	}
	if err := s.vets.UpdateStatus(ctx, vetID, domain.VetApproved, nil); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, vetID)
}

// Suspend deactivates a vet without deleting the record.
func (s *Service) Suspend(ctx context.Context, vetID int64) (*domain.Vet, error) {
	if _, err := s.GetByID(ctx, vetID); err != nil {
		return nil, err
	}
	now := time.Now()
	if err := s.vets.UpdateStatus(ctx, vetID, domain.VetSuspended, &now); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, vetID)
}
