package vet

import (
	"context"
	"testing"
	"time"

	"petcare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVetRepository struct {
	mock.Mock
}

func (m *MockVetRepository) GetByID(ctx context.Context, id int64) (*domain.Vet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vet), args.Error(1)
}

func (m *MockVetRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Vet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vet), args.Error(1)
}

func (m *MockVetRepository) Update(ctx context.Context, v *domain.Vet) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVetRepository) UpdateStatus(ctx context.Context, id int64, status domain.VetStatus, suspendedAt *time.Time) error {
	args := m.Called(ctx, id, status, suspendedAt)
	return args.Error(0)
}

func approvedVet() *domain.Vet {
	return &domain.Vet{ID: 3, UserID: 30, Name: "Dr. Aidos", Status: domain.VetApproved}
}

func s(v string) *string { return &v }

func TestUpdateOwnProfile_LocationResolvesCoordinates(t *testing.T) {
	vets := new(MockVetRepository)
	vets.On("GetByUserID", mock.Anything, int64(30)).Return(approvedVet(), nil)
	vets.On("Update", mock.Anything, mock.AnythingOfType("*domain.Vet")).Return(nil)

	svc := NewService(vets)
	v, err := svc.UpdateOwnProfile(context.Background(), 30, UpdateProfileRequest{Location: s("Almaty")})

	require.NoError(t, err)
	require.NotNil(t, v.Latitude)
	require.NotNil(t, v.Longitude)
	assert.InDelta(t, 43.2389, *v.Latitude, 0.001)
}

func TestUpdateOwnProfile_UnresolvableLocationClearsCoordinates(t *testing.T) {
	lat, lng := 43.2389, 76.8897
	existing := approvedVet()
	existing.Latitude = &lat
	existing.Longitude = &lng

	vets := new(MockVetRepository)
	vets.On("GetByUserID", mock.Anything, int64(30)).Return(existing, nil)
	vets.On("Update", mock.Anything, mock.AnythingOfType("*domain.Vet")).Return(nil)

	svc := NewService(vets)
	v, err := svc.UpdateOwnProfile(context.Background(), 30, UpdateProfileRequest{Location: s("somewhere remote")})

	require.NoError(t, err)
	assert.Nil(t, v.Latitude)
	assert.Nil(t, v.Longitude)
}

func TestUpdateOwnProfile_EmptyNameRejected(t *testing.T) {
	vets := new(MockVetRepository)
	vets.On("GetByUserID", mock.Anything, int64(30)).Return(approvedVet(), nil)

	svc := NewService(vets)
	_, err := svc.UpdateOwnProfile(context.Background(), 30, UpdateProfileRequest{Name: s("")})

	assert.ErrorIs(t, err, ErrValidation)
	vets.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetPremium_AdminGrantsFlag(t *testing.T) {
	vets := new(MockVetRepository)
	vets.On("GetByID", mock.Anything, int64(3)).Return(approvedVet(), nil)
	vets.On("Update", mock.Anything, mock.MatchedBy(func(v *domain.Vet) bool {
		return v.ID == 3 && v.Premium
	})).Return(nil)

	svc := NewService(vets)
	v, err := svc.SetPremium(context.Background(), 3, true)

	require.NoError(t, err)
	assert.True(t, v.Premium)
	vets.AssertExpectations(t)
}

func TestSetPremium_Revoke(t *testing.T) {
	premium := approvedVet()
	premium.Premium = true

	vets := new(MockVetRepository)
	vets.On("GetByID", mock.Anything, int64(3)).Return(premium, nil)
	vets.On("Update", mock.Anything, mock.AnythingOfType("*domain.Vet")).Return(nil)

	svc := NewService(vets)
	v, err := svc.SetPremium(context.Background(), 3, false)

	require.NoError(t, err)
	assert.False(t, v.Premium)
}

func TestSuspend_SetsTimestamp(t *testing.T) {
	vets := new(MockVetRepository)
	suspended := approvedVet()
	suspended.Status = domain.VetSuspended

	vets.On("GetByID", mock.Anything, int64(3)).Return(approvedVet(), nil).Once()
	vets.On("UpdateStatus", mock.Anything, int64(3), domain.VetSuspended, mock.MatchedBy(func(at *time.Time) bool {
		return at != nil
	})).Return(nil)
	vets.On("GetByID", mock.Anything, int64(3)).Return(suspended, nil).Once()

	svc := NewService(vets)
	v, err := svc.Suspend(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, domain.VetSuspended, v.Status)
	vets.AssertExpectations(t)
}
