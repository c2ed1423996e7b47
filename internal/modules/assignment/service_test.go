package assignment

import (
	"context"
	"errors"
	"testing"
	"time"

	"petcare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Mock repositories
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, a *domain.AssignmentRequest) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 101 // simulate DB insert
		a.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.AssignmentRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentRequest), args.Error(1)
}

func (m *MockAssignmentRepository) GetPendingByPetID(ctx context.Context, petID int64) (*domain.AssignmentRequest, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentRequest), args.Error(1)
}

func (m *MockAssignmentRepository) ListByOwnerID(ctx context.Context, ownerID int64) ([]domain.AssignmentRequest, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssignmentRequest), args.Error(1)
}

func (m *MockAssignmentRepository) ListByVetID(ctx context.Context, vetID int64) ([]domain.AssignmentRequest, error) {
	args := m.Called(ctx, vetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssignmentRequest), args.Error(1)
}

func (m *MockAssignmentRepository) TransitionFromPending(ctx context.Context, id int64, status domain.AssignmentStatus, processedAt *time.Time) (int64, error) {
	args := m.Called(ctx, id, status, processedAt)
	return args.Get(0).(int64), args.Error(1)
}

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetRepository) SetVetLink(ctx context.Context, petID, vetID int64, vetName string) error {
	args := m.Called(ctx, petID, vetID, vetName)
	return args.Error(0)
}

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

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyAssignmentRequested(ctx context.Context, vetUserID, requestID, petID int64, petName string) error {
	args := m.Called(ctx, vetUserID, requestID, petID, petName)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyAssignmentAccepted(ctx context.Context, ownerUserID, requestID, petID, vetID int64, vetName string) error {
	args := m.Called(ctx, ownerUserID, requestID, petID, vetID, vetName)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyAssignmentRejected(ctx context.Context, ownerUserID, requestID, petID int64, reason string) error {
	args := m.Called(ctx, ownerUserID, requestID, petID, reason)
	return args.Error(0)
}

func testPet() *domain.Pet {
	return &domain.Pet{ID: 7, OwnerID: 1, Name: "Barsik"}
}

func testVet() *domain.Vet {
	return &domain.Vet{ID: 3, UserID: 30, Name: "Dr. Aidos", Status: domain.VetApproved}
}

func TestService_Create_Success(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)
	notifs := new(MockNotificationSender)

	pets.On("GetByID", mock.Anything, int64(7)).Return(testPet(), nil)
	vets.On("GetByID", mock.Anything, int64(3)).Return(testVet(), nil)
	requests.On("GetPendingByPetID", mock.Anything, int64(7)).Return(nil, nil)
	requests.On("Create", mock.Anything, mock.AnythingOfType("*domain.AssignmentRequest")).Return(nil)
	notifs.On("NotifyAssignmentRequested", mock.Anything, int64(30), int64(101), int64(7), "Barsik").Return(nil)

	svc := NewService(requests, pets, vets, notifs)
	req, err := svc.Create(context.Background(), 7, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentPending, req.Status)
	assert.Equal(t, int64(101), req.ID)
	notifs.AssertExpectations(t)
}

func TestService_Create_PendingExists(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)
	notifs := new(MockNotificationSender)

	pets.On("GetByID", mock.Anything, int64(7)).Return(testPet(), nil)
	vets.On("GetByID", mock.Anything, int64(3)).Return(testVet(), nil)
	requests.On("GetPendingByPetID", mock.Anything, int64(7)).Return(&domain.AssignmentRequest{
		ID: 50, PetID: 7, OwnerID: 1, VetID: 9, Status: domain.AssignmentPending,
	}, nil)

	svc := NewService(requests, pets, vets, notifs)
	_, err := svc.Create(context.Background(), 7, 1, 3)

	assert.ErrorIs(t, err, ErrPendingExists)
	requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifs.AssertNotCalled(t, "NotifyAssignmentRequested", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_NotPetOwner(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)

	pets.On("GetByID", mock.Anything, int64(7)).Return(testPet(), nil)

	svc := NewService(requests, pets, vets, nil)
	_, err := svc.Create(context.Background(), 7, 999, 3)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_PetNotFound(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)

	pets.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(requests, pets, vets, nil)
	_, err := svc.Create(context.Background(), 7, 1, 3)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_SuspendedVet(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)

	suspended := testVet()
	suspended.Status = domain.VetSuspended

	pets.On("GetByID", mock.Anything, int64(7)).Return(testPet(), nil)
	vets.On("GetByID", mock.Anything, int64(3)).Return(suspended, nil)

	svc := NewService(requests, pets, vets, nil)
	_, err := svc.Create(context.Background(), 7, 1, 3)

	assert.ErrorIs(t, err, ErrVetUnavailable)
}

func TestService_Accept_Success(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)
	notifs := new(MockNotificationSender)

	pendingReq := &domain.AssignmentRequest{ID: 101, PetID: 7, OwnerID: 1, VetID: 3, Status: domain.AssignmentPending}
	acceptedReq := &domain.AssignmentRequest{ID: 101, PetID: 7, OwnerID: 1, VetID: 3, Status: domain.AssignmentAccepted}

	requests.On("GetByID", mock.Anything, int64(101)).Return(pendingReq, nil).Once()
	vets.On("GetByUserID", mock.Anything, int64(30)).Return(testVet(), nil)
	requests.On("TransitionFromPending", mock.Anything, int64(101), domain.AssignmentAccepted, mock.Anything).Return(int64(1), nil)
	pets.On("SetVetLink", mock.Anything, int64(7), int64(3), "Dr. Aidos").Return(nil)
	notifs.On("NotifyAssignmentAccepted", mock.Anything, int64(1), int64(101), int64(7), int64(3), "Dr. Aidos").Return(nil)
	requests.On("GetByID", mock.Anything, int64(101)).Return(acceptedReq, nil).Once()

	svc := NewService(requests, pets, vets, notifs)
	out, err := svc.Accept(context.Background(), 101, 30)

	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentAccepted, out.Status)
	pets.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestService_Accept_AlreadyTerminal(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)
	notifs := new(MockNotificationSender)

	rejected := &domain.AssignmentRequest{ID: 101, PetID: 7, OwnerID: 1, VetID: 3, Status: domain.AssignmentRejected}

	requests.On("GetByID", mock.Anything, int64(101)).Return(rejected, nil)
	vets.On("GetByUserID", mock.Anything, int64(30)).Return(testVet(), nil)
	requests.On("TransitionFromPending", mock.Anything, int64(101), domain.AssignmentAccepted, mock.Anything).Return(int64(0), nil)

	svc := NewService(requests, pets, vets, notifs)
	_, err := svc.Accept(context.Background(), 101, 30)

	assert.ErrorIs(t, err, ErrInvalidState)
	pets.AssertNotCalled(t, "SetVetLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	notifs.AssertNotCalled(t, "NotifyAssignmentAccepted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Accept_WrongVet(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)

	otherVetsReq := &domain.AssignmentRequest{ID: 101, PetID: 7, OwnerID: 1, VetID: 55, Status: domain.AssignmentPending}

	requests.On("GetByID", mock.Anything, int64(101)).Return(otherVetsReq, nil)
	vets.On("GetByUserID", mock.Anything, int64(30)).Return(testVet(), nil)

	svc := NewService(requests, pets, vets, nil)
	_, err := svc.Accept(context.Background(), 101, 30)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Reject_Success_DoesNotTouchLink(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)
	notifs := new(MockNotificationSender)

	pendingReq := &domain.AssignmentRequest{ID: 101, PetID: 7, OwnerID: 1, VetID: 3, Status: domain.AssignmentPending}
	rejectedReq := &domain.AssignmentRequest{ID: 101, PetID: 7, OwnerID: 1, VetID: 3, Status: domain.AssignmentRejected}

	requests.On("GetByID", mock.Anything, int64(101)).Return(pendingReq, nil).Once()
	vets.On("GetByUserID", mock.Anything, int64(30)).Return(testVet(), nil)
	requests.On("TransitionFromPending", mock.Anything, int64(101), domain.AssignmentRejected, mock.Anything).Return(int64(1), nil)
	notifs.On("NotifyAssignmentRejected", mock.Anything, int64(1), int64(101), int64(7), "fully booked").Return(nil)
	requests.On("GetByID", mock.Anything, int64(101)).Return(rejectedReq, nil).Once()

	svc := NewService(requests, pets, vets, notifs)
	out, err := svc.Reject(context.Background(), 101, 30, "fully booked")

	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentRejected, out.Status)
	pets.AssertNotCalled(t, "SetVetLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	notifs.AssertExpectations(t)
}

func TestService_Supersede_NoNotification(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)
	notifs := new(MockNotificationSender)

	pendingReq := &domain.AssignmentRequest{ID: 50, PetID: 7, OwnerID: 1, VetID: 9, Status: domain.AssignmentPending}

	requests.On("GetByID", mock.Anything, int64(50)).Return(pendingReq, nil)
	requests.On("TransitionFromPending", mock.Anything, int64(50), domain.AssignmentCancelled, mock.Anything).Return(int64(1), nil)

	svc := NewService(requests, pets, vets, notifs)
	err := svc.Supersede(context.Background(), 50, 1)

	require.NoError(t, err)
	notifs.AssertNotCalled(t, "NotifyAssignmentRejected", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Supersede_NotPending(t *testing.T) {
	requests := new(MockAssignmentRepository)

	accepted := &domain.AssignmentRequest{ID: 50, PetID: 7, OwnerID: 1, VetID: 9, Status: domain.AssignmentAccepted}

	requests.On("GetByID", mock.Anything, int64(50)).Return(accepted, nil)
	requests.On("TransitionFromPending", mock.Anything, int64(50), domain.AssignmentCancelled, mock.Anything).Return(int64(0), nil)

	svc := NewService(requests, new(MockPetRepository), new(MockVetRepository), nil)
	err := svc.Supersede(context.Background(), 50, 1)

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_Replace_SupersedesThenCreates(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)
	notifs := new(MockNotificationSender)

	oldPending := &domain.AssignmentRequest{ID: 50, PetID: 7, OwnerID: 1, VetID: 9, Status: domain.AssignmentPending}

	requests.On("GetPendingByPetID", mock.Anything, int64(7)).Return(oldPending, nil).Once()
	requests.On("GetByID", mock.Anything, int64(50)).Return(oldPending, nil)
	requests.On("TransitionFromPending", mock.Anything, int64(50), domain.AssignmentCancelled, mock.Anything).Return(int64(1), nil)

	pets.On("GetByID", mock.Anything, int64(7)).Return(testPet(), nil)
	vets.On("GetByID", mock.Anything, int64(3)).Return(testVet(), nil)
	requests.On("GetPendingByPetID", mock.Anything, int64(7)).Return(nil, nil).Once()
	requests.On("Create", mock.Anything, mock.AnythingOfType("*domain.AssignmentRequest")).Return(nil)
	notifs.On("NotifyAssignmentRequested", mock.Anything, int64(30), int64(101), int64(7), "Barsik").Return(nil)

	svc := NewService(requests, pets, vets, notifs)
	out, err := svc.Replace(context.Background(), 7, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentPending, out.Status)
	assert.Equal(t, int64(3), out.VetID)
	requests.AssertExpectations(t)
}

func TestService_Accept_SucceedsWhenNotificationFails(t *testing.T) {
	requests := new(MockAssignmentRepository)
	pets := new(MockPetRepository)
	vets := new(MockVetRepository)
	notifs := new(MockNotificationSender)

	pendingReq := &domain.AssignmentRequest{ID: 101, PetID: 7, OwnerID: 1, VetID: 3, Status: domain.AssignmentPending}
	acceptedReq := &domain.AssignmentRequest{ID: 101, PetID: 7, OwnerID: 1, VetID: 3, Status: domain.AssignmentAccepted}

	requests.On("GetByID", mock.Anything, int64(101)).Return(pendingReq, nil).Once()
	vets.On("GetByUserID", mock.Anything, int64(30)).Return(testVet(), nil)
	requests.On("TransitionFromPending", mock.Anything, int64(101), domain.AssignmentAccepted, mock.Anything).Return(int64(1), nil)
	pets.On("SetVetLink", mock.Anything, int64(7), int64(3), "Dr. Aidos").Return(nil)
	notifs.On("NotifyAssignmentAccepted", mock.Anything, int64(1), int64(101), int64(7), int64(3), "Dr. Aidos").
		Return(errors.New("notification store down"))
	requests.On("GetByID", mock.Anything, int64(101)).Return(acceptedReq, nil).Once()

	svc := NewService(requests, pets, vets, notifs)
	out, err := svc.Accept(context.Background(), 101, 30)

	// a lost notification never rolls back the accept or the link write
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentAccepted, out.Status)
	pets.AssertExpectations(t)
	notifs.AssertExpectations(t)
}
