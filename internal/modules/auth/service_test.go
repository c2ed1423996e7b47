package auth

import (
	"context"
	"testing"

	"petcare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockVetRepository struct {
	mock.Mock
}

func (m *MockVetRepository) Create(ctx context.Context, v *domain.Vet) error {
	args := m.Called(ctx, v)
	if v != nil && args.Error(0) == nil {
		v.ID = 10
	}
	return args.Error(0)
}

type stubTokens struct{}

func (stubTokens) GenerateToken(userID int64, role domain.Role) (string, error) {
	return "token", nil
}

func TestRegister_Owner(t *testing.T) {
	users := new(MockUserRepository)
	vets := new(MockVetRepository)
	svc := NewService(users, vets, stubTokens{})

	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Anna@Example.com",
		Password: "secret-password",
		Name:     "Anna",
		Role:     "owner",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, "anna@example.com", resp.User.Email)
	assert.Equal(t, domain.RoleOwner, resp.User.Role)
	assert.NotEmpty(t, resp.User.PasswordHash)
	vets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_VetGetsPendingProfile(t *testing.T) {
	users := new(MockUserRepository)
	vets := new(MockVetRepository)
	svc := NewService(users, vets, stubTokens{})

	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	vets.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Vet) bool {
		return v.Status == domain.VetPending && v.UserID == 1
	})).Return(nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "vet@example.com",
		Password: "secret-password",
		Name:     "Dr. Kim",
		Role:     "vet",
	})

	require.NoError(t, err)
	vets.AssertExpectations(t)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc := NewService(new(MockUserRepository), new(MockVetRepository), stubTokens{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "x@example.com",
		Password: "secret-password",
		Name:     "X",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockVetRepository), stubTokens{})

	users.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret-password",
		Name:     "X",
		Role:     "owner",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockVetRepository), stubTokens{})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.User{
		ID:           1,
		Email:        "anna@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleOwner,
	}, nil)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "anna@example.com", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, "token", resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockVetRepository), stubTokens{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.User{
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "anna@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockVetRepository), stubTokens{})

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
