package auth

import (
	"context"

	"petcare/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type VetRepository interface {
	Create(ctx context.Context, v *domain.Vet) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role domain.Role) (string, error)
}
