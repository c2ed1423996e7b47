package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petcare/internal/domain"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

type assignmentModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	PetID       int64      `gorm:"column:pet_id;uniqueIndex:idx_one_pending_per_pet,where:status = 'pending'"`
	OwnerID     int64      `gorm:"column:owner_id;index"`
	VetID       int64      `gorm:"column:vet_id;index"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
}

func (assignmentModel) TableName() string { return "assignment_requests" }

func toDomainAssignment(m assignmentModel) (*domain.AssignmentRequest, error) {
	status := domain.AssignmentStatus(m.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("assignment request %d: unknown status %q", m.ID, m.Status)
	}
	return &domain.AssignmentRequest{
		ID:          m.ID,
		PetID:       m.PetID,
		OwnerID:     m.OwnerID,
		VetID:       m.VetID,
		Status:      status,
		CreatedAt:   m.CreatedAt,
		ProcessedAt: m.ProcessedAt,
	}, nil
}

func (r *AssignmentRepository) Create(ctx context.Context, a *domain.AssignmentRequest) error {
	m := assignmentModel{
		PetID:   a.PetID,
		OwnerID: a.OwnerID,
		VetID:   a.VetID,
		Status:  string(a.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainAssignment(m)
	if err != nil {
		return err
	}
	*a = *out
	return nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.AssignmentRequest, error) {
	var m assignmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAssignment(m)
}

// GetPendingByPetID returns nil, nil when the pet has no pending request.
func (r *AssignmentRepository) GetPendingByPetID(ctx context.Context, petID int64) (*domain.AssignmentRequest, error) {
	var m assignmentModel
	tx := r.db.WithContext(ctx).
		Where("pet_id = ? AND status = ?", petID, string(domain.AssignmentPending)).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainAssignment(m)
}

func (r *AssignmentRepository) ListByOwnerID(ctx context.Context, ownerID int64) ([]domain.AssignmentRequest, error) {
	return r.list(ctx, "owner_id = ?", ownerID)
}

func (r *AssignmentRepository) ListByVetID(ctx context.Context, vetID int64) ([]domain.AssignmentRequest, error) {
	return r.list(ctx, "vet_id = ?", vetID)
}

func (r *AssignmentRepository) list(ctx context.Context, cond string, arg any) ([]domain.AssignmentRequest, error) {
	var ms []assignmentModel
	tx := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AssignmentRequest, 0, len(ms))
	for _, m := range ms {
		a, err := toDomainAssignment(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

// TransitionFromPending applies the status change only if the request is
// still pending. Returns the number of rows updated: zero means another
// actor already transitioned it (or it does not exist).
func (r *AssignmentRepository) TransitionFromPending(ctx context.Context, id int64, status domain.AssignmentStatus, processedAt *time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&assignmentModel{}).
		Where("id = ? AND status = ?", id, string(domain.AssignmentPending)).
		Updates(map[string]any{
			"status":       string(status),
			"processed_at": processedAt,
		})
	return tx.RowsAffected, tx.Error
}
