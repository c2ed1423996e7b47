package repository

import (
	"context"
	"fmt"
	"time"

	"petcare/internal/domain"

	"gorm.io/gorm"
)

type VetRepository struct {
	db *gorm.DB
}

func NewVetRepository(db *gorm.DB) *VetRepository {
	return &VetRepository{db: db}
}

type vetModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	UserID             int64      `gorm:"column:user_id;index"`
	Name               string     `gorm:"column:name"`
	ClinicName         *string    `gorm:"column:clinic_name"`
	Location           *string    `gorm:"column:location"`
	Latitude           *float64   `gorm:"column:latitude"`
	Longitude          *float64   `gorm:"column:longitude"`
	EmergencyAvailable bool       `gorm:"column:emergency_available"`
	Premium            bool       `gorm:"column:premium"`
	Rating             float64    `gorm:"column:rating"`
	Schedule           *string    `gorm:"column:schedule"`
	Status             string     `gorm:"column:status;index"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	SuspendedAt        *time.Time `gorm:"column:suspended_at"`
}

func (vetModel) TableName() string { return "vets" }

func toDomainVet(m vetModel) (*domain.Vet, error) {
	status := domain.VetStatus(m.Status)
	if !validVetStatus(status) {
		return nil, fmt.Errorf("vet %d: unknown status %q", m.ID, m.Status)
	}

	v := &domain.Vet{
		ID:                 m.ID,
		UserID:             m.UserID,
		Name:               m.Name,
		Latitude:           m.Latitude,
		Longitude:          m.Longitude,
		EmergencyAvailable: m.EmergencyAvailable,
		Premium:            m.Premium,
		Rating:             m.Rating,
		Status:             status,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		SuspendedAt:        m.SuspendedAt,
	}
	if m.ClinicName != nil {
		v.ClinicName = *m.ClinicName
	}
	if m.Location != nil {
		v.Location = *m.Location
	}
	if m.Schedule != nil {
		v.Schedule = *m.Schedule
	}
	return v, nil
}

func validVetStatus(s domain.VetStatus) bool {
	switch s {
	case domain.VetPending, domain.VetApproved, domain.VetSuspended:
		return true
	}
	return false
}

func toVetModel(v *domain.Vet) vetModel {
	m := vetModel{
		ID:                 v.ID,
		UserID:             v.UserID,
		Name:               v.Name,
		Latitude:           v.Latitude,
		Longitude:          v.Longitude,
		EmergencyAvailable: v.EmergencyAvailable,
		Premium:            v.Premium,
		Rating:             v.Rating,
		Status:             string(v.Status),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
		SuspendedAt:        v.SuspendedAt,
	}
	if v.ClinicName != "" {
		s := v.ClinicName
		m.ClinicName = &s
	}
	if v.Location != "" {
		s := v.Location
		m.Location = &s
	}
	if v.Schedule != "" {
		s := v.Schedule
		m.Schedule = &s
	}
	return m
}

func (r *VetRepository) Create(ctx context.Context, v *domain.Vet) error {
	m := toVetModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainVet(m)
	if err != nil {
		return err
	}
	*v = *out
	return nil
}

func (r *VetRepository) GetByID(ctx context.Context, id int64) (*domain.Vet, error) {
	var m vetModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVet(m)
}

func (r *VetRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Vet, error) {
	var m vetModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVet(m)
}

// ListApproved returns every vet currently visible to search.
func (r *VetRepository) ListApproved(ctx context.Context) ([]domain.Vet, error) {
	var ms []vetModel
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(domain.VetApproved)).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vet, 0, len(ms))
	for _, m := range ms {
		v, err := toDomainVet(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *VetRepository) Update(ctx context.Context, v *domain.Vet) error {
	m := toVetModel(v)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *VetRepository) UpdateStatus(ctx context.Context, id int64, status domain.VetStatus, suspendedAt *time.Time) error {
	return r.db.WithContext(ctx).
		Model(&vetModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(status),
			"suspended_at": suspendedAt,
		}).Error
}
