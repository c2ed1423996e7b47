package repository

import (
	"context"
	"time"

	"petcare/internal/domain"

	"gorm.io/gorm"
)

type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

type petModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	OwnerID   int64     `gorm:"column:owner_id;index"`
	Name      string    `gorm:"column:name"`
	Species   string    `gorm:"column:species"`
	Breed     *string   `gorm:"column:breed"`
	BirthDate *string   `gorm:"column:birth_date"`
	VetID     *int64    `gorm:"column:vet_id"`
	VetName   *string   `gorm:"column:vet_name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (petModel) TableName() string { return "pets" }

func toDomainPet(m petModel) *domain.Pet {
	p := &domain.Pet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Species:   m.Species,
		VetID:     m.VetID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Breed != nil {
		p.Breed = *m.Breed
	}
	if m.BirthDate != nil {
		p.BirthDate = *m.BirthDate
	}
	if m.VetName != nil {
		p.VetName = *m.VetName
	}
	return p
}

func toPetModel(p *domain.Pet) petModel {
	m := petModel{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		VetID:     p.VetID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Breed != "" {
		s := p.Breed
		m.Breed = &s
	}
	if p.BirthDate != "" {
		s := p.BirthDate
		m.BirthDate = &s
	}
	if p.VetName != "" {
		s := p.VetName
		m.VetName = &s
	}
	return m
}

func (r *PetRepository) Create(ctx context.Context, p *domain.Pet) error {
	m := toPetModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPet(m)
	return nil
}

func (r *PetRepository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	var m petModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPet(m), nil
}

func (r *PetRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Pet, error) {
	var ms []petModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Pet, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPet(m))
	}
	return out, nil
}

// SetVetLink overwrites any previous link; a pet has at most one vet.
func (r *PetRepository) SetVetLink(ctx context.Context, petID, vetID int64, vetName string) error {
	return r.db.WithContext(ctx).
		Model(&petModel{}).
		Where("id = ?", petID).
		Updates(map[string]any{
			"vet_id":   vetID,
			"vet_name": vetName,
		}).Error
}

func (r *PetRepository) ClearVetLink(ctx context.Context, petID int64) error {
	return r.db.WithContext(ctx).
		Model(&petModel{}).
		Where("id = ?", petID).
		Updates(map[string]any{
			"vet_id":   nil,
			"vet_name": nil,
		}).Error
}
