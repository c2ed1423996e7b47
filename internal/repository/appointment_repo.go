package repository

import (
	"context"
	"fmt"
	"time"

	"petcare/internal/domain"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	PetID           int64      `gorm:"column:pet_id;index"`
	OwnerID         int64      `gorm:"column:owner_id;index"`
	VetID           int64      `gorm:"column:vet_id;index"`
	Date            string     `gorm:"column:date"`
	Time            string     `gorm:"column:time"`
	ConfirmedDate   *string    `gorm:"column:confirmed_date"`
	ConfirmedTime   *string    `gorm:"column:confirmed_time"`
	RejectionReason *string    `gorm:"column:rejection_reason"`
	Status          string     `gorm:"column:status;index"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) (*domain.Appointment, error) {
	status := domain.AppointmentStatus(m.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("appointment %d: unknown status %q", m.ID, m.Status)
	}

	a := &domain.Appointment{
		ID:          m.ID,
		PetID:       m.PetID,
		OwnerID:     m.OwnerID,
		VetID:       m.VetID,
		Date:        m.Date,
		Time:        m.Time,
		Status:      status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
	}
	if m.ConfirmedDate != nil {
		a.ConfirmedDate = *m.ConfirmedDate
	}
	if m.ConfirmedTime != nil {
		a.ConfirmedTime = *m.ConfirmedTime
	}
	if m.RejectionReason != nil {
		a.RejectionReason = *m.RejectionReason
	}
	return a, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	m := appointmentModel{
		PetID:   a.PetID,
		OwnerID: a.OwnerID,
		VetID:   a.VetID,
		Date:    a.Date,
		Time:    a.Time,
		Status:  string(a.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainAppointment(m)
	if err != nil {
		return err
	}
	*a = *out
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var m appointmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAppointment(m)
}

func (r *AppointmentRepository) ListByOwnerID(ctx context.Context, ownerID int64) ([]domain.Appointment, error) {
	return r.list(ctx, "owner_id = ?", ownerID)
}

func (r *AppointmentRepository) ListByVetID(ctx context.Context, vetID int64) ([]domain.Appointment, error) {
	return r.list(ctx, "vet_id = ?", vetID)
}

func (r *AppointmentRepository) list(ctx context.Context, cond string, arg any) ([]domain.Appointment, error) {
	var ms []appointmentModel
	tx := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Appointment, 0, len(ms))
	for _, m := range ms {
		a, err := toDomainAppointment(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

// Confirm moves a pending appointment to upcoming, optionally recording a
// vet-chosen slot. Zero rows means the appointment was no longer pending.
func (r *AppointmentRepository) Confirm(ctx context.Context, id int64, confirmedDate, confirmedTime string) (int64, error) {
	updates := map[string]any{
		"status": string(domain.AppointmentUpcoming),
	}
	if confirmedDate != "" {
		updates["confirmed_date"] = confirmedDate
	}
	if confirmedTime != "" {
		updates["confirmed_time"] = confirmedTime
	}

	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ? AND status = ?", id, string(domain.AppointmentPending)).
		Updates(updates)
	return tx.RowsAffected, tx.Error
}

func (r *AppointmentRepository) RejectFromPending(ctx context.Context, id int64, reason string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ? AND status = ?", id, string(domain.AppointmentPending)).
		Updates(map[string]any{
			"status":           string(domain.AppointmentRejected),
			"rejection_reason": reason,
		})
	return tx.RowsAffected, tx.Error
}

// Cancel succeeds only from pending or upcoming.
func (r *AppointmentRepository) Cancel(ctx context.Context, id int64, at time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ? AND status IN ?", id, []string{
			string(domain.AppointmentPending),
			string(domain.AppointmentUpcoming),
		}).
		Updates(map[string]any{
			"status":       string(domain.AppointmentCancelled),
			"cancelled_at": at,
		})
	return tx.RowsAffected, tx.Error
}

// MarkElapsedCompleted is the out-of-band sweep that completes upcoming
// appointments whose confirmed (or requested) date has passed. The lifecycle
// service never drives this transition itself.
func (r *AppointmentRepository) MarkElapsedCompleted(ctx context.Context, today string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("status = ? AND COALESCE(confirmed_date, date) < ?",
			string(domain.AppointmentUpcoming), today).
		Update("status", string(domain.AppointmentCompleted))
	return tx.RowsAffected, tx.Error
}
