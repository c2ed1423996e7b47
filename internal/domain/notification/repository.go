package notification

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type notificationModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index:idx_notifications_user_unread"`
	Type      string    `gorm:"column:type"`
	Title     string    `gorm:"column:title"`
	Message   *string   `gorm:"column:message"`
	IsRead    bool      `gorm:"column:is_read;index:idx_notifications_user_unread"`
	Data      []byte    `gorm:"column:data"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *Notification, data map[string]any) error {
	var raw []byte
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		raw = b
	}

	var msg *string
	if n.Message != "" {
		m := n.Message
		msg = &m
	}

	m := &notificationModel{
		UserID:  n.UserID,
		Type:    string(n.Type),
		Title:   n.Title,
		Message: msg,
		IsRead:  n.IsRead,
		Data:    raw,
	}

	tx := r.db.WithContext(ctx).Create(m)
	if tx.Error != nil {
		return tx.Error
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]Notification, error) {
	var ms []notificationModel

	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]Notification, 0, len(ms))
	for _, m := range ms {
		var decoded any
		if len(m.Data) > 0 {
			_ = json.Unmarshal(m.Data, &decoded)
		}

		msg := ""
		if m.Message != nil {
			msg = *m.Message
		}

		out = append(out, Notification{
			ID:        m.ID,
			UserID:    m.UserID,
			Type:      NotificationType(m.Type),
			Title:     m.Title,
			Message:   msg,
			IsRead:    m.IsRead,
			Data:      decoded,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&cnt).Error
	return cnt, err
}

func (r *NotificationRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ?", userID).
		Count(&cnt).Error
	return cnt, err
}

// MarkAsRead is scoped to the recipient so one user cannot touch another's rows.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *NotificationRepository) Delete(ctx context.Context, notificationID, userID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&notificationModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
