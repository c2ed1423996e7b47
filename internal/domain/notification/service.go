package notification

import (
	"context"
	"fmt"
)

type Service struct {
	repo *NotificationRepository
}

func NewService(repo *NotificationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID int64, t NotificationType, title, message string, data map[string]any) error {
	n := &Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		IsRead:  false,
	}
	return s.repo.Create(ctx, n, data)
}

func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]Notification, int64, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	total, err := s.repo.CountByUserID(ctx, userID)
	if err != nil {
		total = int64(len(list))
	}

	return list, unread, total, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, notificationID, userID int64) error {
	return s.repo.Delete(ctx, notificationID, userID)
}

func (s *Service) NotifyAssignmentRequested(ctx context.Context, vetUserID, requestID, petID int64, petName string) error {
	return s.Create(
		ctx,
		vetUserID,
		NotifAssignmentRequest,
		"New care request",
		fmt.Sprintf("An owner asked you to become the vet for %s", petName),
		map[string]any{
			"request_id": requestID,
			"pet_id":     petID,
		},
	)
}

func (s *Service) NotifyAssignmentAccepted(ctx context.Context, ownerUserID, requestID, petID, vetID int64, vetName string) error {
	return s.Create(
		ctx,
		ownerUserID,
		NotifAssignmentAccepted,
		"Care request accepted",
		fmt.Sprintf("%s is now the vet for your pet", vetName),
		map[string]any{
			"request_id": requestID,
			"pet_id":     petID,
			"vet_id":     vetID,
		},
	)
}

func (s *Service) NotifyAssignmentRejected(ctx context.Context, ownerUserID, requestID, petID int64, reason string) error {
	msg := "Your care request was declined"
	if reason != "" {
		msg = msg + ". Reason: " + reason
	}
	return s.Create(
		ctx,
		ownerUserID,
		NotifAssignmentRejected,
		"Care request declined",
		msg,
		map[string]any{
			"request_id": requestID,
			"pet_id":     petID,
		},
	)
}

func (s *Service) NotifyAppointmentRequested(ctx context.Context, vetUserID, appointmentID, petID int64, date, tm string) error {
	return s.Create(
		ctx,
		vetUserID,
		NotifAppointmentRequest,
		"New appointment request",
		fmt.Sprintf("An owner requested an appointment on %s at %s", date, tm),
		map[string]any{
			"appointment_id": appointmentID,
			"pet_id":         petID,
		},
	)
}

func (s *Service) NotifyAppointmentConfirmed(ctx context.Context, ownerUserID, appointmentID int64, date, tm string) error {
	return s.Create(
		ctx,
		ownerUserID,
		NotifAppointmentConfirmed,
		"Appointment confirmed",
		fmt.Sprintf("Your appointment is confirmed for %s at %s", date, tm),
		map[string]any{
			"appointment_id": appointmentID,
		},
	)
}

func (s *Service) NotifyAppointmentCancelled(ctx context.Context, recipientUserID, appointmentID int64, reason string) error {
	msg := "The appointment was cancelled"
	if reason != "" {
		msg = msg + ". Reason: " + reason
	}
	return s.Create(
		ctx,
		recipientUserID,
		NotifAppointmentCancelled,
		"Appointment cancelled",
		msg,
		map[string]any{
			"appointment_id": appointmentID,
		},
	)
}
