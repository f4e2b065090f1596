package query

import (
	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// NotificationReader lists a user's notifications.
type NotificationReader interface {
	ListByUserID(userID string) ([]models.Notification, error)
}

// SupportReader lists a user's support thread.
type SupportReader interface {
	ListByUserID(userID string) ([]models.SupportMessage, error)
}

// MessageQueryService serves the notification and support-chat lists.
type MessageQueryService struct {
	notifications NotificationReader
	support       SupportReader
}

func NewMessageQueryService(notifications NotificationReader, support SupportReader) *MessageQueryService {
	return &MessageQueryService{notifications: notifications, support: support}
}

func (s *MessageQueryService) ListNotifications(q cqrs.ListNotificationsQuery) ([]models.Notification, error) {
	return s.notifications.ListByUserID(q.UserID)
}

func (s *MessageQueryService) ListSupportMessages(q cqrs.ListSupportMessagesQuery) ([]models.SupportMessage, error) {
	return s.support.ListByUserID(q.UserID)
}
