package command

import (
	"time"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/utils"
)

// SupportWriter defines the store operations the support service needs.
type SupportWriter interface {
	Create(*models.SupportMessage) error
}

// SupportCommandService appends messages to a user's support thread.
type SupportCommandService struct {
	writeRepo SupportWriter
}

func NewSupportCommandService(writeRepo SupportWriter) *SupportCommandService {
	return &SupportCommandService{writeRepo: writeRepo}
}

func (s *SupportCommandService) CreateMessage(cmd cqrs.CreateSupportMessageCommand) (*models.SupportMessage, error) {
	message := &models.SupportMessage{
		ID:        utils.GenerateID("sup"),
		UserID:    cmd.UserID,
		AdminID:   cmd.AdminID,
		Message:   cmd.Message,
		Sender:    cmd.Sender,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.writeRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}
