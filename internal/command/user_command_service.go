package command

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/events"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/utils"
)

// Publisher is the write-side event sink shared by every command service.
type Publisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// UserWriter defines the write-store operations UserCommandService needs.
type UserWriter interface {
	Create(*models.User) error
	GetByID(id string) (*models.User, error)
	Update(*models.User) error
}

// UserViewCacher keeps the read model current after mutations.
type UserViewCacher interface {
	CacheUserView(ctx context.Context, view *models.UserView)
}

// AccountProvisioner creates the default account set for a newly approved user.
type AccountProvisioner interface {
	ProvisionDefaults(userID, category string) ([]models.Account, error)
}

// UserCommandService owns registration, approval and moderation of users,
// writing user state and keeping the read model up to date.
type UserCommandService struct {
	writeRepo UserWriter
	readRepo  UserViewCacher
	accounts  AccountProvisioner
	publisher Publisher

	// Registering this username yields an auto-approved admin. Everyone
	// else waits in the moderation queue.
	adminUsername string
}

func NewUserCommandService(
	writeRepo UserWriter,
	readRepo UserViewCacher,
	accounts AccountProvisioner,
	publisher Publisher,
	adminUsername string,
) *UserCommandService {
	return &UserCommandService{
		writeRepo:     writeRepo,
		readRepo:      readRepo,
		accounts:      accounts,
		publisher:     publisher,
		adminUsername: adminUsername,
	}
}

// Register creates an unapproved user. The reserved admin username is the
// bootstrap exception: it registers approved, with the admin role, and its
// default accounts are provisioned immediately.
func (s *UserCommandService) Register(cmd cqrs.RegisterUserCommand) (*models.User, error) {
	passwordHash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	isAdmin := cmd.Username == s.adminUsername
	role := models.RoleCustomer
	if isAdmin {
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:           utils.GenerateID("usr"),
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: passwordHash,
		DateOfBirth:  cmd.DateOfBirth,
		IDCardURL:    cmd.IDCardURL,
		Category:     cmd.Category,
		Role:         role,
		IsApproved:   isAdmin,
		IsBanned:     false,
		PIN:          cmd.PIN,
		BankID:       utils.GenerateBankID(),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.writeRepo.Create(user); err != nil {
		return nil, err
	}

	ctx := context.Background()
	s.readRepo.CacheUserView(ctx, user.ToView())

	if user.IsApproved {
		if _, err := s.accounts.ProvisionDefaults(user.ID, user.Category); err != nil {
			return nil, err
		}
	}

	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserRegistered, events.UserRegisteredEvent{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Category: user.Category,
	}); err != nil {
		log.Printf("Failed to publish user.registered event: %v", err)
	}
	return user, nil
}

// Approve marks a user approved and provisions their default account set.
// Approving an already-approved user is a no-op: the original flow would
// re-provision a duplicate set, which is a bug, not a behaviour worth keeping.
func (s *UserCommandService) Approve(cmd cqrs.ApproveUserCommand) (*models.UserView, error) {
	user, err := s.writeRepo.GetByID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsApproved {
		return user.ToView(), nil
	}

	user.IsApproved = true
	user.UpdatedAt = time.Now().UTC()
	if err := s.writeRepo.Update(user); err != nil {
		return nil, err
	}
	if _, err := s.accounts.ProvisionDefaults(user.ID, user.Category); err != nil {
		return nil, err
	}

	view := user.ToView()
	ctx := context.Background()
	s.readRepo.CacheUserView(ctx, view)
	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserApproved, events.UserApprovedEvent{
		UserID:  user.ID,
		AdminID: cmd.AdminID,
	}); err != nil {
		log.Printf("Failed to publish user.approved event: %v", err)
	}
	return view, nil
}

// Ban blocks future logins. Existing sessions and accounts are untouched.
func (s *UserCommandService) Ban(cmd cqrs.BanUserCommand) (*models.UserView, error) {
	user, err := s.writeRepo.GetByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	user.IsBanned = true
	user.UpdatedAt = time.Now().UTC()
	if err := s.writeRepo.Update(user); err != nil {
		return nil, err
	}

	view := user.ToView()
	ctx := context.Background()
	s.readRepo.CacheUserView(ctx, view)
	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserBanned, events.UserBannedEvent{
		UserID:  user.ID,
		AdminID: cmd.AdminID,
	}); err != nil {
		log.Printf("Failed to publish user.banned event: %v", err)
	}
	return view, nil
}

// UpdateUser applies a self-service profile update. Only the provided
// fields change.
func (s *UserCommandService) UpdateUser(cmd cqrs.UpdateUserCommand) (*models.UserView, error) {
	user, err := s.writeRepo.GetByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != "" {
		user.Email = cmd.Email
	}
	if cmd.IDCardURL != "" {
		user.IDCardURL = cmd.IDCardURL
	}
	if cmd.PIN != "" {
		user.PIN = cmd.PIN
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.writeRepo.Update(user); err != nil {
		return nil, err
	}

	view := user.ToView()
	s.readRepo.CacheUserView(context.Background(), view)
	return view, nil
}
