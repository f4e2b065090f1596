package command

import (
	"context"
	"log"
	"time"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/events"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/utils"

	"github.com/shopspring/decimal"
)

// AccountWriter defines the write-store operations AccountCommandService needs.
type AccountWriter interface {
	Create(*models.Account) error
	GetByID(id string) (*models.Account, error)
	Update(*models.Account) error
}

// AccountViewCacher keeps the account read model current after mutations.
type AccountViewCacher interface {
	CacheAccountView(ctx context.Context, account *models.Account)
}

// AccountCommandService provisions accounts and applies client-issued
// account updates, including the balance writes that follow transaction
// approval.
type AccountCommandService struct {
	writeRepo AccountWriter
	readRepo  AccountViewCacher
	publisher Publisher
}

func NewAccountCommandService(
	writeRepo AccountWriter,
	readRepo AccountViewCacher,
	publisher Publisher,
) *AccountCommandService {
	return &AccountCommandService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		publisher: publisher,
	}
}

// ProvisionDefaults creates one account per template entry for the user's
// category. Credit cards start frozen; everything starts with a zero balance.
func (s *AccountCommandService) ProvisionDefaults(userID, category string) ([]models.Account, error) {
	ctx := context.Background()
	var provisioned []models.Account

	for _, tpl := range models.DefaultAccountTemplate(category) {
		account := &models.Account{
			ID:            utils.GenerateID("acc"),
			UserID:        userID,
			AccountNumber: utils.GenerateAccountNumber(),
			AccountType:   tpl.Type,
			AccountName:   tpl.Name,
			Balance:       decimal.Zero,
			IsActive:      true,
			IsFrozen:      tpl.Frozen,
			BankID:        utils.GenerateBankID(),
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.writeRepo.Create(account); err != nil {
			return nil, err
		}
		s.readRepo.CacheAccountView(ctx, account)
		if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountProvisioned, events.AccountProvisionedEvent{
			AccountID:     account.ID,
			AccountNumber: account.AccountNumber,
			UserID:        account.UserID,
			AccountType:   account.AccountType,
		}); err != nil {
			log.Printf("Failed to publish account.provisioned event: %v", err)
		}
		provisioned = append(provisioned, *account)
	}
	return provisioned, nil
}

// UpdateAccount merges the provided fields into the account record and
// writes it back. There is no concurrency token and no balance floor; two
// concurrent updates resolve as last-writer-wins. Balance changes arrive
// here as their own call, decoupled from any transaction approval.
func (s *AccountCommandService) UpdateAccount(cmd cqrs.UpdateAccountCommand) (*models.Account, error) {
	account, err := s.writeRepo.GetByID(cmd.AccountID)
	if err != nil {
		return nil, err
	}

	if cmd.AccountName != nil {
		account.AccountName = *cmd.AccountName
	}
	if cmd.Balance != nil {
		account.Balance = *cmd.Balance
	}
	if cmd.IsActive != nil {
		account.IsActive = *cmd.IsActive
	}
	if cmd.IsFrozen != nil {
		account.IsFrozen = *cmd.IsFrozen
	}
	if err := s.writeRepo.Update(account); err != nil {
		return nil, err
	}

	ctx := context.Background()
	s.readRepo.CacheAccountView(ctx, account)
	if cmd.Balance != nil {
		if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
			AccountID:  account.ID,
			UserID:     account.UserID,
			NewBalance: account.Balance.String(),
		}); err != nil {
			log.Printf("Failed to publish balance.updated event: %v", err)
		}
	}
	return account, nil
}
