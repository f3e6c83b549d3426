// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"strconv"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/internal/transactionservice"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	CreateForUser(ctx context.Context, userID int64, name string) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Account, error)
	CountForUser(ctx context.Context, userID int64) (int64, error)
	Owners(ctx context.Context, accountID int64) ([]domain.User, error)
	Update(ctx context.Context, id int64, name string) (domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

// Ledger provides the transaction history interface needed to
// compose account views.
type Ledger interface {
	ListForAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo   Repo
	ledger Ledger
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo, ledger Ledger) *Service {
	return &Service{
		repo:   ar,
		ledger: ledger,
	}
}

// CreateForUser creates an account for an existing user and labels it
// "Account #N" where N is the user's account count plus one.
//
// The count-then-name sequence is not serialized across requests, so
// two concurrent creations can produce the same label. The label is
// display only and carries no uniqueness guarantee.
func (s *Service) CreateForUser(ctx context.Context, userID int64) (domain.Account, error) {
	count, err := s.repo.CountForUser(ctx, userID)
	if err != nil {
		return domain.Account{}, err
	}

	name := "Account #" + strconv.FormatInt(count+1, 10)

	account, err := s.repo.CreateForUser(ctx, userID, name)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Get returns the account with owners, ledger (newest first) and the
// computed balance attached.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	owners, err := s.repo.Owners(ctx, id)
	if err != nil {
		return account, err
	}

	transactions, err := s.ledger.ListForAccount(ctx, id)
	if err != nil {
		return account, err
	}

	account.Owners = owners
	account.Transactions = transactions
	account.Balance = transactionservice.Balance(transactions).String()

	return account, nil
}

// ListForUser returns the accounts owned by the given user.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Account, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Update renames the account.
func (s *Service) Update(ctx context.Context, id int64, name string) (domain.Account, error) {
	return s.repo.Update(ctx, id, name)
}

// Delete removes the account unconditionally.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
