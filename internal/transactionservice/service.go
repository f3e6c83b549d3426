// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, accountID int64, amount, txType string) (domain.Transaction, error)
	Get(ctx context.Context, id int64) (domain.Transaction, error)
	ListForAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	Save(ctx context.Context, id int64, amount, txType string) (domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service struct to manage transaction bussines logic.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// Balance folds a ledger into a signed total: deposits credit,
// withdrawals debit, unrecognized type codes are ignored rather than
// rejected. An empty ledger yields zero. The fold is order independent.
func Balance(transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero

	for _, t := range transactions {
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			// Stored amounts always come from the numeric column.
			continue
		}

		switch t.Type {
		case domain.Deposit:
			balance = balance.Add(amount)
		case domain.Withdrawal:
			balance = balance.Sub(amount)
		}
	}

	return balance
}

func validateAmountAndType(ctx context.Context, amount, txType string) error {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return domain.ErrNegativeAmount
	}

	if !domain.IsValidTransactionType(txType) {
		return domain.ErrInvalidTransactionType
	}

	return nil
}

// Create validates and records a transaction against an existing
// account. A missing account yields domain.ErrAccountNotFound and no
// record is created.
func (s *Service) Create(ctx context.Context, accountID int64, amount, txType string) (domain.Transaction, error) {
	if err := validateAmountAndType(ctx, amount, txType); err != nil {
		return domain.Transaction{}, err
	}

	transaction, err := s.repo.Create(ctx, accountID, amount, txType)
	if err != nil {
		return transaction, err
	}

	return transaction, nil
}

// Get returns the transaction with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	return s.repo.Get(ctx, id)
}

// ListForAccount returns the account's ledger, newest first.
func (s *Service) ListForAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	return s.repo.ListForAccount(ctx, accountID)
}

// AccountBalance loads the account's full ledger and folds it into
// the current balance.
func (s *Service) AccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	transactions, err := s.repo.ListForAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return Balance(transactions), nil
}

// Save overwrites a transaction after validating the replacement values.
func (s *Service) Save(ctx context.Context, id int64, amount, txType string) (domain.Transaction, error) {
	if err := validateAmountAndType(ctx, amount, txType); err != nil {
		return domain.Transaction{}, err
	}

	return s.repo.Save(ctx, id, amount, txType)
}

// Delete removes the transaction with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
