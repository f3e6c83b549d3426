package test

import (
	"context"
	"testing"

	"github.com/ColtWarren/Users-Accounts-Application/internal/accountrepo"
	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/internal/transactionrepo"
	"github.com/ColtWarren/Users-Accounts-Application/internal/userrepo"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/dbpkg"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/passpkg"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/randompkg"
)

// SeedUser creates a random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Username(),
		HashedPassword: hashedPassword,
		Name:           randompkg.String(10),
	}

	userRepo := userrepo.NewRepoPGS(tx)
	user, err := userRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedAccountForUser creates an account owned by the given user inside
// a test transaction.
func SeedAccountForUser(t *testing.T, tx dbpkg.SQLInterface, userID int64, name string) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewTxRepoPGS(tx)

	account, err := accountRepo.Create(context.Background(), name)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %v) returned error: %v", name, err)
	}

	if err := accountRepo.AddOwner(context.Background(), userID, account.ID); err != nil {
		t.Fatalf("accountRepo.AddOwner(context.Background(), %v, %v) returned error: %v",
			userID, account.ID, err)
	}

	return account
}

// SeedTransaction creates a transaction inside a test transaction.
func SeedTransaction(t *testing.T, tx dbpkg.SQLInterface, accountID int64, amount, txType string) domain.Transaction {
	t.Helper()

	transactionRepo := transactionrepo.NewRepoPGS(tx)

	transaction, err := transactionRepo.Create(context.Background(), accountID, amount, txType)
	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %v, %v, %v) returned error: %v",
			accountID, amount, txType, err)
	}

	return transaction
}

// SeedTransactions creates random deposits and withdrawals inside a
// test transaction.
func SeedTransactions(t *testing.T, tx dbpkg.SQLInterface, count int, accountID int64) []domain.Transaction {
	t.Helper()

	transactions := make([]domain.Transaction, count)

	for i := range transactions {
		transactions[i] = SeedTransaction(t, tx, accountID,
			randompkg.MoneyAmountBetween(1, 1000), randompkg.TransactionType())
	}

	return transactions
}
