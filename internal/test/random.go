// Package test provides shared test helpers.
package test

import (
	"time"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/randompkg"
)

// RandomUser returns a random user.
func RandomUser() domain.User {
	return domain.User{
		ID:        randompkg.Int64Between(1, 100),
		Username:  randompkg.Username(),
		Name:      randompkg.String(10),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomAccount returns a random account with the given id-less owner attached.
func RandomAccount(owner domain.User) domain.Account {
	return domain.Account{
		ID:     randompkg.Int64Between(1, 100),
		Name:   "Account #1",
		Owners: []domain.User{owner},
	}
}

// RandomTransaction returns a random transaction against the given account.
func RandomTransaction(accountID int64) domain.Transaction {
	return domain.Transaction{
		ID:        randompkg.Int64Between(1, 100),
		Amount:    randompkg.MoneyAmountBetween(1, 1000),
		Type:      randompkg.TransactionType(),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
		AccountID: accountID,
	}
}

// RandomAddress returns a random address for the given user id.
func RandomAddress(userID int64) domain.Address {
	return domain.Address{
		UserID:         userID,
		AddressLineOne: randompkg.String(12),
		City:           randompkg.String(8),
		Region:         randompkg.String(8),
		Country:        randompkg.String(8),
		ZipCode:        randompkg.String(5),
	}
}
