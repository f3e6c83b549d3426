package domain

import (
	"errors"
	"time"
)

const (
	// Deposit is the type code that credits an account's balance.
	Deposit = "D"
	// Withdrawal is the type code that debits an account's balance.
	Withdrawal = "W"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidTransactionType indicates an unrecognized type code.
	ErrInvalidTransactionType = errors.New("transaction type must be D or W")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates negative or zero amount.
	ErrNegativeAmount = errors.New("amount must be positive")
)

// Transaction holds a single ledger record for an account.
// Transactions are immutable once created; Save overwrites in full.
type Transaction struct {
	ID        int64     `json:"id"`
	Amount    string    `json:"amount"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	AccountID int64     `json:"account_id"`
}

// IsValidTransactionType reports whether the given type code belongs
// to the closed set of recognized codes.
func IsValidTransactionType(t string) bool {
	return t == Deposit || t == Withdrawal
}
