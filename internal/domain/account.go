// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
)

// Account holds account data.
//
// Name is a display label only ("Account #N"); it carries no
// uniqueness guarantee. Owners and Transactions are populated by
// the service layer.
type Account struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Owners       []User        `json:"owners,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
	Balance      string        `json:"balance,omitempty"`
}
