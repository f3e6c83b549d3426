package domain

import (
	"errors"
	"time"
)

var (
	// ErrUsernameAlreadyExists indicates that the user with the given username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// User holds user data.
//
// Accounts and Address are populated by the service layer;
// the users table itself stores only the scalar columns.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	Accounts       []Account `json:"accounts,omitempty"`
	Address        *Address  `json:"address,omitempty"`
}

// CreateUserParams is the input data to create a user.
type CreateUserParams struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password"`
	Name           string `json:"name"`
}

// UpdateUserParams is the input data to update a user.
type UpdateUserParams struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}
