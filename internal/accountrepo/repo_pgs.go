// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/dbpkg"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns account RepoPGS bound to an existing
// transaction. It cannot start transactions of its own, so
// CreateForUser requires a repo built with NewRepoPGS.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns account RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (name)
VALUES
    ($1)
RETURNING id, name
`

const addOwnerQuery = `
INSERT INTO
    user_account (user_id, account_id)
VALUES
    ($1, $2)
`

// Create inserts a bare account row and returns it.
func (r *RepoPGS) Create(ctx context.Context, name string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, name)

	var a domain.Account

	if err := row.Scan(&a.ID, &a.Name); err != nil {
		l.Error().Err(err).Send()
		return a, errorspkg.ErrInternal
	}

	return a, nil
}

// AddOwner inserts the membership row linking a user to an account.
func (r *RepoPGS) AddOwner(ctx context.Context, userID, accountID int64) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, addOwnerQuery, userID, accountID); err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "user_account_user_id_fkey":
				return domain.ErrUserNotFound
			case "user_account_account_id_fkey":
				return domain.ErrAccountNotFound
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}

// CreateForUser creates an account with the given display name and its
// ownership row for the given user within a single database transaction.
// A missing user rolls the whole transaction back so nothing is created.
func (r *RepoPGS) CreateForUser(ctx context.Context, userID int64, name string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if r.conn == nil {
		l.Error().Msg("CreateForUser called on a transaction-bound repo")
		return domain.Account{}, errorspkg.ErrInternal
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)

	account, err := txRepo.Create(ctx, name)
	if err != nil {
		return domain.Account{}, err
	}

	if err := txRepo.AddOwner(ctx, userID, account.ID); err != nil {
		return domain.Account{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	return account, nil
}

const getQuery = `
SELECT
	id, name
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var a domain.Account

	err := row.Scan(&a.ID, &a.Name)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listForUserQuery = `
SELECT
	a.id, a.name
FROM accounts a
JOIN user_account ua ON ua.account_id = a.id
WHERE ua.user_id = $1
ORDER BY a.id
`

// ListForUser returns the accounts owned by the given user.
func (r *RepoPGS) ListForUser(ctx context.Context, userID int64) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countForUserQuery = `
SELECT count(*)
FROM user_account
WHERE user_id = $1
`

// CountForUser returns the number of accounts the given user owns.
func (r *RepoPGS) CountForUser(ctx context.Context, userID int64) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	if err := r.db.QueryRowContext(ctx, countForUserQuery, userID).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const ownersQuery = `
SELECT
	u.id, u.username, u.hashed_password, u.name, u.created_at
FROM users u
JOIN user_account ua ON ua.user_id = u.id
WHERE ua.account_id = $1
ORDER BY u.id
`

// Owners returns the users that own the given account.
func (r *RepoPGS) Owners(ctx context.Context, accountID int64) ([]domain.User, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, ownersQuery, accountID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.User{}

	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.HashedPassword, &u.Name, &u.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, u)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE accounts
SET name = $2
WHERE id = $1
RETURNING id, name
`

// Update renames the account and returns the updated row.
func (r *RepoPGS) Update(ctx context.Context, id int64, name string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, id, name)

	var a domain.Account

	err := row.Scan(&a.ID, &a.Name)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const deleteQuery = `
DELETE FROM accounts
WHERE id = $1
`

// Delete removes the account with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, deleteQuery, id); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
