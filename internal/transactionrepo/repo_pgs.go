// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/dbpkg"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    transactions (account_id, amount, type)
VALUES
    ($1, $2, $3)
RETURNING id, amount, type, created_at, account_id
`

// Create creates the transaction stamped with the database clock and
// then returns it. A missing account leaves the ledger untouched.
func (r *RepoPGS) Create(ctx context.Context, accountID int64, amount, txType string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, accountID, amount, txType)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Amount,
		&t.Type,
		&t.CreatedAt,
		&t.AccountID,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_account_id_fkey":
				return t, domain.ErrAccountNotFound
			case "transactions_type_check":
				return t, domain.ErrInvalidTransactionType
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT
	id, amount, type, created_at, account_id
FROM transactions
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Amount,
		&t.Type,
		&t.CreatedAt,
		&t.AccountID,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listForAccountQuery = `
SELECT
	id, amount, type, created_at, account_id
FROM transactions
WHERE account_id = $1
ORDER BY created_at DESC, id DESC
`

// ListForAccount returns the full ledger of the given account,
// newest first.
func (r *RepoPGS) ListForAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForAccountQuery, accountID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.Amount,
			&t.Type,
			&t.CreatedAt,
			&t.AccountID,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
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

const saveQuery = `
UPDATE transactions
SET amount = $2, type = $3
WHERE id = $1
RETURNING id, amount, type, created_at, account_id
`

// Save overwrites the transaction's amount and type. There is no
// partial update path.
func (r *RepoPGS) Save(ctx context.Context, id int64, amount, txType string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, saveQuery, id, amount, txType)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Amount,
		&t.Type,
		&t.CreatedAt,
		&t.AccountID,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const deleteQuery = `
DELETE FROM transactions
WHERE id = $1
`

// Delete removes the transaction with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, deleteQuery, id); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
