// Package addressrepo manages repository layer of user addresses.
package addressrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/dbpkg"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/errorspkg"
)

// RepoPGS facilitates address repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns address RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT
	user_id, address_line_one, address_line_two, city, region, country, zip_code
FROM users_address
WHERE user_id = $1
`

// Get returns the address stored for the given user id.
func (r *RepoPGS) Get(ctx context.Context, userID int64) (domain.Address, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, userID)

	var a domain.Address

	err := row.Scan(
		&a.UserID,
		&a.AddressLineOne,
		&a.AddressLineTwo,
		&a.City,
		&a.Region,
		&a.Country,
		&a.ZipCode,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAddressNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const saveQuery = `
INSERT INTO users_address (
    user_id, address_line_one, address_line_two, city, region, country, zip_code
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
)
ON CONFLICT (user_id) DO UPDATE SET
    address_line_one = EXCLUDED.address_line_one,
    address_line_two = EXCLUDED.address_line_two,
    city = EXCLUDED.city,
    region = EXCLUDED.region,
    country = EXCLUDED.country,
    zip_code = EXCLUDED.zip_code
RETURNING user_id, address_line_one, address_line_two, city, region, country, zip_code
`

// Save upserts the address keyed by its user id and returns the stored row.
func (r *RepoPGS) Save(ctx context.Context, arg domain.Address) (domain.Address, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, saveQuery,
		arg.UserID,
		arg.AddressLineOne,
		arg.AddressLineTwo,
		arg.City,
		arg.Region,
		arg.Country,
		arg.ZipCode,
	)

	var a domain.Address

	err := row.Scan(
		&a.UserID,
		&a.AddressLineOne,
		&a.AddressLineTwo,
		&a.City,
		&a.Region,
		&a.Country,
		&a.ZipCode,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "users_address_user_id_fkey" {
				return a, domain.ErrUserNotFound
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const deleteQuery = `
DELETE FROM users_address
WHERE user_id = $1
`

// Delete removes the address stored for the given user id.
func (r *RepoPGS) Delete(ctx context.Context, userID int64) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, deleteQuery, userID); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
