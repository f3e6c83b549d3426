// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/errorspkg"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/passpkg"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, name string) (domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// AddressRepo provides the address persistence interface needed by
// user service layer.
type AddressRepo interface {
	Get(ctx context.Context, userID int64) (domain.Address, error)
	Save(ctx context.Context, arg domain.Address) (domain.Address, error)
}

// Accounts provides the account membership interface needed by user
// service layer.
type Accounts interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.Account, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo        Repo
	addressRepo AddressRepo
	accounts    Accounts
}

// New returns user service struct to manage user bussines logic.
func New(ur Repo, ar AddressRepo, accounts Accounts) *Service {
	return &Service{
		repo:        ur,
		addressRepo: ar,
		accounts:    accounts,
	}
}

// Create hashes the given password and persists the user.
func (s *Service) Create(ctx context.Context, username, password, name string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		Username:       username,
		HashedPassword: hashedPassword,
		Name:           name,
	}

	user, err := s.repo.Create(ctx, arg)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Get returns the user with accounts and address attached.
//
// A user without a stored address gets a fresh address keyed to their
// id attached for display only; it is persisted solely through an
// explicit Update.
func (s *Service) Get(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return user, err
	}

	accounts, err := s.accounts.ListForUser(ctx, id)
	if err != nil {
		return user, err
	}

	user.Accounts = accounts

	address, err := s.addressRepo.Get(ctx, id)
	switch {
	case err == nil:
		user.Address = &address
	case errors.Is(err, domain.ErrAddressNotFound):
		user.Address = &domain.Address{UserID: id}
	default:
		return user, err
	}

	return user, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Update persists the user's mutable fields and, when an address is
// supplied, saves it keyed to the user's id. This is the only path
// that persists an address.
func (s *Service) Update(ctx context.Context, arg domain.UpdateUserParams) (domain.User, error) {
	user, err := s.repo.Update(ctx, arg.ID, arg.Name)
	if err != nil {
		return user, err
	}

	if arg.Address != nil {
		arg.Address.UserID = arg.ID

		address, err := s.addressRepo.Save(ctx, *arg.Address)
		if err != nil {
			return user, err
		}

		user.Address = &address
	}

	return user, nil
}

// Delete removes the user unconditionally. Account memberships and the
// address go with the user; co-owned accounts stay intact for their
// remaining owners.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
