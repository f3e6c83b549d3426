// Package addressservice manages business logic layer of addresses.
package addressservice

import (
	"context"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
)

// Repo provides data access layer interface needed by address service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package addressservice
type Repo interface {
	Get(ctx context.Context, userID int64) (domain.Address, error)
	Save(ctx context.Context, arg domain.Address) (domain.Address, error)
	Delete(ctx context.Context, userID int64) error
}

// Service facilitates address service layer logic.
type Service struct {
	repo Repo
}

// New returns address service struct to manage address bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Get returns the address stored for the given user id.
func (s *Service) Get(ctx context.Context, userID int64) (domain.Address, error) {
	return s.repo.Get(ctx, userID)
}

// Save upserts the address keyed by its user id.
func (s *Service) Save(ctx context.Context, arg domain.Address) (domain.Address, error) {
	return s.repo.Save(ctx, arg)
}

// Delete removes the address stored for the given user id.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}
