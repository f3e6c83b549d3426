//go:build integration

package addressrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ColtWarren/Users-Accounts-Application/internal/addressrepo"
	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/internal/test"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/configpkg"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/dbpkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestSave(t *testing.T) {
	testCases := []struct {
		name        string
		wantAddress func(tx *sql.Tx) domain.Address
		wantErr     error
	}{
		{
			name: "Insert",
			wantAddress: func(tx *sql.Tx) domain.Address {
				user := test.SeedUser(t, tx)
				return test.RandomAddress(user.ID)
			},
		},
		{
			name: "UpsertOverwrites",
			wantAddress: func(tx *sql.Tx) domain.Address {
				user := test.SeedUser(t, tx)

				addressRepo := addressrepo.NewRepoPGS(tx)
				if _, err := addressRepo.Save(context.Background(), test.RandomAddress(user.ID)); err != nil {
					t.Fatalf("addressRepo.Save() seeding returned error: %v", err)
				}

				return test.RandomAddress(user.ID)
			},
		},
		{
			name: "ConstraintViolation:users_address_user_id_fkey",
			wantAddress: func(tx *sql.Tx) domain.Address {
				return test.RandomAddress(-100500)
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := dbpkg.SetupTX(t, dbDriver, dbSource)
			want := tc.wantAddress(tx)
			addressRepo := addressrepo.NewRepoPGS(tx)

			got, err := addressRepo.Save(context.Background(), want)
			if err != nil {
				if err == tc.wantErr {
					return
				}

				t.Fatalf(`addressRepo.Save(context.Background(), %+v) returned error: %v`, want, err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf(`addressRepo.Save(context.Background(), %+v) returned unexpected difference (-want +got):\n%s`,
					want, diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name        string
		wantAddress func(tx *sql.Tx) domain.Address
		wantErr     error
	}{
		{
			name: "OK",
			wantAddress: func(tx *sql.Tx) domain.Address {
				user := test.SeedUser(t, tx)

				addressRepo := addressrepo.NewRepoPGS(tx)
				stored, err := addressRepo.Save(context.Background(), test.RandomAddress(user.ID))
				if err != nil {
					t.Fatalf("addressRepo.Save() seeding returned error: %v", err)
				}

				return stored
			},
		},
		{
			name: "ErrAddressNotFound",
			wantAddress: func(tx *sql.Tx) domain.Address {
				user := test.SeedUser(t, tx)
				return domain.Address{UserID: user.ID}
			},
			wantErr: domain.ErrAddressNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := dbpkg.SetupTX(t, dbDriver, dbSource)
			want := tc.wantAddress(tx)
			addressRepo := addressrepo.NewRepoPGS(tx)

			got, err := addressRepo.Get(context.Background(), want.UserID)
			if err != nil {
				if err == tc.wantErr {
					return
				}

				t.Errorf(`addressRepo.Get(context.Background(), %v) returned unexpected error: %v`, want.UserID, err)
				return
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf(`addressRepo.Get(context.Background(), %v) returned unexpected difference (-want +got):\n%s`,
					want.UserID, diff)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user := test.SeedUser(t, tx)
	addressRepo := addressrepo.NewRepoPGS(tx)

	if _, err := addressRepo.Save(context.Background(), test.RandomAddress(user.ID)); err != nil {
		t.Fatalf("addressRepo.Save() seeding returned error: %v", err)
	}

	if err := addressRepo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf(`addressRepo.Delete(context.Background(), %v) returned error: %v`, user.ID, err)
	}

	if _, err := addressRepo.Get(context.Background(), user.ID); err != domain.ErrAddressNotFound {
		t.Errorf("addressRepo.Get() after delete returned %v, want %v", err, domain.ErrAddressNotFound)
	}
}
