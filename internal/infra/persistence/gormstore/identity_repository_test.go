package gormstore_test

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/persistence/gormstore/gormstoretest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateUserCreatesProfile(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewUserRepository(stores.Routed())

	user := &entity.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(ctx, user))
	require.NotZero(t, user.ID)

	profile, err := repo.FindProfileByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.False(t, profile.HasSavedCard())

	found, err := repo.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewUserRepository(stores.Routed())

	require.NoError(t, repo.CreateUser(ctx, &entity.User{Email: "ann@example.com", PasswordHash: "h"}))

	err := repo.CreateUser(ctx, &entity.User{Email: "ann@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewUserRepository(stores.Routed())

	user := &entity.User{Email: "ann@example.com", PasswordHash: "h"}
	require.NoError(t, repo.CreateUser(ctx, user))

	require.NoError(t, repo.UpdateProfile(ctx, &entity.UserProfile{
		UserID:             user.ID,
		PaymentCustomerRef: "cus_123",
		OneClickPurchasing: true,
	}))

	profile, err := repo.FindProfileByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "cus_123", profile.PaymentCustomerRef)
	assert.True(t, profile.OneClickPurchasing)

	err = repo.UpdateProfile(ctx, &entity.UserProfile{UserID: 999})
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestAddressRepository_OneDefaultPerUserAndType(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewAddressRepository(stores.Routed())

	first := &entity.Address{UserID: 1, StreetAddress: "1 Main", Country: "US", Zip: "1", Type: entity.AddressTypeShipping, IsDefault: true}
	require.NoError(t, repo.CreateAddress(ctx, first))

	second := &entity.Address{UserID: 1, StreetAddress: "2 Main", Country: "US", Zip: "2", Type: entity.AddressTypeShipping, IsDefault: true}
	assert.ErrorIs(t, repo.CreateAddress(ctx, second), repository.ErrDuplicateDefaultAddress)

	billing := &entity.Address{UserID: 1, StreetAddress: "1 Main", Country: "US", Zip: "1", Type: entity.AddressTypeBilling, IsDefault: true}
	require.NoError(t, repo.CreateAddress(ctx, billing))

	require.NoError(t, repo.ClearDefault(ctx, 1, entity.AddressTypeShipping))
	require.NoError(t, repo.CreateAddress(ctx, second))

	def, err := repo.FindDefaultAddress(ctx, 1, entity.AddressTypeShipping)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)
}

func TestAddressRepository_DeleteAndExisting(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewAddressRepository(stores.Routed())

	a := &entity.Address{UserID: 1, StreetAddress: "1 Main", Country: "US", Zip: "1", Type: entity.AddressTypeShipping}
	b := &entity.Address{UserID: 1, StreetAddress: "1 Main", Country: "US", Zip: "1", Type: entity.AddressTypeBilling}
	require.NoError(t, repo.CreateAddress(ctx, a))
	require.NoError(t, repo.CreateAddress(ctx, b))

	require.NoError(t, repo.DeleteAddresses(ctx, []uint{a.ID}))

	existing, err := repo.FindExistingAddressIDs(ctx, []uint{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, existing)

	_, err = repo.FindAddressByID(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}
