package gormstore_test

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/persistence/gormstore/gormstoretest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsInOwningStore(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	tm := gormstore.NewTransactionManager(stores.Routed())

	var orderID uint
	err := tm.InTransactionStore(ctx, func(repos repository.TransactionRepositoryFactory) error {
		order := &entity.Order{UserID: 1}
		if err := repos.NewOrderRepository().CreateOpenOrder(ctx, order); err != nil {
			return err
		}
		orderID = order.ID

		return nil
	})
	require.NoError(t, err)

	_, err = gormstore.NewOrderRepository(stores.Routed()).FindOrderByID(ctx, orderID)
	assert.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	tm := gormstore.NewTransactionManager(stores.Routed())
	boom := errors.New("boom")

	var userID uint
	err := tm.InIdentityStore(ctx, func(repos repository.IdentityRepositoryFactory) error {
		user := &entity.User{Email: "ann@example.com", PasswordHash: "h"}
		if err := repos.NewUserRepository().CreateUser(ctx, user); err != nil {
			return err
		}
		userID = user.ID

		return boom
	})
	require.ErrorIs(t, err, boom)

	users := gormstore.NewUserRepository(stores.Routed())
	_, err = users.FindUserByID(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = users.FindProfileByUserID(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	tm := gormstore.NewTransactionManager(stores.Routed())

	assert.Panics(t, func() {
		_ = tm.InTransactionStore(ctx, func(repos repository.TransactionRepositoryFactory) error {
			_ = repos.NewOrderRepository().CreateOpenOrder(ctx, &entity.Order{UserID: 1})
			panic("boom")
		})
	})

	open, err := gormstore.NewOrderRepository(stores.Routed()).FindOpenOrders(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, open)
}
