package gormstore_test

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/dbrouter"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/persistence/gormstore/gormstoretest"
	"storefront/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasTable(t *testing.T, stores *gormstore.Stores, store dbrouter.Store, table string) bool {
	t.Helper()

	return stores.Store(store).Migrator().HasTable(table)
}

func TestMigrate_PlacesTablesByRoute(t *testing.T) {
	stores := gormstoretest.Open(t)

	for _, m := range model.All() {
		table := m.(interface{ TableName() string }).TableName()
		owner := dbrouter.RouteModel(m)

		for _, store := range dbrouter.Stores() {
			assert.Equal(t, store == owner, hasTable(t, stores, store, table), "%s in %s", table, store)
		}
	}
}

func TestMigrate_IsRepeatable(t *testing.T) {
	stores := gormstoretest.Open(t)

	require.NoError(t, gormstore.Migrate(context.Background(), stores, nil))
}

func TestRouted_WritesLandInOwningStore(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()

	items := gormstore.NewItemRepository(stores.Routed())
	require.NoError(t, items.CreateItem(ctx, &entity.Item{
		Title: "Shirt", Price: decimal.NewFromInt(10), Category: entity.CategoryShirt,
		Label: entity.LabelPrimary, Slug: "shirt",
	}))

	var count int64
	require.NoError(t, stores.Store(dbrouter.StoreCatalog).Model(&model.ItemModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	users := gormstore.NewUserRepository(stores.Routed())
	user := &entity.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"}
	require.NoError(t, users.CreateUser(ctx, user))

	require.NoError(t, stores.Store(dbrouter.StoreIdentity).Model(&model.UserModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	orders := gormstore.NewOrderRepository(stores.Routed())
	require.NoError(t, orders.CreateOpenOrder(ctx, &entity.Order{UserID: user.ID}))

	require.NoError(t, stores.Store(dbrouter.StoreTransaction).Model(&model.OrderModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := gormstore.Open(config.StoresConfig{Driver: "mysql"}, nil, false)

	assert.ErrorContains(t, err, "unknown store driver")
}
