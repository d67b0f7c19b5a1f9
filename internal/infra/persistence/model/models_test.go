package model

import (
	"testing"

	"storefront/internal/infra/persistence/dbrouter"

	"github.com/stretchr/testify/assert"
)

func TestAll_RoutesEveryModel(t *testing.T) {
	want := map[string]dbrouter.Store{
		"items":            dbrouter.StoreCatalog,
		"users":            dbrouter.StoreIdentity,
		"user_profiles":    dbrouter.StoreIdentity,
		"addresses":        dbrouter.StoreIdentity,
		"orders":           dbrouter.StoreTransaction,
		"order_items":      dbrouter.StoreTransaction,
		"order_item_links": dbrouter.StoreTransaction,
		"coupons":          dbrouter.StoreTransaction,
		"payments":         dbrouter.StoreTransaction,
		"refunds":          dbrouter.StoreTransaction,
	}

	models := All()
	assert.Len(t, models, len(want))

	for _, m := range models {
		tabler, ok := m.(interface{ TableName() string })
		if !assert.True(t, ok) {
			continue
		}
		assert.Equal(t, want[tabler.TableName()], dbrouter.RouteModel(m), tabler.TableName())
	}
}
