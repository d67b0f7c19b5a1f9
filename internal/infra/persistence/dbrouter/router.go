// Package dbrouter decides which physical store owns each persistence model.
// Every function here is pure: the answer depends only on the model metadata.
package dbrouter

import "slices"

// Store names one physical data partition.
type Store string

const (
	StoreCatalog     Store = "catalog"
	StoreIdentity    Store = "identity"
	StoreTransaction Store = "transaction"
)

// Stores returns every store in a stable order.
func Stores() []Store {
	return []Store{StoreCatalog, StoreIdentity, StoreTransaction}
}

// Meta is the routing metadata of a model: the application it belongs to
// and its lower-case model name.
type Meta struct {
	App   string
	Model string
}

// Routable is implemented by persistence models that carry routing metadata.
type Routable interface {
	RouteMeta() Meta
}

const appCore = "core"

var identityApps = []string{
	"auth",
	"admin",
	"sessions",
	"contenttypes",
	"account",
	"sites",
	"address",
	"userprofile",
	"messages",
}

var transactionModels = []string{
	"order",
	"orderitem",
	"orderitems",
	"payment",
	"coupon",
	"refund",
}

// Route returns the store that owns reads, writes and migrations for meta.
// Rules are evaluated in order and unmatched models fall back to identity.
func Route(meta Meta) Store {
	switch {
	case meta.Model == "user", meta.Model == "userprofile", meta.Model == "address",
		slices.Contains(identityApps, meta.App):
		return StoreIdentity
	case meta.App == appCore && meta.Model == "item":
		return StoreCatalog
	case meta.App == appCore && slices.Contains(transactionModels, meta.Model):
		return StoreTransaction
	default:
		return StoreIdentity
	}
}

// RouteModel routes a model value. Values without routing metadata go to identity.
func RouteModel(m any) Store {
	if r, ok := m.(Routable); ok {
		return Route(r.RouteMeta())
	}

	return StoreIdentity
}

// AllowMigrate reports whether m's table belongs in store's schema.
func AllowMigrate(store Store, m any) bool {
	return RouteModel(m) == store
}

// Partition groups models by owning store. Every store is present in the result.
func Partition(models ...any) map[Store][]any {
	out := make(map[Store][]any, len(Stores()))
	for _, s := range Stores() {
		out[s] = nil
	}
	for _, m := range models {
		s := RouteModel(m)
		out[s] = append(out[s], m)
	}

	return out
}
