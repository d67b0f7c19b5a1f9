// Package constants holds string values shared between config and the domain.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Order event types
const (
	EventOrderAddressesSet = "order.addresses_set"
	EventOrderPaid         = "order.paid"
	EventRefundRequested   = "refund.requested"
	EventOrderDelivery     = "order.delivery_updated"
)

// Payment options accepted at checkout
const (
	PaymentOptionStripe = "stripe"
	PaymentOptionPaypal = "paypal"
)

// ItemsPerPage is the catalog page size.
const ItemsPerPage = 10

// MaxCatalogPage caps the requested page so the row offset stays in range.
const MaxCatalogPage = 100_000
