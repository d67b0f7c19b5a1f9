package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPaymentTimeout     = 10 * time.Second
	defaultCartLockTTL        = 30 * time.Second
	defaultPaymentCurrency    = "usd"
	defaultPaymentBaseURL     = "https://api.stripe.com"
	defaultAccessTokenTTL     = 24 * time.Hour
	defaultReconcileBatchSize = 200
	defaultReconcileInterval  = 10 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Stores holds one connection per physical data partition.
	Stores StoresConfig `json:"stores" yaml:"stores"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Payment PaymentConfig `json:"payment" yaml:"payment"`

	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	// Redis is optional. Without it the catalog is read uncached, cart locks
	// are process-local and payment submissions are not deduplicated.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for order reference codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Reconcile ReconcileConfig `json:"reconcile" yaml:"reconcile"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoresConfig configures the catalog, identity and transaction stores.
type StoresConfig struct {
	// Driver is "postgres" or "sqlite"; all three stores share it.
	Driver      string      `json:"driver" yaml:"driver"`
	Catalog     StoreConfig `json:"catalog" yaml:"catalog"`
	Identity    StoreConfig `json:"identity" yaml:"identity"`
	Transaction StoreConfig `json:"transaction" yaml:"transaction"`
	Pool        PoolConfig  `json:"pool" yaml:"pool"`
}

type StoreConfig struct {
	DSN string `json:"dsn" yaml:"dsn"`
}

type PoolConfig struct {
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// PaymentConfig defines the payment gateway connection
type PaymentConfig struct {
	SecretKey string        `json:"secretKey" yaml:"secretKey"`
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Currency  string        `json:"currency" yaml:"currency"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// PricingConfig defines order total rules
type PricingConfig struct {
	// ClampTotalAtZero floors the order total at zero when a coupon exceeds the subtotal.
	ClampTotalAtZero bool `json:"clampTotalAtZero" yaml:"clampTotalAtZero"`
}

// RedisConfig defines the shared Redis connection and key lifetimes
type RedisConfig struct {
	Addr            string        `json:"addr" yaml:"addr"`
	Password        string        `json:"password" yaml:"password"`
	DB              int           `json:"db" yaml:"db"`
	CatalogCacheTTL time.Duration `json:"catalogCacheTTL" yaml:"catalogCacheTTL"`
	CartLockTTL     time.Duration `json:"cartLockTTL" yaml:"cartLockTTL"`
	IdempotencyTTL  time.Duration `json:"idempotencyTTL" yaml:"idempotencyTTL"`
}

// PubSubConfig defines configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Kafka brokers, topic and worker consumer group (for kafka provider)
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
	GroupID string   `json:"groupId" yaml:"groupId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ReconcileConfig drives the cross-store consistency sweep in the worker
type ReconcileConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Interval  time.Duration `json:"interval" yaml:"interval"`
	BatchSize int           `json:"batchSize" yaml:"batchSize"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: STORES_CATALOG_DSN -> stores.catalog.dsn, REDIS_CATALOGCACHETTL -> redis.catalogCacheTTL
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Stores.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.validateCartLock(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Payment.Timeout <= 0 {
		cfg.Payment.Timeout = defaultPaymentTimeout
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = defaultPaymentCurrency
	}
	if cfg.Payment.BaseURL == "" {
		cfg.Payment.BaseURL = defaultPaymentBaseURL
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Reconcile.BatchSize <= 0 {
		cfg.Reconcile.BatchSize = defaultReconcileBatchSize
	}
	if cfg.Reconcile.Interval <= 0 {
		cfg.Reconcile.Interval = defaultReconcileInterval
	}
	if cfg.Redis != nil && cfg.Redis.CartLockTTL <= 0 {
		cfg.Redis.CartLockTTL = defaultCartLockTTL
	}
}

// validateCartLock requires the cart lock to outlive a payment. Saving a card
// makes two gateway calls under the lock, each bounded by payment.timeout.
func (c *Config) validateCartLock() error {
	if c.Redis == nil {
		return nil
	}
	if c.Redis.CartLockTTL <= 2*c.Payment.Timeout {
		return errors.Errorf("redis.cartLockTTL (%s) must exceed twice payment.timeout (%s)",
			c.Redis.CartLockTTL, c.Payment.Timeout)
	}

	return nil
}

// Validate checks that every store has a DSN and the driver is supported.
func (s StoresConfig) Validate() error {
	switch s.Driver {
	case "postgres", "sqlite":
	default:
		return errors.Errorf("unsupported stores driver %q", s.Driver)
	}

	for name, store := range map[string]StoreConfig{
		"catalog":     s.Catalog,
		"identity":    s.Identity,
		"transaction": s.Transaction,
	} {
		if strings.TrimSpace(store.DSN) == "" {
			return errors.Errorf("stores.%s.dsn is required", name)
		}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
