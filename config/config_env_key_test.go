package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"stores": map[string]any{
			"driver": "postgres",
			"catalog": map[string]any{
				"dsn": "",
			},
			"pool": map[string]any{
				"maxOpenConns": 10,
			},
		},
		"redis": map[string]any{
			"catalogCacheTTL": "10m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORES_CATALOG_DSN", want: "stores.catalog.dsn"},
		{envKey: "STORES_POOL_MAXOPENCONNS", want: "stores.pool.maxOpenConns"},
		{envKey: "REDIS_CATALOGCACHETTL", want: "redis.catalogCacheTTL"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Equal(t, defaultPaymentBaseURL, cfg.Payment.BaseURL)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultReconcileBatchSize, cfg.Reconcile.BatchSize)
	assert.False(t, cfg.Pricing.ClampTotalAtZero)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Payment.Timeout = 3 * time.Second
	cfg.Payment.Currency = "eur"
	applyDefaults(cfg)

	assert.Equal(t, 3*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, "eur", cfg.Payment.Currency)
}

func TestStoresConfig_Validate(t *testing.T) {
	valid := StoresConfig{
		Driver:      "sqlite",
		Catalog:     StoreConfig{DSN: "catalog.db"},
		Identity:    StoreConfig{DSN: "identity.db"},
		Transaction: StoreConfig{DSN: "transaction.db"},
	}

	tests := []struct {
		name    string
		mutate  func(*StoresConfig)
		wantErr string
	}{
		{name: "valid sqlite", mutate: func(*StoresConfig) {}},
		{name: "valid postgres", mutate: func(s *StoresConfig) { s.Driver = "postgres" }},
		{name: "unknown driver", mutate: func(s *StoresConfig) { s.Driver = "mysql" }, wantErr: "unsupported stores driver"},
		{name: "missing identity dsn", mutate: func(s *StoresConfig) { s.Identity.DSN = " " }, wantErr: "stores.identity.dsn is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := valid
			tt.mutate(&stores)

			err := stores.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyDefaults_CartLockTTL(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{}}
	applyDefaults(cfg)

	assert.Equal(t, defaultCartLockTTL, cfg.Redis.CartLockTTL)
	require.NoError(t, cfg.validateCartLock())
}

func TestConfig_ValidateCartLock(t *testing.T) {
	tests := []struct {
		name    string
		redis   *RedisConfig
		timeout time.Duration
		wantErr bool
	}{
		{name: "no redis", redis: nil, timeout: 10 * time.Second},
		{name: "lock outlives payment", redis: &RedisConfig{CartLockTTL: 30 * time.Second}, timeout: 10 * time.Second},
		{name: "lock shorter than payment", redis: &RedisConfig{CartLockTTL: 5 * time.Second}, timeout: 10 * time.Second, wantErr: true},
		{name: "lock equal to two gateway calls", redis: &RedisConfig{CartLockTTL: 20 * time.Second}, timeout: 10 * time.Second, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Redis: tt.redis}
			cfg.Payment.Timeout = tt.timeout

			err := cfg.validateCartLock()
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "redis.cartLockTTL")
		})
	}
}
