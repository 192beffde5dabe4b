package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"store": map[string]any{
			"autoMigrate": false,
			"breaker": map[string]any{
				"openTimeout": "30s",
			},
		},
		"auth": map[string]any{
			"jwtSecret": "",
		},
		"export": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORE_AUTOMIGRATE", want: "store.autoMigrate"},
		{envKey: "STORE_BREAKER_OPENTIMEOUT", want: "store.breaker.openTimeout"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "EXPORT_BUCKETURL", want: "export.bucketUrl"},
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

	assert.Equal(t, StoreBackendPostgres, cfg.Store.Backend)
	assert.Equal(t, defaultStoreTimeout, cfg.Store.Timeout)
	assert.Equal(t, uint32(5), cfg.Store.Breaker.ConsecutiveFailures)
	assert.Equal(t, AuthProviderJWT, cfg.Auth.Provider)
	assert.Equal(t, "authenticated", cfg.Auth.Audience)
	assert.InDelta(t, 35.6895, cfg.Map.Latitude, 1e-9)
	assert.Equal(t, "mem://", cfg.Export.BucketURL)

	custom := &Config{Store: &StoreConfig{Backend: StoreBackendSupabase, Timeout: time.Second}}
	applyDefaults(custom)
	assert.Equal(t, StoreBackendSupabase, custom.Store.Backend)
	assert.Equal(t, time.Second, custom.Store.Timeout)
}
