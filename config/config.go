package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultStoreTimeout       = 10 * time.Second
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Store selects and tunes the remote pin store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	// Supabase project used by the supabase store backend and auth provider
	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Map holds the initial viewport of new map sessions
	Map *MapConfig `json:"map" yaml:"map"`

	// Export configures GeoJSON snapshot uploads
	Export *ExportConfig `json:"export" yaml:"export"`
}

const (
	StoreBackendPostgres = "postgres"
	StoreBackendSupabase = "supabase"

	AuthProviderJWT      = "jwt"
	AuthProviderSupabase = "supabase"
)

// StoreConfig defines the remote pin store configuration
type StoreConfig struct {
	// Backend is "postgres" or "supabase"
	Backend string `json:"backend" yaml:"backend"`

	// Timeout bounds every store call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// AutoMigrate creates the pins table on startup (postgres backend only)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig defines the circuit breaker in front of the store
type BreakerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// ConsecutiveFailures trips the breaker open
	ConsecutiveFailures uint32 `json:"consecutiveFailures" yaml:"consecutiveFailures"`

	// MaxRequests allowed through while half-open
	MaxRequests uint32 `json:"maxRequests" yaml:"maxRequests"`

	// Interval clears the closed-state counts; zero never clears them
	Interval time.Duration `json:"interval" yaml:"interval"`

	// OpenTimeout is how long the breaker stays open before probing
	OpenTimeout time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// SupabaseConfig defines the Supabase project connection
type SupabaseConfig struct {
	URL string `json:"url" yaml:"url"`
	Key string `json:"key" yaml:"key"`
}

// AuthConfig defines how bearer tokens are verified
type AuthConfig struct {
	// Provider is "jwt" (local HS256 verification) or "supabase" (remote GetUser)
	Provider  string `json:"provider" yaml:"provider"`
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
	Audience  string `json:"audience" yaml:"audience"`
	Issuer    string `json:"issuer" yaml:"issuer"`
}

// MapConfig defines the default map viewport
type MapConfig struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Zoom      float64 `json:"zoom" yaml:"zoom"`
}

// ExportConfig defines where GeoJSON snapshots are written
type ExportConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/pinmap/exports or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = StoreBackendPostgres
	}
	if cfg.Store.Timeout <= 0 {
		cfg.Store.Timeout = defaultStoreTimeout
	}
	if cfg.Store.Breaker.ConsecutiveFailures == 0 {
		cfg.Store.Breaker.ConsecutiveFailures = 5
	}
	if cfg.Store.Breaker.MaxRequests == 0 {
		cfg.Store.Breaker.MaxRequests = 1
	}
	if cfg.Store.Breaker.OpenTimeout <= 0 {
		cfg.Store.Breaker.OpenTimeout = 30 * time.Second
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = AuthProviderJWT
	}
	if cfg.Auth.Audience == "" {
		cfg.Auth.Audience = "authenticated"
	}

	if cfg.Map == nil {
		// Tokyo
		cfg.Map = &MapConfig{Latitude: 35.6895, Longitude: 139.6917, Zoom: 12}
	}

	if cfg.Export == nil {
		cfg.Export = &ExportConfig{BucketURL: "mem://"}
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
