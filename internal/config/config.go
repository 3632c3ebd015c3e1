// Package config loads engine tuning and storage settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/yinpa-bot/yinpa/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "YINPA_"

// Storage backends
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config is the full process configuration
type Config struct {
	Tuning  Tuning
	Storage Storage
	Verbose bool `env:"VERBOSE" envDefault:"false"`
}

// Tuning holds the numeric rules of the game economy
type Tuning struct {
	MaxHP          int           `env:"MAX_HP" envDefault:"1000"`
	MinHP          int           `env:"MIN_HP" envDefault:"-1000"`
	CostPerAction  int           `env:"SPEND_HP_PER_ACTION" envDefault:"150"`
	HPRecoveryUnit time.Duration `env:"HP_RECOVERY_UNIT" envDefault:"5s"`
	MinPersistence float64       `env:"MIN_PERSISTENCE" envDefault:"2.5"`

	SensitivityPerAction         float64 `env:"ADD_SENSITIVE_PER_ACTION" envDefault:"0.02"`
	StrengthSensitivityPerAction float64 `env:"ADD_STRENGTH_SENSITIVE_PER_ACTION" envDefault:"2"`
	SensitivityDemarcation       int     `env:"SENSITIVE_DEMARCATION" envDefault:"200"`

	OverdraftPersistencePenalty float64 `env:"OVERDRAFT_PERSISTENCE_PENALTY" envDefault:"1.5"`
	OverdraftLengthPenalty      float64 `env:"OVERDRAFT_LENGTH_PENALTY" envDefault:"0.1"`

	SoloLengthBase      float64 `env:"SOLO_ADD_LENGTH" envDefault:"0.3"`
	SoloChestBase       float64 `env:"SOLO_ADD_CHEST" envDefault:"0.05"`
	SoloSensitivityBase float64 `env:"SOLO_ADD_SENSITIVE" envDefault:"1.5"`
	SoloMagnification   float64 `env:"SOLO_MAX_MAGNIFICATION" envDefault:"4"`

	SnatchLengthBase          float64 `env:"SNATCH_LENGTH_BASE" envDefault:"1.0"`
	SnatchLengthMagnification float64 `env:"SNATCH_LENGTH_MAGNIFICATION" envDefault:"4"`
	SnatchChestBase           float64 `env:"SNATCH_CHEST_BASE" envDefault:"0.25"`
	SnatchChestMagnification  float64 `env:"SNATCH_CHEST_MAGNIFICATION" envDefault:"4"`

	RollLengthMagnitude float64 `env:"ROLL_LENGTH_BASE" envDefault:"2.0"`
	RollChestMagnitude  float64 `env:"ROLL_CHEST_BASE" envDefault:"1.5"`

	MaxNameLength int      `env:"MAX_NAME_LENGTH" envDefault:"15"`
	ReservedNames []string `env:"RESERVED_NAMES" envDefault:"群主,管理" envSeparator:","`
	CurrencyName  string   `env:"CURRENCY_NAME" envDefault:"CS点数"`
}

// Storage selects and configures the persistence backend
type Storage struct {
	Backend         string        `env:"STORE" envDefault:"sqlite"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPoolSize   int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMaxRetries int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	RedisIdleTime   time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	RedisUseTLS     bool          `env:"REDIS_TLS" envDefault:"false"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"yinpa.db"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom parses an explicit variable map instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultTuning returns the built-in tuning values
func DefaultTuning() Tuning {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		panic("config: built-in defaults are invalid: " + err.Error())
	}
	return cfg.Tuning
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if err := c.Tuning.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}

// Validate rejects tuning values the engine cannot run with
func (t *Tuning) Validate() error {
	vb := errors.NewValidationBuilder()

	if t.MaxHP <= 0 {
		vb.Fieldf("MaxHP", "must be positive, got %d", t.MaxHP)
	}
	if t.MinHP > 0 {
		vb.Fieldf("MinHP", "must not be positive, got %d", t.MinHP)
	}
	errors.ValidatePositive("CostPerAction", t.CostPerAction, vb)
	if t.HPRecoveryUnit <= 0 {
		vb.Fieldf("HPRecoveryUnit", "must be positive, got %s", t.HPRecoveryUnit)
	}
	if t.SensitivityDemarcation <= 0 {
		vb.Fieldf("SensitivityDemarcation", "must be positive, got %d", t.SensitivityDemarcation)
	}
	errors.ValidatePositive("MaxNameLength", t.MaxNameLength, vb)
	for _, m := range []struct {
		field string
		value float64
	}{
		{"SoloMagnification", t.SoloMagnification},
		{"SnatchLengthMagnification", t.SnatchLengthMagnification},
		{"SnatchChestMagnification", t.SnatchChestMagnification},
	} {
		if m.value < 1 {
			vb.Fieldf(m.field, "must be at least 1, got %v", m.value)
		}
	}

	return vb.Build()
}

// Validate checks the backend selection
func (s *Storage) Validate() error {
	vb := errors.NewValidationBuilder()

	switch s.Backend {
	case BackendRedis:
		errors.ValidateRequired("RedisAddr", s.RedisAddr, vb)
	case BackendSQLite:
		errors.ValidateRequired("SQLitePath", s.SQLitePath, vb)
	default:
		vb.Fieldf("Backend", "must be %q or %q, got %q", BackendRedis, BackendSQLite, s.Backend)
	}

	return vb.Build()
}
