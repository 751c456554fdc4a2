// Package config carga la configuración del servidor: archivo TOML opcional,
// luego variables de entorno (ganan sobre el archivo). Los flags de la CLI
// se aplican encima desde cmd/api.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath indica un archivo TOML cuando no se pasa --config.
const EnvConfigPath = "PETPAL_CONFIG"

type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Log      Log      `toml:"log"`
	Jobs     Jobs     `toml:"jobs"`
}

type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read-timeout"`
	WriteTimeout Duration `toml:"write-timeout"`
}

type Database struct {
	// Driver: sqlite | postgres
	Driver string `toml:"driver"`
	// DSN: path del archivo SQLite (vacío = memoria) o DSN de Postgres.
	DSN           string   `toml:"dsn"`
	SlowThreshold Duration `toml:"slow-threshold"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	App    string `toml:"app"`
}

type Jobs struct {
	// DailyResetAt "HH:MM" (hora local). Vacío = desactivado.
	DailyResetAt string `toml:"daily-reset-at"`
}

// Duration permite escribir "5s" o "250ms" en el TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{5 * time.Second},
			WriteTimeout: Duration{10 * time.Second},
		},
		Database: Database{
			Driver:        "sqlite",
			DSN:           "",
			SlowThreshold: Duration{time.Second},
		},
		Log: Log{
			Level:  "info",
			Format: "text",
			App:    "petpal",
		},
	}
}

// Load lee path (si no es vacío), aplica env y valida.
// Un path explícito que no existe es error; sin path se usan defaults + env.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config file %s: unknown key %q", path, undecoded[0].String())
		}
	}

	applyEnv(&cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	env := func(key string) (string, bool) {
		v := strings.TrimSpace(getenv(key))
		return v, v != ""
	}

	if v, ok := env("PORT"); ok {
		cfg.Server.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v, ok := env("DB_DRIVER"); ok {
		cfg.Database.Driver = v
	}
	if v, ok := env("DB_DSN"); ok {
		cfg.Database.DSN = v
		// Compat: un DSN postgres:// sin DB_DRIVER explícito implica postgres.
		if _, explicit := env("DB_DRIVER"); !explicit && looksLikePostgres(v) {
			cfg.Database.Driver = "postgres"
		}
	}
	if v, ok := env("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := env("LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	if v, ok := env("APP_NAME"); ok {
		cfg.Log.App = v
	}
	if v, ok := env("DAILY_RESET_AT"); ok {
		cfg.Jobs.DailyResetAt = v
	}
}

func looksLikePostgres(dsn string) bool {
	dsn = strings.ToLower(dsn)
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Database.Driver)) {
	case "sqlite", "postgres", "postgresql", "pgx":
	default:
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	if strings.ToLower(c.Database.Driver) != "sqlite" && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("config: database dsn is required for driver %q", c.Database.Driver)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("config: server addr is required")
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 {
		return fmt.Errorf("config: timeouts must not be negative")
	}
	return nil
}
