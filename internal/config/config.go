package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Gonga3/study-planner/internal/planner"
	"github.com/Gonga3/study-planner/internal/storage"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "STUDYPLANNER_CONFIG"

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	Storage  StorageConfig  `toml:"storage" yaml:"storage"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Schedule ScheduleConfig `toml:"schedule" yaml:"schedule"`
}

type StorageConfig struct {
	Backend string `toml:"backend" yaml:"backend" validate:"oneof=json sqlite"`
	// Path of the JSON document or the SQLite database. Empty means the
	// backend's default under the data directory.
	Path string `toml:"path" yaml:"path"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" yaml:"format" validate:"oneof=text json"`
}

type ScheduleConfig struct {
	// EvenWeekAnchor is the ISO date of any day in an even week.
	EvenWeekAnchor string `toml:"even_week_anchor" yaml:"even_week_anchor" validate:"omitempty,datetime=2006-01-02"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendJSON},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
}

// ResolvePath returns the config file location.
func ResolvePath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "studyplanner", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields Default.
// The format follows the extension: .yaml/.yml is YAML, anything else TOML.
// Environment variables written as ${VAR} are expanded first.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal([]byte(expanded), cfg)
	default:
		_, err = toml.Decode(expanded, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with the variable's value, or "" when unset.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// DataPath returns the storage path, filling in the backend default.
func (c *Config) DataPath() (string, error) {
	if c.Storage.Path != "" {
		return expandHome(c.Storage.Path)
	}
	dir, err := storage.DefaultDataDir()
	if err != nil {
		return "", err
	}
	if c.Storage.Backend == BackendSQLite {
		return filepath.Join(dir, "planner.db"), nil
	}
	return filepath.Join(dir, "study_data.json"), nil
}

// EvenWeekAnchor parses the schedule anchor. ok is false when none is set.
func (c *Config) EvenWeekAnchor() (t time.Time, ok bool, err error) {
	if c.Schedule.EvenWeekAnchor == "" {
		return time.Time{}, false, nil
	}
	t, err = time.ParseInLocation(planner.ISODate, c.Schedule.EvenWeekAnchor, time.Local)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse even_week_anchor: %w", err)
	}
	return t, true, nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
