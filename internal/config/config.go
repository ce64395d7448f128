package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arnavshah/team-scheduler/pkg/store"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultEnvPaths are tried in order; the first existing file is loaded
var DefaultEnvPaths = []string{".env", "../.env", "../../.env"}

// Config holds application configuration loaded from environment variables
type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	LogFormat     string
	DatabaseURL   string
	DataPath      string
	UsageTracking bool
	SeedFile      string
}

// Roster is the layout of the optional seed file
type Roster struct {
	Users []store.SeedUser `yaml:"users" validate:"required,min=1,dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadEnvFile loads the first existing file of paths into the environment.
// Variables already set are not overridden.
func LoadEnvFile(paths ...string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				return "", fmt.Errorf("failed to load %s: %w", p, err)
			}
			return p, nil
		}
	}
	return "", nil
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "8000"),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:     getEnvWithDefault("LOG_FORMAT", "json"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DataPath:      strings.TrimSpace(os.Getenv("DATA_PATH")),
		UsageTracking: true,
		SeedFile:      strings.TrimSpace(os.Getenv("SEED_FILE")),
	}

	invalid := make([]string, 0, 2)

	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		invalid = append(invalid, "PORT")
	}

	if v := strings.TrimSpace(os.Getenv("USAGE_TRACKING")); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, "USAGE_TRACKING")
		} else {
			cfg.UsageTracking = enabled
		}
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

// LoadRoster reads and validates a YAML seed roster
func LoadRoster(path string) ([]store.SeedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	if err := validate.Struct(&roster); err != nil {
		return nil, fmt.Errorf("roster validation failed: %w", err)
	}

	return roster.Users, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
