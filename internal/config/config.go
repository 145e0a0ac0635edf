package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/gocomplete/internal/complete"
	"github.com/gocomplete/internal/models"
)

var (
	ErrInvalidSource   = errors.New("invalid lookup source")
	ErrInvalidOrdering = errors.New("invalid lookup ordering")
)

// Duration reads and writes time.Duration as text ("500ms")
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// Config represents the application configuration
type Config struct {
	Lookup   LookupSettings `toml:"lookup"`
	HTTP     HTTPSettings   `toml:"http"`
	DynamoDB DynamoSettings `toml:"dynamodb"`
	Log      LogSettings    `toml:"log"`
	UI       UISettings     `toml:"ui"`
}

// LookupSettings controls filtering
type LookupSettings struct {
	Source     models.SourceKind `toml:"source"`
	Delay      Duration          `toml:"delay"`
	Ordering   string            `toml:"ordering"`
	Candidates []string          `toml:"candidates,omitempty"`
}

// HTTPSettings configures the remote HTTP lookup
type HTTPSettings struct {
	Endpoint string   `toml:"endpoint"`
	Timeout  Duration `toml:"timeout"`
}

// DynamoSettings configures the DynamoDB lookup
type DynamoSettings struct {
	Endpoint  string `toml:"endpoint"`
	Region    string `toml:"region"`
	Table     string `toml:"table"`
	Attribute string `toml:"attribute"`
	AccessKey string `toml:"access_key,omitempty"`
	SecretKey string `toml:"secret_key,omitempty"`
	UseLocal  bool   `toml:"use_local"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Placeholder string `toml:"placeholder"`
	MaxVisible  int    `toml:"max_visible"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "gocomplete", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the service's file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate normalizes enum fields and rejects unknown values
func (c *Config) Validate() error {
	c.Lookup.Source = models.SourceKind(strings.ToLower(strings.TrimSpace(string(c.Lookup.Source))))
	if c.Lookup.Source == "" {
		c.Lookup.Source = models.SourceStatic
	}
	if !c.Lookup.Source.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSource, c.Lookup.Source)
	}

	ordering, ok := complete.ParseOrdering(c.Lookup.Ordering)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOrdering, c.Lookup.Ordering)
	}
	c.Lookup.Ordering = ordering.String()

	if c.Lookup.Delay.Duration < 0 {
		c.Lookup.Delay.Duration = 0
	}
	if c.UI.MaxVisible <= 0 {
		c.UI.MaxVisible = 10
	}
	return nil
}

// OrderingPolicy returns the parsed ordering
func (c *Config) OrderingPolicy() complete.Ordering {
	o, _ := complete.ParseOrdering(c.Lookup.Ordering)
	return o
}

// CandidateList returns the configured static list, or the built-in fruit list
func (c *Config) CandidateList() []string {
	if len(c.Lookup.Candidates) > 0 {
		return c.Lookup.Candidates
	}
	return models.Fruits
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Lookup: LookupSettings{
			Source:   models.SourceStatic,
			Delay:    Duration{complete.DefaultDelay},
			Ordering: complete.OrderLatest.String(),
		},
		HTTP: HTTPSettings{
			Endpoint: "http://localhost:8000/fruit",
			Timeout:  Duration{5 * time.Second},
		},
		DynamoDB: DynamoSettings{
			Region:    defaultRegion(),
			Table:     "fruit",
			Attribute: "name",
		},
		Log: LogSettings{
			File:  defaultLogFile(),
			Level: "info",
		},
		UI: UISettings{
			Placeholder: "Type a fruit...",
			MaxVisible:  10,
		},
	}
}

// defaultRegion returns the default AWS region
func defaultRegion() string {
	if region := os.Getenv("AWS_REGION"); region != "" {
		return region
	}
	if region := os.Getenv("AWS_DEFAULT_REGION"); region != "" {
		return region
	}
	return "us-east-1"
}

func defaultLogFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "gocomplete", "gocomplete.log")
	}
	return "gocomplete.log"
}
