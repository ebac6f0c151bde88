package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment variables overriding configuration
const EnvPrefix = "PIPELINAGER_"

type (
	// Config represents lineage run configuration
	Config struct {
		Source  Source  `yaml:"source"`
		Output  Output  `yaml:"output"`
		Lineage Lineage `yaml:"lineage"`
		Log     Log     `yaml:"log"`
	}

	// Source represents pipeline definitions location
	Source struct {
		URL    string `yaml:"url" validate:"required"`
		Strict bool   `yaml:"strict"`
	}

	// Output represents artifact destination
	Output struct {
		URL      string `yaml:"url" validate:"required"`
		FileName string `yaml:"fileName" validate:"required"`
		Format   string `yaml:"format" validate:"oneof=json yaml"`
		Manifest bool   `yaml:"manifest"`
	}

	// Lineage represents graph building settings
	Lineage struct {
		NodeNaming  string `yaml:"nodeNaming" validate:"oneof=activity target"`
		Concurrency int    `yaml:"concurrency" validate:"min=1"`
	}

	// Log represents logger settings
	Log struct {
		Level       string `yaml:"level" validate:"oneof=debug info warn error"`
		Development bool   `yaml:"development"`
	}
)

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: Output{
			FileName: "lineage.json",
			Format:   "json",
			Manifest: true,
		},
		Lineage: Lineage{
			NodeNaming:  "activity",
			Concurrency: 4,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load loads configuration from URL on top of defaults, empty URL uses defaults only. Environment overrides are applied last.
func Load(ctx context.Context, URL string) (*Config, error) {
	ret := DefaultConfig()
	if URL != "" {
		data, err := afs.New().DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
		}
	}
	if err := ret.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Config) applyEnv(lookup func(key string) (string, bool)) error {
	texts := map[string]*string{
		"SOURCE_URL":          &c.Source.URL,
		"OUTPUT_URL":          &c.Output.URL,
		"OUTPUT_FILE_NAME":    &c.Output.FileName,
		"OUTPUT_FORMAT":       &c.Output.Format,
		"LINEAGE_NODE_NAMING": &c.Lineage.NodeNaming,
		"LOG_LEVEL":           &c.Log.Level,
	}
	for key, target := range texts {
		if value, ok := lookup(EnvPrefix + key); ok && value != "" {
			*target = value
		}
	}
	bools := map[string]*bool{
		"SOURCE_STRICT":   &c.Source.Strict,
		"OUTPUT_MANIFEST": &c.Output.Manifest,
		"LOG_DEVELOPMENT": &c.Log.Development,
	}
	for key, target := range bools {
		if value, ok := lookup(EnvPrefix + key); ok && value != "" {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid %v%v: %w", EnvPrefix, key, err)
			}
			*target = parsed
		}
	}
	if value, ok := lookup(EnvPrefix + "LINEAGE_CONCURRENCY"); ok && value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %vLINEAGE_CONCURRENCY: %w", EnvPrefix, err)
		}
		c.Lineage.Concurrency = parsed
	}
	return nil
}

// Validate checks configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
