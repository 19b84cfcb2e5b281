package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds display preferences. The category rule table is deliberately
// not configurable here: it is fixed for the lifetime of the process (see
// DefaultCategoryRules).
type Config struct {
	// Currency is the ISO code used to format amounts; empty means plain numbers.
	Currency string `yaml:"currency,omitempty"`

	// Output selects the default presenter: "table" or "json".
	Output string `yaml:"output,omitempty"`

	// PreviewRows caps the processed-data table.
	PreviewRows int `yaml:"preview_rows,omitempty"`

	// ChartWidth is the bar length of a 100% share in the distribution chart.
	ChartWidth int `yaml:"chart_width,omitempty"`
}

// DefaultConfig returns the built-in display preferences.
func DefaultConfig() *Config {
	return &Config{
		Output:      "table",
		PreviewRows: DefaultPreviewRows,
		ChartWidth:  DefaultChartWidth,
	}
}

// DefaultConfigPath returns the default config file path
// (~/.spendscope/config.yaml), or "" when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spendscope", "config.yaml")
}

// LoadConfig reads and validates a config file. A missing file (or an empty
// path) is not an error: defaults apply, and file values only override the
// fields they set.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Output {
	case "", "table", "json":
	default:
		return fmt.Errorf("unknown output %q (want table or json)", c.Output)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative")
	}
	if c.ChartWidth < 0 {
		return fmt.Errorf("chart_width must not be negative")
	}
	return nil
}

// Save writes the config, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
