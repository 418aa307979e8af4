package insight

import (
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/campusdata/insight/ingest"
	"github.com/campusdata/insight/sql/analyzer"
)

// Config of an Insight instance.
type Config struct {
	// DataDir is the directory where datasets are persisted.
	DataDir string `yaml:"data_dir"`
	// MaxRows is the number of rows above which a query fails.
	MaxRows int `yaml:"max_rows"`
	// LogLevel is the level of the standard logger.
	LogLevel string         `yaml:"log_level"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
	Ingest   IngestConfig   `yaml:"ingest"`
}

// GeocoderConfig configures the service locating building addresses.
type GeocoderConfig struct {
	URL     string `yaml:"url"`
	Retries int    `yaml:"retries"`
}

// IngestConfig configures dataset loading.
type IngestConfig struct {
	Workers int `yaml:"workers"`
}

// DefaultDataDir is the data directory used when none is configured.
const DefaultDataDir = "./data"

// DefaultConfig returns a configuration with every default value set.
func DefaultConfig() *Config {
	c := new(Config)
	c.setDefaults()
	return c
}

// LoadConfig reads the YAML configuration file at path. Values missing
// from the file take their default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	c := new(Config)
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}

	c.setDefaults()
	return c, nil
}

func (c *Config) setDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.MaxRows <= 0 {
		c.MaxRows = analyzer.DefaultMaxRows
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Geocoder.Retries <= 0 {
		c.Geocoder.Retries = ingest.DefaultGeocoderRetries
	}
	if c.Ingest.Workers <= 0 {
		c.Ingest.Workers = ingest.DefaultWorkers
	}
}
