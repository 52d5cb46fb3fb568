package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config is the root pipeline configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Layout   LayoutConfig   `yaml:"layout"`
	Batch    BatchConfig    `yaml:"batch"`
	Sinks    SinkConfig     `yaml:"sinks"`
}

// AnalysisConfig selects chains and interaction filtering.
type AnalysisConfig struct {
	BinderChain string `yaml:"binder_chain" validate:"required,len=1"`
	TargetChain string `yaml:"target_chain" validate:"required,len=1,nefield=BinderChain"`
	IncludeVDW  bool   `yaml:"include_vdw"`
}

// LayoutConfig selects the bipartite arrangement for segment pairs.
type LayoutConfig struct {
	Orientation string `yaml:"orientation" validate:"omitempty,oneof=vertical horizontal"`
}

// BatchConfig tunes the multi-structure pipeline.
type BatchConfig struct {
	Workers   int    `yaml:"workers" validate:"omitempty,min=1,max=128"`
	ScoreFile string `yaml:"score_file" validate:"omitempty,filepath"`
	OutputCSV string `yaml:"output_csv"`
	Compress  bool   `yaml:"compress"`
}

// SinkConfig holds the optional export destinations. Credentials come
// from the environment, not from the YAML file.
type SinkConfig struct {
	Neo4j    *Neo4jConfig    `yaml:"neo4j,omitempty"`
	Postgres *PostgresConfig `yaml:"postgres,omitempty"`
	S3       *S3Config       `yaml:"s3,omitempty"`
}

// Neo4jConfig points at a Neo4j instance for graph export.
type Neo4jConfig struct {
	URI      string `yaml:"uri" validate:"required,uri"`
	Username string `yaml:"username" validate:"required"`
	Database string `yaml:"database"`
}

// PostgresConfig points at a PostgreSQL metrics sink. The connection
// string is read from RINCRAFT_PG_URL.
type PostgresConfig struct {
	Table string `yaml:"table" validate:"required"`
}

// S3Config points at a bucket for batch result upload.
type S3Config struct {
	Bucket string `yaml:"bucket" validate:"required"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			BinderChain: "A",
			TargetChain: "B",
			IncludeVDW:  true,
		},
		Layout: LayoutConfig{
			Orientation: "vertical",
		},
		Batch: BatchConfig{
			Workers: 1,
		},
	}
}

// Load reads and validates a YAML configuration file. Missing fields
// fall back to Default values before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration bytes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Analysis.BinderChain == "" {
		c.Analysis.BinderChain = "A"
	}
	if c.Analysis.TargetChain == "" {
		c.Analysis.TargetChain = "B"
	}
	if c.Layout.Orientation == "" {
		c.Layout.Orientation = "vertical"
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = 1
	}
}
