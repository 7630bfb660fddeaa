// Package config handles the ETL configuration: store endpoint and
// credentials, the dataset partition registry, batching, and data
// paths. Settings come from an optional YAML file layered over
// defaults, with credentials from the environment (a .env file is
// honored).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/RAP-research-output-impact/rap-etl/internal/sync"
)

// Partition is one named graph in the registry. Key is the short name
// used on the command line, Graph the full graph IRI, and Mode the
// reconciliation mode applied when posting.
type Partition struct {
	Key   string    `yaml:"key"`
	Graph string    `yaml:"graph"`
	Mode  sync.Mode `yaml:"mode,omitempty"`
}

// Sync returns the partition in the synchronizer's terms.
func (p Partition) Sync() sync.Partition {
	return sync.Partition{Name: p.Graph, Mode: p.Mode}
}

// Config is the full ETL configuration.
type Config struct {
	// Endpoint is the base URL of the VIVO instance. Overridden by
	// VIVO_URL.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Email and Password authenticate against the SPARQL APIs. Set via
	// VIVO_EMAIL and VIVO_PASSWORD, never the YAML file.
	Email    string `yaml:"-"`
	Password string `yaml:"-"`

	BatchSize    int `yaml:"batch_size,omitempty"`
	DelaySeconds int `yaml:"delay_seconds,omitempty"`

	// DataPath is the root for staged and generated data.
	DataPath string `yaml:"data_path,omitempty"`

	// StagingDB is the path of the raw record staging database.
	StagingDB string `yaml:"staging_db,omitempty"`

	// IncitesPath is the root of the InCites metric exports.
	IncitesPath string `yaml:"incites_path,omitempty"`

	Partitions []Partition `yaml:"partitions,omitempty"`
}

// Delay returns the configured inter-batch delay.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelaySeconds) * time.Second
}

// Partition looks up a registry entry by its short name.
func (c *Config) Partition(key string) (Partition, error) {
	for _, p := range c.Partitions {
		if p.Key == key {
			return p, nil
		}
	}
	return Partition{}, fmt.Errorf("unknown partition %q", key)
}

const graphBase = "http://localhost/data/"

// Default returns the configuration used when no YAML file overrides
// it. The partition registry matches the graphs the mapping commands
// produce. The citation metric partitions are reconciled
// subject-scoped so an organization without a fresh export keeps its
// previous series.
func Default() *Config {
	return &Config{
		Endpoint:     "http://localhost:8080/vivo",
		BatchSize:    sync.DefaultBatchSize,
		DelaySeconds: 0,
		DataPath:     "data",
		StagingDB:    "data/staging.db",
		IncitesPath:  "data/incites",
		Partitions: []Partition{
			{Key: "pubs", Graph: graphBase + "pubs", Mode: sync.ModeFull},
			{Key: "venues", Graph: graphBase + "venues", Mode: sync.ModeFull},
			{Key: "authorship", Graph: graphBase + "people-authorship", Mode: sync.ModeFull},
			{Key: "address", Graph: graphBase + "address", Mode: sync.ModeFull},
			{Key: "suborgs", Graph: graphBase + "suborgs", Mode: sync.ModeFull},
			{Key: "orgs", Graph: graphBase + "orgs", Mode: sync.ModeFull},
			{Key: "categories", Graph: graphBase + "wos-categories", Mode: sync.ModeFull},
			{Key: "venue-categories", Graph: graphBase + "wos-venue-categories", Mode: sync.ModeFull},
			{Key: "keywords-plus", Graph: graphBase + "wos-keywords-plus", Mode: sync.ModeFull},
			{Key: "author-keywords", Graph: graphBase + "wos-author-keywords", Mode: sync.ModeFull},
			{Key: "grants", Graph: graphBase + "grants", Mode: sync.ModeFull},
			{Key: "organization-extra", Graph: graphBase + "organization-extra", Mode: sync.ModeFull},
			{Key: "incites-pub-counts", Graph: graphBase + "incites-pub-year-counts", Mode: sync.ModeSubjects},
			{Key: "incites-cite-counts", Graph: graphBase + "incites-total-cites-year-counts", Mode: sync.ModeSubjects},
			{Key: "incites-top-categories", Graph: graphBase + "incites-top-categories", Mode: sync.ModeSubjects},
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// if it exists, then environment credentials. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	_ = godotenv.Load()
	if v := os.Getenv("VIVO_URL"); v != "" {
		cfg.Endpoint = v
	}
	cfg.Email = os.Getenv("VIVO_EMAIL")
	cfg.Password = os.Getenv("VIVO_PASSWORD")

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = sync.DefaultBatchSize
	}
	return cfg, nil
}

// ValidateCredentials checks that the store credentials are present.
// Mapping commands run without them; posting commands require them.
func (c *Config) ValidateCredentials() error {
	if c.Email == "" || c.Password == "" {
		return fmt.Errorf("VIVO_EMAIL and VIVO_PASSWORD must be set")
	}
	return nil
}
