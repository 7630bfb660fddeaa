// Package main provides the rap CLI entry point.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/config"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	flagConfig  string
	flagRelease int
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rap",
	Short: "Web of Science to VIVO ETL",
	Long: `rap maps Web of Science records to a typed entity graph and
synchronizes it with the named graphs of a VIVO instance.

The pipeline runs in stages:
  rap stage      load raw record XML into the local staging store
  rap map        map staged records to per-partition N-Triples files
  rap post       reconcile partitions against the remote store
  rap categories relate publication venues to subject categories
  rap metrics    map per-organization citation metrics
  rap countries  annotate organizations with countries and identifiers

Store credentials come from VIVO_URL, VIVO_EMAIL and VIVO_PASSWORD
(a .env file is honored).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "rap.yml", "Path to the configuration file")
	rootCmd.PersistentFlags().IntVar(&flagRelease, "release", 0, "Data release number")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.Version = Version
}

// newLogger builds the CLI logger.
func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

// loadConfig loads the layered configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(flagConfig)
}

// requireRelease validates the --release flag.
func requireRelease() error {
	if flagRelease <= 0 {
		return fmt.Errorf("--release is required and must be positive")
	}
	return nil
}

// rdfDir returns the generated-data directory for the current release.
func rdfDir(cfg *config.Config) string {
	return filepath.Join(cfg.DataPath, "rdf", fmt.Sprintf("%03d", flagRelease))
}

// partitionFile returns the N-Triples file path for a partition key.
func partitionFile(cfg *config.Config, key string) string {
	return filepath.Join(rdfDir(cfg), key+".nt")
}

// writePartition serializes a graph to the partition's release file.
func writePartition(cfg *config.Config, key string, g *rdf.Graph) error {
	if err := os.MkdirAll(rdfDir(cfg), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := partitionFile(cfg, key)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := rdf.Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// readPartition parses a partition's release file. Missing files
// return ok=false so callers can skip partitions that were not mapped.
func readPartition(cfg *config.Config, key string) (*rdf.Graph, bool, error) {
	path := partitionFile(cfg, key)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	g, err := rdf.Parse(f)
	if err != nil {
		return nil, false, fmt.Errorf("parsing %s: %w", path, err)
	}
	return g, true, nil
}
