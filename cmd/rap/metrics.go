package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/incites"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
)

func init() {
	rootCmd.AddCommand(metricsCmd)
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Map per-organization citation metrics",
	Long: `Map per-organization citation metrics.

Reads the InCites metric exports for every unified organization in the
release's mapped orgs file and writes the three metric partition
files: publication counts, citation counts, and top categories per
year. Organizations without an export are skipped. Run "rap map"
first.

Examples:
  rap metrics --release 12`,
	RunE: runMetrics,
}

func runMetrics(cmd *cobra.Command, args []string) error {
	if err := requireRelease(); err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orgGraph, ok, err := readPartition(cfg, "orgs")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no orgs file for release %d, run \"rap map\" first", flagRelease)
	}
	orgs := incites.Organizations(orgGraph)
	log.Info("found organizations", zap.Int("count", len(orgs)))

	m := incites.New(cfg.IncitesPath, log)
	outputs := []struct {
		key string
		fn  func([]string) (*rdf.Graph, error)
	}{
		{"incites-pub-counts", m.PubCounts},
		{"incites-cite-counts", m.CiteCounts},
		{"incites-top-categories", m.TopCategories},
	}
	for _, out := range outputs {
		g, err := out.fn(orgs)
		if err != nil {
			return err
		}
		if err := writePartition(cfg, out.key, g); err != nil {
			return err
		}
		log.Info("wrote metric partition",
			zap.String("partition", out.key),
			zap.Int("statements", g.Len()))
	}
	return nil
}
