package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/mapper"
)

func init() {
	rootCmd.AddCommand(countriesCmd)
}

var countriesCmd = &cobra.Command{
	Use:   "countries <org-enhanced.tsv> <country-codes.csv>",
	Short: "Annotate organizations with countries and identifiers",
	Long: `Annotate organizations with countries and identifiers.

Reads the tab-separated organization reference export and the ISO
country code CSV, and writes the organization-extra partition file:
WoS identifiers, homepages, ISO country codes, and canonical country
locations for unified organizations.

Examples:
  rap countries --release 12 data/org-enhanced.tsv data/country-codes.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runCountries,
}

func runCountries(cmd *cobra.Command, args []string) error {
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

	orgFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening organization file: %w", err)
	}
	defer orgFile.Close()
	metas, err := mapper.ReadOrgEnhanced(orgFile)
	if err != nil {
		return err
	}

	codeFile, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("opening country code file: %w", err)
	}
	defer codeFile.Close()
	codes, err := mapper.ReadCountryCodes(codeFile)
	if err != nil {
		return err
	}

	g := mapper.New(log).OrgAnnotations(metas, codes)
	if err := writePartition(cfg, "organization-extra", g); err != nil {
		return err
	}
	log.Info("wrote organization annotations",
		zap.Int("organizations", len(metas)),
		zap.Int("statements", g.Len()),
		zap.String("path", partitionFile(cfg, "organization-extra")))
	return nil
}
