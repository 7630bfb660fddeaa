package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/mapper"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories <category-file.csv>",
	Short: "Relate publication venues to subject categories",
	Long: `Relate publication venues to subject categories.

Joins the release's mapped venues against the category reference CSV
by ISSN and writes the venue-categories partition file. Venues without
a listed ISSN are skipped. Run "rap map" first.

Examples:
  rap categories --release 12 data/wos-categories.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
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

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening category file: %w", err)
	}
	defer f.Close()
	categories, err := mapper.ReadCategoryFile(f)
	if err != nil {
		return err
	}

	venues, ok, err := readPartition(cfg, "venues")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no venues file for release %d, run \"rap map\" first", flagRelease)
	}

	g := mapper.JournalCategories(venues, categories)
	if err := writePartition(cfg, "venue-categories", g); err != nil {
		return err
	}
	log.Info("wrote venue categories",
		zap.Int("statements", g.Len()),
		zap.String("path", partitionFile(cfg, "venue-categories")))
	return nil
}
