package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/config"
	"github.com/RAP-research-output-impact/rap-etl/internal/sync"
	"github.com/RAP-research-output-impact/rap-etl/internal/vivo"
)

func init() {
	rootCmd.AddCommand(postCmd)
}

var postCmd = &cobra.Command{
	Use:   "post [partition...]",
	Short: "Reconcile partitions against the remote store",
	Long: `Reconcile partitions against the remote store.

Reads the release's N-Triples file for each named partition and brings
the corresponding named graph into agreement with it, in the
partition's configured mode. With no arguments every partition in the
registry is posted; partitions without a mapped file are skipped.

A failed run can simply be re-run: the next reconcile computes and
applies only the remaining delta.

Examples:
  rap post --release 12
  rap post --release 12 pubs venues`,
	RunE: runPost,
}

func runPost(cmd *cobra.Command, args []string) error {
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
	if err := cfg.ValidateCredentials(); err != nil {
		return err
	}

	var parts []config.Partition
	if len(args) == 0 {
		parts = cfg.Partitions
	} else {
		for _, key := range args {
			p, err := cfg.Partition(key)
			if err != nil {
				return err
			}
			parts = append(parts, p)
		}
	}

	client := vivo.NewClient(cfg.Endpoint, cfg.Email, cfg.Password)
	syn := sync.New(client,
		sync.WithBatchSize(cfg.BatchSize),
		sync.WithDelay(cfg.Delay()),
		sync.WithLogger(log))

	for _, p := range parts {
		g, ok, err := readPartition(cfg, p.Key)
		if err != nil {
			return err
		}
		if !ok {
			log.Warn("no mapped file for partition, skipping",
				zap.String("partition", p.Key),
				zap.String("path", partitionFile(cfg, p.Key)))
			continue
		}

		added, removed, err := syn.Reconcile(cmd.Context(), p.Sync(), g)
		if err != nil {
			return err
		}
		log.Info("partition reconciled",
			zap.String("partition", p.Key),
			zap.String("graph", p.Graph),
			zap.Int("added", added),
			zap.Int("removed", removed))
	}
	return nil
}
