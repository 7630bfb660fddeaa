// Package sync reconciles freshly computed entity graphs against
// persisted dataset partitions.
//
// Reconciliation computes the minimal add/remove delta between a
// candidate graph and a partition's current state and applies it in
// size-bounded batches. Because mapping is deterministic and the delta
// is a plain set difference, a reconcile that fails part-way can simply
// be rerun: the rerun computes and applies only the remaining delta.
package sync

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
)

// DefaultBatchSize bounds the statement count per mutation request.
// The store's write endpoint fails on substantially larger batches.
const DefaultBatchSize = 8000

// Mode selects the reconciliation semantics for a partition.
type Mode string

const (
	// ModeFull fetches the partition's entire current state and
	// reconciles against it. Statements absent from the candidate are
	// removed.
	ModeFull Mode = "full"

	// ModeSubjects reconciles only the statements whose subject
	// appears in the candidate graph. Subjects the candidate did not
	// examine are left untouched.
	ModeSubjects Mode = "subjects"
)

// Partition names an independently synchronized slice of the dataset
// together with its reconciliation mode. The mode is explicit
// per-partition configuration, not inferred.
type Partition struct {
	Name string
	Mode Mode
}

// Store is the remote store surface the synchronizer consumes. No
// transactional semantics are assumed across calls.
type Store interface {
	FetchPartition(ctx context.Context, name string) (*rdf.Graph, error)
	FetchBySubjects(ctx context.Context, name string, subjects []rdf.IRI) (*rdf.Graph, error)
	BulkAdd(ctx context.Context, name string, g *rdf.Graph) error
	BulkRemove(ctx context.Context, name string, g *rdf.Graph) error
}

// Synchronizer applies graph deltas to a store.
type Synchronizer struct {
	store     Store
	batchSize int
	delay     time.Duration
	log       *zap.Logger
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithBatchSize bounds the statement count per mutation request.
func WithBatchSize(n int) Option {
	return func(s *Synchronizer) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithDelay inserts a pause between consecutive mutation batches.
func WithDelay(d time.Duration) Option {
	return func(s *Synchronizer) {
		s.delay = d
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Synchronizer) {
		s.log = log
	}
}

// New returns a Synchronizer backed by the given store client.
func New(store Store, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		store:     store,
		batchSize: DefaultBatchSize,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reconcile brings the partition into agreement with the candidate
// graph using the partition's configured mode. It returns the number of
// statements added and removed.
func (s *Synchronizer) Reconcile(ctx context.Context, p Partition, candidate *rdf.Graph) (added, removed int, err error) {
	switch p.Mode {
	case ModeSubjects:
		return s.Update(ctx, p.Name, candidate)
	case ModeFull, "":
		return s.Sync(ctx, p.Name, candidate)
	default:
		return 0, 0, fmt.Errorf("partition %s: unknown sync mode %q", p.Name, p.Mode)
	}
}

// Sync reconciles the candidate graph against the partition's entire
// current state.
func (s *Synchronizer) Sync(ctx context.Context, partition string, candidate *rdf.Graph) (added, removed int, err error) {
	current, err := s.store.FetchPartition(ctx, partition)
	if err != nil {
		return 0, 0, fmt.Errorf("fetching partition %s: %w", partition, err)
	}
	return s.apply(ctx, partition, candidate.Diff(current), current.Diff(candidate))
}

// Update reconciles the candidate graph against only the current
// statements whose subject appears in the candidate. Subjects absent
// from the candidate are never deleted, even if they exist in the
// partition.
func (s *Synchronizer) Update(ctx context.Context, partition string, candidate *rdf.Graph) (added, removed int, err error) {
	current, err := s.store.FetchBySubjects(ctx, partition, candidate.Subjects())
	if err != nil {
		return 0, 0, fmt.Errorf("fetching subjects from partition %s: %w", partition, err)
	}
	// Guard against a store returning more than asked for.
	current = current.FilterSubjects(candidate.SubjectSet())
	return s.apply(ctx, partition, candidate.Diff(current), current.Diff(candidate))
}

// apply issues the delta as size-bounded batches, all adds before any
// removes. An empty delta performs no network mutation. There is no
// rollback: a failed batch leaves earlier batches applied and the error
// names the partition and batch.
func (s *Synchronizer) apply(ctx context.Context, partition string, toAdd, toRemove *rdf.Graph) (int, int, error) {
	if toAdd.Len() == 0 && toRemove.Len() == 0 {
		s.log.Info("no updates", zap.String("partition", partition))
		return 0, 0, nil
	}

	addBatches := toAdd.Batches(s.batchSize)
	removeBatches := toRemove.Batches(s.batchSize)
	s.log.Info("applying delta",
		zap.String("partition", partition),
		zap.Int("adds", toAdd.Len()),
		zap.Int("removes", toRemove.Len()),
		zap.Int("batches", len(addBatches)+len(removeBatches)))

	first := true
	for i, batch := range addBatches {
		if err := s.pause(ctx, first); err != nil {
			return 0, 0, err
		}
		first = false
		if err := s.store.BulkAdd(ctx, partition, batch); err != nil {
			return 0, 0, fmt.Errorf("partition %s: add batch %d/%d: %w",
				partition, i+1, len(addBatches), err)
		}
	}
	for i, batch := range removeBatches {
		if err := s.pause(ctx, first); err != nil {
			return 0, 0, err
		}
		first = false
		if err := s.store.BulkRemove(ctx, partition, batch); err != nil {
			return 0, 0, fmt.Errorf("partition %s: remove batch %d/%d: %w",
				partition, i+1, len(removeBatches), err)
		}
	}
	return toAdd.Len(), toRemove.Len(), nil
}

// pause waits the configured inter-batch delay, except before the
// first batch of a reconcile.
func (s *Synchronizer) pause(ctx context.Context, first bool) error {
	if first || s.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}
