package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
)

// fakeStore keeps partitions in memory and records every mutation call
// in order.
type fakeStore struct {
	partitions map[string]*rdf.Graph
	calls      []call
	failOn     int // 1-based mutation call index to fail at, 0 disables
}

type call struct {
	op   string // "add" or "remove"
	size int
}

func newFakeStore() *fakeStore {
	return &fakeStore{partitions: make(map[string]*rdf.Graph)}
}

func (f *fakeStore) graph(name string) *rdf.Graph {
	g, ok := f.partitions[name]
	if !ok {
		g = rdf.NewGraph()
		f.partitions[name] = g
	}
	return g
}

func (f *fakeStore) FetchPartition(_ context.Context, name string) (*rdf.Graph, error) {
	return rdf.NewGraph().Union(f.graph(name)), nil
}

func (f *fakeStore) FetchBySubjects(_ context.Context, name string, subjects []rdf.IRI) (*rdf.Graph, error) {
	set := make(map[rdf.IRI]struct{}, len(subjects))
	for _, s := range subjects {
		set[s] = struct{}{}
	}
	return f.graph(name).FilterSubjects(set), nil
}

func (f *fakeStore) BulkAdd(_ context.Context, name string, g *rdf.Graph) error {
	f.calls = append(f.calls, call{op: "add", size: g.Len()})
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return errors.New("store unavailable")
	}
	f.graph(name).Union(g)
	return nil
}

func (f *fakeStore) BulkRemove(_ context.Context, name string, g *rdf.Graph) error {
	f.calls = append(f.calls, call{op: "remove", size: g.Len()})
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return errors.New("store unavailable")
	}
	current := f.graph(name)
	f.partitions[name] = current.Diff(g)
	return nil
}

func graphOf(triples ...rdf.Triple) *rdf.Graph {
	g := rdf.NewGraph()
	for _, t := range triples {
		g.AddTriple(t)
	}
	return g
}

func tr(s, p, o string) rdf.Triple {
	return rdf.Triple{
		Subject:   rdf.IRI("http://x/" + s),
		Predicate: rdf.IRI("http://x/" + p),
		Object:    rdf.NewLiteral(o),
	}
}

func TestSyncAddsAndRemoves(t *testing.T) {
	store := newFakeStore()
	store.graph("pubs").AddTriple(tr("a", "p", "stale"))
	store.graph("pubs").AddTriple(tr("b", "p", "keep"))

	candidate := graphOf(tr("b", "p", "keep"), tr("c", "p", "new"))

	added, removed, err := New(store).Sync(context.Background(), "pubs", candidate)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if added != 1 || removed != 1 {
		t.Errorf("added, removed = %d, %d, want 1, 1", added, removed)
	}
	if !store.graph("pubs").Equal(candidate) {
		t.Error("partition should equal the candidate after full sync")
	}
}

func TestSyncIdempotent(t *testing.T) {
	store := newFakeStore()
	candidate := graphOf(tr("a", "p", "1"), tr("b", "p", "2"))
	sy := New(store)

	if _, _, err := sy.Sync(context.Background(), "pubs", candidate); err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	mutations := len(store.calls)

	added, removed, err := sy.Sync(context.Background(), "pubs", candidate)
	if err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if added != 0 || removed != 0 {
		t.Errorf("second sync added %d removed %d, want 0, 0", added, removed)
	}
	if len(store.calls) != mutations {
		t.Error("idempotent resync should perform no network mutation")
	}
}

func TestDiffCorrectness(t *testing.T) {
	a := graphOf(tr("s", "p", "1"), tr("s", "p", "2"), tr("t", "q", "3"))
	b := graphOf(tr("s", "p", "2"), tr("u", "r", "4"))

	store := newFakeStore()
	store.partitions["g"] = rdf.NewGraph().Union(b)

	if _, _, err := New(store).Sync(context.Background(), "g", a); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !store.graph("g").Equal(a) {
		t.Error("applying toAdd = A-B then toRemove = B-A to B should reproduce A")
	}
}

func TestUpdateLeavesForeignSubjectsAlone(t *testing.T) {
	store := newFakeStore()
	store.graph("orgs").AddTriple(tr("dtu", "label", "old"))
	store.graph("orgs").AddTriple(tr("other", "label", "untouched"))

	candidate := graphOf(tr("dtu", "label", "new"))

	added, removed, err := New(store).Update(context.Background(), "orgs", candidate)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if added != 1 || removed != 1 {
		t.Errorf("added, removed = %d, %d, want 1, 1", added, removed)
	}
	if !store.graph("orgs").Has(tr("other", "label", "untouched")) {
		t.Error("subject-scoped update must not delete statements for unexamined subjects")
	}
	if store.graph("orgs").Has(tr("dtu", "label", "old")) {
		t.Error("stale statement for an examined subject should be removed")
	}
}

func TestBatchingBoundsAndOrder(t *testing.T) {
	store := newFakeStore()
	for _, o := range []string{"1", "2", "3"} {
		store.graph("g").AddTriple(tr("stale", "p", o))
	}

	candidate := rdf.NewGraph()
	for _, o := range []string{"a", "b", "c", "d", "e"} {
		candidate.AddTriple(tr("fresh", "p", o))
	}

	_, _, err := New(store, WithBatchSize(2)).Sync(context.Background(), "g", candidate)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	// 5 adds in batches of 2, then 3 removes in batches of 2.
	wantOps := []string{"add", "add", "add", "remove", "remove"}
	if len(store.calls) != len(wantOps) {
		t.Fatalf("got %d mutation calls, want %d", len(store.calls), len(wantOps))
	}
	for i, c := range store.calls {
		if c.op != wantOps[i] {
			t.Errorf("call %d op = %s, want %s (adds must precede removes)", i, c.op, wantOps[i])
		}
		if c.size > 2 {
			t.Errorf("call %d size = %d exceeds batch bound", i, c.size)
		}
	}
}

func TestBatchFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.failOn = 2

	candidate := rdf.NewGraph()
	for _, o := range []string{"a", "b", "c", "d"} {
		candidate.AddTriple(tr("s", "p", o))
	}

	_, _, err := New(store, WithBatchSize(2)).Sync(context.Background(), "g", candidate)
	if err == nil {
		t.Fatal("expected the batch failure to propagate")
	}
	// The first batch stays applied; rerunning converges.
	store.failOn = 0
	added, _, err := New(store, WithBatchSize(2)).Sync(context.Background(), "g", candidate)
	if err != nil {
		t.Fatalf("rerun Sync: %v", err)
	}
	if added != 2 {
		t.Errorf("rerun should apply only the remaining delta, added %d", added)
	}
	if !store.graph("g").Equal(candidate) {
		t.Error("rerun should converge to the candidate graph")
	}
}

func TestReconcileModes(t *testing.T) {
	store := newFakeStore()
	store.graph("g").AddTriple(tr("other", "p", "x"))
	candidate := graphOf(tr("s", "p", "y"))

	if _, _, err := New(store).Reconcile(context.Background(), Partition{Name: "g", Mode: ModeSubjects}, candidate); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if !store.graph("g").Has(tr("other", "p", "x")) {
		t.Error("subject-scoped reconcile should not touch other subjects")
	}

	if _, _, err := New(store).Reconcile(context.Background(), Partition{Name: "g", Mode: ModeFull}, candidate); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if store.graph("g").Has(tr("other", "p", "x")) {
		t.Error("full reconcile should remove statements absent from the candidate")
	}

	if _, _, err := New(store).Reconcile(context.Background(), Partition{Name: "g", Mode: "bogus"}, candidate); err == nil {
		t.Error("unknown mode should be rejected")
	}
}
