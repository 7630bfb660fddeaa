package rdf

import "sort"

// Graph is a set of triples. The zero value is not usable; call NewGraph.
type Graph struct {
	triples map[Triple]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{triples: make(map[Triple]struct{})}
}

// Add inserts a triple. Adding a triple twice is a no-op.
func (g *Graph) Add(s IRI, p IRI, o Term) {
	g.triples[Triple{Subject: s, Predicate: p, Object: o}] = struct{}{}
}

// AddTriple inserts an existing triple value.
func (g *Graph) AddTriple(t Triple) {
	g.triples[t] = struct{}{}
}

// Has reports whether the graph contains the triple.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Union adds every triple of other to g and returns g.
func (g *Graph) Union(other *Graph) *Graph {
	for t := range other.triples {
		g.triples[t] = struct{}{}
	}
	return g
}

// Diff returns the triples present in g but not in other.
func (g *Graph) Diff(other *Graph) *Graph {
	out := NewGraph()
	for t := range g.triples {
		if !other.Has(t) {
			out.triples[t] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both graphs contain exactly the same triples.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	for t := range g.triples {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// Triples returns the triples in a stable sorted order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NTriples() < out[j].NTriples()
	})
	return out
}

// Subjects returns the distinct subjects in a stable sorted order.
func (g *Graph) Subjects() []IRI {
	set := g.SubjectSet()
	out := make([]IRI, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SubjectSet returns the set of distinct subjects.
func (g *Graph) SubjectSet() map[IRI]struct{} {
	set := make(map[IRI]struct{})
	for t := range g.triples {
		set[t.Subject] = struct{}{}
	}
	return set
}

// FilterSubjects returns the triples whose subject is in the given set.
func (g *Graph) FilterSubjects(subjects map[IRI]struct{}) *Graph {
	out := NewGraph()
	for t := range g.triples {
		if _, ok := subjects[t.Subject]; ok {
			out.triples[t] = struct{}{}
		}
	}
	return out
}

// Objects returns the object terms for a given subject and predicate, in
// stable sorted order.
func (g *Graph) Objects(s IRI, p IRI) []Term {
	var out []Term
	for t := range g.triples {
		if t.Subject == s && t.Predicate == p {
			out = append(out, t.Object)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NTriples() < out[j].NTriples()
	})
	return out
}

// Batches splits the graph into graphs of at most size triples each,
// preserving the stable sorted order across batches.
func (g *Graph) Batches(size int) []*Graph {
	if size <= 0 || g.Len() == 0 {
		if g.Len() == 0 {
			return nil
		}
		size = g.Len()
	}
	triples := g.Triples()
	var out []*Graph
	for start := 0; start < len(triples); start += size {
		end := start + size
		if end > len(triples) {
			end = len(triples)
		}
		batch := NewGraph()
		for _, t := range triples[start:end] {
			batch.AddTriple(t)
		}
		out = append(out, batch)
	}
	return out
}
