// Package mapper derives the canonical entity graph from a parsed WoS
// record.
//
// Each mapping method returns an independent sub-graph and is a pure
// function of the record's fields plus the static lookup tables, so the
// identities it mints are stable across runs and omitting one method
// never affects the identities produced by another.
package mapper

import (
	"strings"

	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/identity"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
	"github.com/RAP-research-output-impact/rap-etl/internal/wos"
)

// Mapper maps records to entity sub-graphs.
type Mapper struct {
	log *zap.Logger
}

// New returns a Mapper. A nil logger disables diagnostics.
func New(log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{log: log}
}

// PubURI returns the publication identity for a record id: a
// deterministic transform of the external id, minted once per record.
func PubURI(ut string) rdf.IRI {
	return rdf.D("pub-" + strings.ReplaceAll(ut, ":", ""))
}

// AuthorshipURI returns the identity for a (publication, rank) pair.
// Rank is authoritative per record, so no content hashing is involved.
func AuthorshipURI(ut, rank string) rdf.IRI {
	return rdf.D("au" + rank + "-" + PubURI(ut).LocalName())
}

// AddressURI returns the content-addressed identity of an address slot:
// identical text at the same slot always yields the same identity.
func AddressURI(fullAddress, number string) rdf.IRI {
	return rdf.D(identity.HashLocalName("addr", fullAddress) + number)
}

// SubOrgURI returns the content-addressed identity of a
// sub-organization composite label ("sub, org").
func SubOrgURI(label string) rdf.IRI {
	return rdf.D(identity.HashLocalName("suborg", label))
}

// OrgURI returns the slug identity of a unified organization. The slug
// is intentionally human-derivable so external reference data keyed by
// organization name can be joined later.
func OrgURI(name string) rdf.IRI {
	return rdf.D("org-" + identity.Slug(name))
}

// CategoryURI returns the slug identity of a WoS category.
func CategoryURI(name string) rdf.IRI {
	return rdf.D("wosc-" + identity.Slug(name))
}

// DateURI returns the content-addressed identity of a
// (publication, date) pair.
func DateURI(ut, date string) rdf.IRI {
	return rdf.D(identity.HashLocalName("date", ut+date))
}

// All maps the full record: the union of every entity sub-graph.
func (m *Mapper) All(rec *wos.Record) (*rdf.Graph, error) {
	g := rdf.NewGraph()

	pub, err := m.Publication(rec)
	if err != nil {
		return nil, err
	}
	g.Union(pub)

	venue, err := m.Venue(rec)
	if err != nil {
		return nil, err
	}
	g.Union(venue)

	aships, err := m.Authorships(rec)
	if err != nil {
		return nil, err
	}
	g.Union(aships)

	addrs, err := m.Addresses(rec)
	if err != nil {
		return nil, err
	}
	g.Union(addrs)

	subOrgs, err := m.SubOrgs(rec)
	if err != nil {
		return nil, err
	}
	g.Union(subOrgs)

	unified, err := m.UnifiedOrgs(rec)
	if err != nil {
		return nil, err
	}
	g.Union(unified)

	g.Union(m.Categories(rec))
	g.Union(m.KeywordsPlus(rec))
	g.Union(m.AuthorKeywords(rec))
	g.Union(m.Grants(rec))
	return g, nil
}
