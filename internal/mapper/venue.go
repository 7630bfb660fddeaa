package mapper

import (
	"fmt"
	"strings"

	"github.com/RAP-research-output-impact/rap-etl/internal/identity"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
	"github.com/RAP-research-output-impact/rap-etl/internal/wos"
)

// VenueURI derives the venue identity from the source attribute set,
// excluding the record-specific fields, so every record appearing in
// the same venue mints the same identity.
func VenueURI(src wos.Source) rdf.IRI {
	key := strings.Join([]string{
		src.ISSN, src.EISSN, src.ISBN, src.PubType, src.Title, src.Abbrev,
	}, "|")
	return rdf.D(identity.HashLocalName("venue", key))
}

// Venue maps the record's source block to a venue entity and relates
// the publication to it.
//
// Type precedence: publication-type Journal is a Journal; a book
// publication-type with a Proceedings Paper document type is a
// Conference; any other book publication-type is a Book. Anything else
// is fatal: the mapping table is exhaustive and an unmapped value
// signals upstream schema drift.
func (m *Mapper) Venue(rec *wos.Record) (*rdf.Graph, error) {
	src := rec.Source()

	var vtype rdf.IRI
	switch {
	case src.PubType == "Journal":
		vtype = rdf.BIBOJournal
	case bookPubTypes[src.PubType] && hasDocType(rec, "Proceedings Paper"):
		vtype = rdf.WOSConference
	case bookPubTypes[src.PubType]:
		vtype = rdf.BIBOBook
	default:
		return nil, fmt.Errorf("record %s: %w: %q", rec.UID(), ErrUnknownVenueType, src.PubType)
	}

	g := rdf.NewGraph()
	uri := VenueURI(src)
	g.Add(uri, rdf.RDFType, vtype)
	g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(src.Title))
	if src.Abbrev != "" {
		g.Add(uri, rdf.WOSJournalAbbr, rdf.NewLiteral(src.Abbrev))
	}

	idProps := []struct {
		value string
		prop  rdf.IRI
	}{
		{src.ISSN, rdf.BIBOISSN},
		{src.EISSN, rdf.BIBOEISSN},
		{src.ISBN, rdf.BIBOISBN},
	}
	for _, p := range idProps {
		if p.value != "" {
			g.Add(uri, p.prop, rdf.NewLiteral(p.value))
		}
	}

	g.Add(PubURI(rec.UID()), rdf.VIVOHasPublicationVenue, uri)
	return g, nil
}

func hasDocType(rec *wos.Record, want string) bool {
	for _, dt := range rec.DocTypes() {
		if dt == want {
			return true
		}
	}
	return false
}

// JournalCategories relates venues carrying an ISSN to WoS categories,
// given an ISSN to category-list index from the category reference
// file. Venues without a listed ISSN are skipped.
func JournalCategories(venues *rdf.Graph, categories map[string][]string) *rdf.Graph {
	g := rdf.NewGraph()
	for s := range venues.SubjectSet() {
		for _, obj := range venues.Objects(s, rdf.BIBOISSN) {
			lit, ok := obj.(rdf.Literal)
			if !ok {
				continue
			}
			for _, cat := range categories[lit.Value] {
				g.Add(s, rdf.WOSHasCategory, CategoryURI(cat))
			}
		}
	}
	return g
}
