package mapper

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/identity"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
	"github.com/RAP-research-output-impact/rap-etl/internal/wos"
)

// Categories maps the record's subject categories as controlled terms
// related to the publication. Labels are kept as they appear even
// though the source is not consistent about casing.
func (m *Mapper) Categories(rec *wos.Record) *rdf.Graph {
	g := rdf.NewGraph()
	pubURI := PubURI(rec.UID())
	for _, cat := range rec.Categories() {
		uri := CategoryURI(cat)
		g.Add(uri, rdf.RDFType, rdf.WOSCategory)
		g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(cat))
		g.Add(pubURI, rdf.WOSHasCategory, uri)
	}
	return g
}

// KeywordsPlus maps the index-curated keywords, one related entity per
// list item.
func (m *Mapper) KeywordsPlus(rec *wos.Record) *rdf.Graph {
	g := rdf.NewGraph()
	pubURI := PubURI(rec.UID())
	for _, kw := range rec.KeywordsPlus() {
		uri := rdf.D("kwp-" + identity.Slug(kw))
		g.Add(uri, rdf.RDFType, rdf.WOSKeywordPlus)
		g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(kw))
		g.Add(pubURI, rdf.WOSHasKeywordPlus, uri)
	}
	return g
}

// AuthorKeywords maps the author-supplied keywords, one related entity
// per list item.
func (m *Mapper) AuthorKeywords(rec *wos.Record) *rdf.Graph {
	g := rdf.NewGraph()
	pubURI := PubURI(rec.UID())
	for _, kw := range rec.AuthorKeywords() {
		uri := rdf.D("akw-" + identity.Slug(kw))
		g.Add(uri, rdf.RDFType, rdf.WOSAuthorKeyword)
		g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(kw))
		g.Add(pubURI, rdf.WOSHasAuthorKeyword, uri)
	}
	return g
}

// Grants maps each funding acknowledgement entry to a funder and its
// grants, both related to the publication. Entries with no identifiable
// agency are unusable for linking and are skipped with a warning.
func (m *Mapper) Grants(rec *wos.Record) *rdf.Graph {
	g := rdf.NewGraph()
	pubURI := PubURI(rec.UID())
	for _, grant := range rec.Grants() {
		if grant.Agency == "" {
			m.log.Warn("no agency found for grant",
				zap.String("uid", rec.UID()),
				zap.Strings("grant_ids", grant.IDs))
			continue
		}
		funderURI := rdf.D("funder-" + identity.Slug(grant.Agency))
		g.Add(funderURI, rdf.RDFType, rdf.WOSFunder)
		g.Add(funderURI, rdf.RDFSLabel, rdf.NewLiteral(grant.Agency))

		for _, gid := range grant.IDs {
			label := fmt.Sprintf("%s - %s", grant.Agency, gid)
			grantURI := rdf.D("grant-" + identity.Slug(label))
			g.Add(grantURI, rdf.RDFType, rdf.WOSGrant)
			g.Add(grantURI, rdf.RDFSLabel, rdf.NewLiteral(label))
			g.Add(grantURI, rdf.WOSGrantID, rdf.NewLiteral(gid))
			g.Add(grantURI, rdf.VIVORelates, funderURI)
			g.Add(grantURI, rdf.VIVORelates, pubURI)
		}
	}
	return g
}
