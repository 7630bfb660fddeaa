package mapper

import (
	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
	"github.com/RAP-research-output-impact/rap-etl/internal/wos"
)

// Publication maps the core publication metadata: scalar data
// properties, the type tags, and the publication date.
func (m *Mapper) Publication(rec *wos.Record) (*rdf.Graph, error) {
	g := rdf.NewGraph()
	uri := PubURI(rec.UID())

	g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(rec.Title()))
	for _, vtype := range m.recTypes(rec) {
		g.Add(uri, rdf.RDFType, vtype)
	}
	g.Add(uri, rdf.WOSWosID, rdf.NewLiteral(rec.UID()))

	begin, end := rec.Pages()
	strProps := []struct {
		value string
		prop  rdf.IRI
	}{
		{rec.Abstract(), rdf.BIBOAbstract},
		{rec.FundingAcknowledgement(), rdf.WOSFundingText},
		{rec.Volume(), rdf.BIBOVolume},
		{rec.Issue(), rdf.BIBOIssue},
		{begin, rdf.BIBOPageStart},
		{end, rdf.BIBOPageEnd},
		{rec.DOI(), rdf.BIBODOI},
	}
	for _, p := range strProps {
		if p.value != "" {
			g.Add(uri, p.prop, rdf.NewLiteral(p.value))
		}
	}
	g.Add(uri, rdf.WOSReferenceCount, rdf.NewIntLiteral(rec.ReferenceCount()))
	g.Add(uri, rdf.WOSCitationCount, rdf.NewIntLiteral(rec.CitationCount()))

	g.Union(m.PubDate(rec))
	return g, nil
}

// recTypes maps the document-type list through the fixed type table.
// Unrecognized types are logged and skipped; a record whose types are
// all unknown still gets the generic fallback tag.
func (m *Mapper) recTypes(rec *wos.Record) []rdf.IRI {
	var out []rdf.IRI
	for _, dt := range rec.DocTypes() {
		vtype, ok := docTypeTable[dt]
		if !ok {
			m.log.Info("publication type unknown",
				zap.String("uid", rec.UID()),
				zap.String("doc_type", dt))
			continue
		}
		out = append(out, vtype)
	}
	if len(out) == 0 {
		return []rdf.IRI{rdf.WOSPublication}
	}
	return out
}

// PubDate maps the publication date as a date-time value entity related
// to the publication. Records without a date yield an empty graph.
func (m *Mapper) PubDate(rec *wos.Record) *rdf.Graph {
	g := rdf.NewGraph()
	value := rec.PubDate()
	if value == "" {
		return g
	}
	uri := DateURI(rec.UID(), value)
	g.Add(uri, rdf.RDFType, rdf.VIVODateTimeValue)
	g.Add(uri, rdf.VIVODateTimePrecision, rdf.VIVOYearMonthDayPrecision)
	g.Add(uri, rdf.VIVODateTime, rdf.NewDateTimeLiteral(value+"T00:00:00"))
	g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(value))
	g.Add(PubURI(rec.UID()), rdf.VIVODateTimeValueProp, uri)
	return g
}
