package mapper

import (
	"strings"

	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
	"github.com/RAP-research-output-impact/rap-etl/internal/wos"
)

// Authorships maps one authorship entity per (publication, rank) pair,
// relating each to the publication and to every address the author's
// address-number string references.
func (m *Mapper) Authorships(rec *wos.Record) (*rdf.Graph, error) {
	addrs, err := rec.Addresses()
	if err != nil {
		return nil, err
	}

	g := rdf.NewGraph()
	pubURI := PubURI(rec.UID())
	for _, au := range rec.Authors() {
		uri := AuthorshipURI(rec.UID(), au.Rank)
		g.Add(uri, rdf.RDFType, rdf.VIVOAuthorship)
		g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(au.DisplayName))
		g.Add(uri, rdf.VIVORank, rdf.NewLiteral(au.Rank))

		strProps := []struct {
			value string
			prop  rdf.IRI
		}{
			{au.FullName, rdf.WOSFullName},
			{au.DisplayName, rdf.WOSDisplayName},
			{au.WosStandard, rdf.WOSStandardName},
			{au.First, rdf.WOSFirstName},
			{au.Last, rdf.WOSLastName},
			{au.Email, rdf.WOSEmail},
			{au.DaisNG, rdf.WOSDaisNg},
			{au.Reprint, rdf.WOSReprint},
		}
		for _, p := range strProps {
			if p.value != "" {
				g.Add(uri, p.prop, rdf.NewLiteral(p.value))
			}
		}
		g.Add(uri, rdf.VIVORelates, pubURI)

		if au.AddressNumbers == "" {
			m.log.Debug("author without address reference",
				zap.String("uid", rec.UID()),
				zap.String("rank", au.Rank))
			continue
		}
		// Address numbers are a whitespace separated list and may
		// reference several addresses.
		for _, num := range strings.Fields(au.AddressNumbers) {
			for _, addrURI := range addressURIsForNumber(addrs, num) {
				g.Add(uri, rdf.VIVORelates, addrURI)
			}
		}
	}
	return g, nil
}

// addressURIsForNumber resolves an address-number token against the
// record's address list.
func addressURIsForNumber(addrs []wos.Address, number string) []rdf.IRI {
	var out []rdf.IRI
	for _, a := range addrs {
		if a.Number == number {
			out = append(out, AddressURI(a.FullAddress, a.Number))
		}
	}
	return out
}
