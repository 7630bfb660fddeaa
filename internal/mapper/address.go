package mapper

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/country"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
	"github.com/RAP-research-output-impact/rap-etl/internal/wos"
)

// subOrgLabel builds the composite sub-organization label.
func subOrgLabel(subOrg, org string) string {
	return fmt.Sprintf("%s, %s", subOrg, org)
}

// Addresses maps one address entity per (publication, address-number)
// pair, related to the publication, its sub-organizations, and its
// unified organizations. The author relation is set by Authorships.
func (m *Mapper) Addresses(rec *wos.Record) (*rdf.Graph, error) {
	addrs, err := rec.Addresses()
	if err != nil {
		return nil, err
	}

	g := rdf.NewGraph()
	pubURI := PubURI(rec.UID())
	for _, addr := range addrs {
		uri := AddressURI(addr.FullAddress, addr.Number)
		g.Add(uri, rdf.RDFType, rdf.WOSAddress)
		g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(addr.FullAddress))
		g.Add(uri, rdf.WOSOrganizationName, rdf.NewLiteral(addr.Organization))
		g.Add(uri, rdf.WOSSequenceNumber, rdf.NewLiteral(addr.Number))
		g.Add(uri, rdf.VIVORelates, pubURI)

		for _, subOrg := range addr.SubOrganizations {
			g.Add(uri, rdf.VIVORelates, SubOrgURI(subOrgLabel(subOrg, addr.Organization)))
		}
		for _, org := range addr.UnifiedOrgs {
			g.Add(uri, rdf.VIVORelates, OrgURI(org))
		}
	}
	return g, nil
}

// SubOrgs maps the sub-organization entities referenced by the
// record's addresses.
func (m *Mapper) SubOrgs(rec *wos.Record) (*rdf.Graph, error) {
	addrs, err := rec.Addresses()
	if err != nil {
		return nil, err
	}

	g := rdf.NewGraph()
	for _, addr := range addrs {
		for _, subOrg := range addr.SubOrganizations {
			label := subOrgLabel(subOrg, addr.Organization)
			uri := SubOrgURI(label)
			g.Add(uri, rdf.RDFType, rdf.WOSSubOrganization)
			g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(label))
			g.Add(uri, rdf.WOSOrganizationName, rdf.NewLiteral(addr.Organization))
			g.Add(uri, rdf.WOSSubOrgName, rdf.NewLiteral(subOrg))
		}
	}
	return g, nil
}

// UnifiedOrgs maps the unified organization entities referenced by the
// record's addresses, resolving each address country to its canonical
// reference. An unresolved country is logged and the location relation
// omitted; the organization entity is still produced.
func (m *Mapper) UnifiedOrgs(rec *wos.Record) (*rdf.Graph, error) {
	addrs, err := rec.Addresses()
	if err != nil {
		return nil, err
	}

	g := rdf.NewGraph()
	for _, addr := range addrs {
		for _, org := range addr.UnifiedOrgs {
			uri := OrgURI(org)
			g.Add(uri, rdf.RDFType, rdf.WOSUnifiedOrganization)
			g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(org))

			countryURI, err := country.Resolve(addr.Country)
			if err != nil {
				m.log.Warn("omitting country relation",
					zap.String("uid", rec.UID()),
					zap.String("org", org),
					zap.String("country", addr.Country),
					zap.Error(err))
				continue
			}
			g.Add(uri, rdf.OBOLocatedIn, countryURI)
		}
	}
	return g, nil
}
