package mapper

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/country"
	"github.com/RAP-research-output-impact/rap-etl/internal/identity"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
)

// OrgMeta is one row of the organization reference export: the WoS
// organization identifier, its unified name, the country taken from the
// headquarters address, and an optional homepage.
type OrgMeta struct {
	WaanID  string
	Name    string
	Country string
	URL     string
}

// ReadOrgEnhanced parses the tab-separated organization reference
// export. The country is the last comma-separated token of the address
// column.
func ReadOrgEnhanced(r io.Reader) ([]OrgMeta, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	var out []OrgMeta
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading organization file: %w", err)
		}
		if len(row) < 10 {
			continue
		}
		addr := row[6]
		rawCountry := addr
		if i := strings.LastIndex(addr, ","); i >= 0 {
			rawCountry = addr[i+1:]
		}
		out = append(out, OrgMeta{
			WaanID:  row[0],
			Name:    row[1],
			Country: strings.TrimSpace(rawCountry),
			URL:     row[9],
		})
	}
	return out, nil
}

// ReadCountryCodes parses the ISO country code CSV into a country-slug
// to alpha-3 code index.
func ReadCountryCodes(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading country code header: %w", err)
	}

	nameCol, codeCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "ISO4217-currency_country_name":
			nameCol = i
		case "ISO3166-1-Alpha-3":
			codeCol = i
		}
	}
	if nameCol < 0 || codeCol < 0 {
		return nil, fmt.Errorf("country code file missing name or code column: %v", header)
	}

	out := make(map[string]string)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading country code file: %w", err)
		}
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			continue
		}
		out[identity.Slug(name)] = row[codeCol]
	}
	return out, nil
}

// OrgAnnotations maps the organization reference rows to extra
// statements about unified organizations: the WoS identifier, homepage,
// ISO country code, and the canonical country location. An organization
// whose country cannot be resolved keeps its other annotations; the
// override table covers organizations with no usable address country.
func (m *Mapper) OrgAnnotations(metas []OrgMeta, codes map[string]string) *rdf.Graph {
	g := rdf.NewGraph()
	for _, meta := range metas {
		uri := OrgURI(meta.Name)
		g.Add(uri, rdf.WOSWaanID, rdf.NewLiteral(meta.WaanID))
		if meta.URL != "" {
			g.Add(uri, rdf.WOSURL, rdf.NewLiteral(meta.URL))
		}
		if code, ok := codes[identity.Slug(meta.Country)]; ok {
			g.Add(uri, rdf.WOSCountryCode, rdf.NewLiteral(code))
		}

		countryURI, err := country.Resolve(meta.Country)
		if err != nil {
			var ok bool
			countryURI, ok = country.OrgOverride(uri.LocalName())
			if !ok {
				m.log.Info("no country match for organization",
					zap.String("org", meta.Name),
					zap.String("country", meta.Country))
				continue
			}
		}
		g.Add(uri, rdf.OBOLocatedIn, countryURI)
	}
	return g
}
