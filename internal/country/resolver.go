// Package country resolves raw Web of Science country strings to
// canonical country references.
//
// Most WoS country names line up with the FAO geopolitical vocabulary
// once slugified; the tables in tables.go carry the index-specific
// spellings that do not, plus a few jurisdictions absent from the
// canonical set entirely.
package country

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RAP-research-output-impact/rap-etl/internal/identity"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
)

// ErrUnresolved indicates no canonical reference exists for a country
// string. Callers log and omit the country relation; a reference is
// never fabricated for an unknown country.
var ErrUnresolved = errors.New("unresolved country")

// Resolve maps a raw country string to a canonical country reference.
//
// Lookup order: the override table keyed by the exact raw string, then
// the replacement table keyed by the slugified form, then the slug
// itself for the common case where index and canonical naming coincide.
// Jurisdictions absent from the canonical set resolve through the
// added-countries table; anything else fails with ErrUnresolved.
func Resolve(raw string) (rdf.IRI, error) {
	name, ok := rawOverride[strings.TrimSpace(raw)]
	if !ok {
		s := identity.Slug(raw)
		if s == "" {
			return "", fmt.Errorf("%w: %q", ErrUnresolved, raw)
		}
		if name, ok = countryReplace[s]; !ok {
			name = canonicalFromSlug(s)
		}
	}
	if uri, ok := addedCountries[name]; ok {
		return uri, nil
	}
	if _, ok := knownCountries[name]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnresolved, raw)
	}
	return rdf.IRI(rdf.GeoNS + name), nil
}

// OrgOverride returns the canonical country reference for organizations
// whose WoS addresses carry no usable country, keyed by the unified
// organization slug (e.g. "org-euratom").
func OrgOverride(orgLocalName string) (rdf.IRI, bool) {
	name, ok := orgCountryOverride[orgLocalName]
	if !ok {
		return "", false
	}
	return rdf.IRI(rdf.GeoNS + name), true
}

// canonicalFromSlug converts a hyphen slug to the FAO local-name style:
// each token capitalized, joined by underscores ("new-zealand" ->
// "New_Zealand").
func canonicalFromSlug(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "_")
}
