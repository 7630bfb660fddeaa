// Package wos parses Web of Science full-record XML payloads and
// exposes typed, read-only accessors over their fields.
//
// Optional fields resolve to explicit absent values ("" or nil), never
// to a default guess. A missing record id or summary block is a fatal
// parse error; everything downstream is derived lazily from the parsed
// tree and never mutates it.
package wos

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Record is a parsed WoS full record.
type Record struct {
	raw recordXML
}

// Parse reads one full-record XML payload. It fails if the record id or
// the summary metadata block is missing.
func Parse(data []byte) (*Record, error) {
	var raw recordXML
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Field: "record", Err: err}
	}
	if strings.TrimSpace(raw.UID) == "" {
		return nil, &ParseError{Field: "UID"}
	}
	raw.UID = strings.TrimSpace(raw.UID)
	if raw.StaticData.Summary == nil {
		return nil, &ParseError{UID: raw.UID, Field: "static_data/summary"}
	}
	return &Record{raw: raw}, nil
}

// UID returns the external record id.
func (r *Record) UID() string {
	return r.raw.UID
}

// DocTypes returns all document type tags on the record.
func (r *Record) DocTypes() []string {
	return trimmed(r.raw.StaticData.Summary.DocTypes)
}

// Title returns the item title, or "" when absent.
func (r *Record) Title() string {
	return r.title("item")
}

func (r *Record) title(kind string) string {
	for _, t := range r.raw.StaticData.Summary.Titles {
		if t.Type == kind {
			return strings.TrimSpace(t.Value)
		}
	}
	return ""
}

// PubDate returns the sortable publication date string, or "".
func (r *Record) PubDate() string {
	return r.raw.StaticData.Summary.PubInfo.SortDate
}

// Volume returns the volume designation, or "".
func (r *Record) Volume() string {
	return r.raw.StaticData.Summary.PubInfo.Volume
}

// Issue returns the issue designation, or "".
func (r *Record) Issue() string {
	return r.raw.StaticData.Summary.PubInfo.Issue
}

// Pages returns the begin and end page, either may be "".
func (r *Record) Pages() (begin, end string) {
	p := r.raw.StaticData.Summary.PubInfo.Page
	if p == nil {
		return "", ""
	}
	return p.Begin, p.End
}

// Source returns the venue descriptor block.
func (r *Record) Source() Source {
	return Source{
		UT:      r.raw.UID,
		BibID:   strings.TrimSpace(r.raw.StaticData.Item.BibID),
		ISSN:    r.Identifier("issn"),
		EISSN:   r.Identifier("eissn"),
		ISBN:    r.Identifier("isbn"),
		PubType: r.raw.StaticData.Summary.PubInfo.PubType,
		Title:   r.title("source"),
		Abbrev:  r.title("source_abbrev"),
	}
}

// Identifier returns the dynamic-data identifier of the given type
// (doi, issn, eissn, isbn, ...), or "".
func (r *Record) Identifier(idType string) string {
	for _, id := range r.raw.Dynamic.Identifiers {
		if id.Type == idType {
			return id.Value
		}
	}
	return ""
}

// DOI returns the record's DOI, or "".
func (r *Record) DOI() string {
	return r.Identifier("doi")
}

// KeywordsPlus returns the index-curated keyword list.
func (r *Record) KeywordsPlus() []string {
	return trimmed(r.raw.StaticData.Item.KeywordsPlus)
}

// AuthorKeywords returns the author-supplied keyword list.
func (r *Record) AuthorKeywords() []string {
	return trimmed(r.raw.StaticData.Full.Keywords)
}

// Categories returns the traditional subject categories.
func (r *Record) Categories() []string {
	var out []string
	for _, s := range r.raw.StaticData.Full.Subjects {
		if s.ASCAType == "traditional" {
			out = append(out, strings.TrimSpace(s.Value))
		}
	}
	return out
}

// Abstract returns the abstract paragraphs joined by a space, or "".
func (r *Record) Abstract() string {
	return joinParagraphs(r.raw.StaticData.Full.Abstract)
}

// FundingAcknowledgement returns the funding text, or "".
func (r *Record) FundingAcknowledgement() string {
	return joinParagraphs(r.raw.StaticData.Full.FundText)
}

// Grants returns the funding acknowledgement grant entries. Agency may
// be empty; such entries are unusable for linking and callers skip
// them.
func (r *Record) Grants() []Grant {
	var out []Grant
	for _, g := range r.raw.StaticData.Full.Grants {
		out = append(out, Grant{
			Agency: strings.TrimSpace(g.Agency),
			IDs:    trimmed(g.IDs),
		})
	}
	return out
}

// Authors returns the author list in record order.
func (r *Record) Authors() []Author {
	var out []Author
	for _, n := range r.raw.StaticData.Summary.Names {
		out = append(out, Author{
			Rank:           n.SeqNo,
			DaisNG:         n.DaisNG,
			AddressNumbers: n.AddrNo,
			Reprint:        n.Reprint,
			Email:          strings.TrimSpace(n.Email),
			DisplayName:    strings.TrimSpace(n.DisplayName),
			FullName:       strings.TrimSpace(n.FullName),
			WosStandard:    strings.TrimSpace(n.WosStandard),
			First:          strings.TrimSpace(n.FirstName),
			Last:           strings.TrimSpace(n.LastName),
		})
	}
	return out
}

// Addresses returns the address list in record order. An address with
// more than one primary organization is schema drift and fails with
// ErrMultipleOrganizations.
func (r *Record) Addresses() ([]Address, error) {
	var out []Address
	for _, a := range r.raw.StaticData.Full.Addresses {
		spec := a.Spec
		var orgs, unified []string
		for _, org := range spec.Orgs {
			name := strings.TrimSpace(org.Value)
			if org.Pref == "Y" {
				unified = append(unified, name)
			} else {
				orgs = append(orgs, name)
			}
		}
		if len(orgs) > 1 {
			return nil, fmt.Errorf("record %s address %s: %w",
				r.raw.UID, spec.AddrNo, ErrMultipleOrganizations)
		}
		org := NoOrganization
		if len(orgs) == 1 {
			org = orgs[0]
		}
		subOrgs := trimmed(spec.SubOrgs)
		if len(subOrgs) == 0 {
			subOrgs = []string{DepartmentUnknown}
		}
		out = append(out, Address{
			Number:           spec.AddrNo,
			FullAddress:      strings.TrimSpace(spec.FullAddress),
			Organization:     org,
			SubOrganizations: subOrgs,
			UnifiedOrgs:      unified,
			Country:          strings.TrimSpace(spec.Country),
		})
	}
	return out, nil
}

// ReferenceCount returns the cited reference count, 0 when absent.
func (r *Record) ReferenceCount() int {
	if r.raw.StaticData.Full.Refs == nil {
		return 0
	}
	return r.raw.StaticData.Full.Refs.Count
}

// CitationCount returns the times-cited count, 0 when absent.
func (r *Record) CitationCount() int {
	if r.raw.Dynamic.SiloTC == nil {
		return 0
	}
	return r.raw.Dynamic.SiloTC.LocalCount
}

func trimmed(in []string) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func joinParagraphs(ps []string) string {
	var parts []string
	for _, p := range ps {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
