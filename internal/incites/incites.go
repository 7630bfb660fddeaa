// Package incites maps per-organization citation metrics exported from
// the InCites API to entity graphs. Metrics arrive as JSON files on
// disk, one file per organization per metric kind, keyed by the
// organization's slug identity.
package incites

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/RAP-research-output-impact/rap-etl/internal/identity"
	"github.com/RAP-research-output-impact/rap-etl/internal/mapper"
	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
)

// YearCount is one metric observation.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// CategoryCounts is one subject category's observations over years.
type CategoryCounts struct {
	Category string      `json:"category"`
	Counts   []YearCount `json:"counts"`
}

// Mapper converts InCites metric exports for named organizations into
// graphs. Root is the directory holding the per-kind export
// subdirectories (total, cites, categories-by-year).
type Mapper struct {
	root string
	log  *zap.Logger
}

// New returns a Mapper reading exports under root.
func New(root string, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{root: root, log: log}
}

// load reads one organization's export file for a metric kind into
// out. A missing or empty file is not an error: not every organization
// has metrics, so it is logged and out is left empty.
func (m *Mapper) load(kind, orgName string, out any) error {
	path := filepath.Join(m.root, kind, "org-"+identity.Slug(orgName)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			m.log.Warn("no metrics file for organization",
				zap.String("org", orgName),
				zap.String("path", path))
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// yearEntity adds the statements shared by per-year metric entities.
func yearEntity(g *rdf.Graph, uri rdf.IRI, etype rdf.IRI, label string, yc YearCount, orgURI rdf.IRI) {
	g.Add(uri, rdf.RDFType, etype)
	g.Add(uri, rdf.RDFSLabel, rdf.NewLiteral(label))
	g.Add(uri, rdf.WOSNumber, rdf.NewIntLiteral(yc.Count))
	g.Add(uri, rdf.WOSYear, rdf.NewIntLiteral(yc.Year))
	g.Add(orgURI, rdf.VIVORelates, uri)
}

// PubCounts maps each organization's publications-per-year series.
func (m *Mapper) PubCounts(orgs []string) (*rdf.Graph, error) {
	g := rdf.NewGraph()
	for _, name := range orgs {
		var counts []YearCount
		if err := m.load("total", name, &counts); err != nil {
			return nil, err
		}
		orgURI := mapper.OrgURI(name)
		for _, yc := range counts {
			uri := rdf.D("pubcount-" + orgURI.LocalName() + "-" + strconv.Itoa(yc.Year))
			label := fmt.Sprintf("%d - %d", yc.Year, yc.Count)
			yearEntity(g, uri, rdf.WOSInCitesPubPerYear, label, yc, orgURI)
		}
	}
	return g, nil
}

// CiteCounts maps each organization's citations-per-year series.
func (m *Mapper) CiteCounts(orgs []string) (*rdf.Graph, error) {
	g := rdf.NewGraph()
	for _, name := range orgs {
		var counts []YearCount
		if err := m.load("cites", name, &counts); err != nil {
			return nil, err
		}
		orgURI := mapper.OrgURI(name)
		for _, yc := range counts {
			uri := rdf.D("citecount-" + orgURI.LocalName() + "-" + strconv.Itoa(yc.Year))
			label := fmt.Sprintf("%d - %d", yc.Year, yc.Count)
			yearEntity(g, uri, rdf.WOSInCitesCitesPerYear, label, yc, orgURI)
		}
	}
	return g, nil
}

// TopCategories maps each organization's leading subject categories by
// year, relating each observation to both the organization and the
// category entity.
func (m *Mapper) TopCategories(orgs []string) (*rdf.Graph, error) {
	g := rdf.NewGraph()
	for _, name := range orgs {
		var cats []CategoryCounts
		if err := m.load("categories-by-year", name, &cats); err != nil {
			return nil, err
		}
		orgURI := mapper.OrgURI(name)
		for _, cat := range cats {
			catURI := mapper.CategoryURI(cat.Category)
			for _, yc := range cat.Counts {
				uri := rdf.D("topcategory-" + orgURI.LocalName() + "-" +
					identity.Slug(cat.Category) + "-" + strconv.Itoa(yc.Year))
				label := fmt.Sprintf("%s - %s", name, cat.Category)
				yearEntity(g, uri, rdf.WOSInCitesTopCategory, label, yc, orgURI)
				g.Add(uri, rdf.VIVORelates, catURI)
			}
		}
	}
	return g, nil
}

// Organizations extracts unified organization names from a previously
// mapped organization graph. It pairs each entity typed as a unified
// organization with its label.
func Organizations(g *rdf.Graph) []string {
	var names []string
	for _, t := range g.Triples() {
		if t.Predicate != rdf.RDFType || t.Object != rdf.Term(rdf.WOSUnifiedOrganization) {
			continue
		}
		for _, obj := range g.Objects(t.Subject, rdf.RDFSLabel) {
			if lit, ok := obj.(rdf.Literal); ok {
				names = append(names, lit.Value)
			}
		}
	}
	return names
}
