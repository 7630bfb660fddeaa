package mapper

import (
	"errors"
	"strings"
	"testing"

	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
	"github.com/RAP-research-output-impact/rap-etl/internal/wos"
)

const testRecord = `<REC xmlns="http://scientific.thomsonreuters.com/schema/wok5.4/public/FullRecord">
  <UID>WOS:000123456700001</UID>
  <static_data>
    <summary>
      <pub_info pubtype="Journal" sortdate="2015-03-01" vol="12" issue="3">
        <page begin="100" end="112"/>
      </pub_info>
      <titles>
        <title type="source">JOURNAL OF TESTING</title>
        <title type="source_abbrev">J TEST</title>
        <title type="item">A study of things</title>
      </titles>
      <doctypes>
        <doctype>Article</doctype>
      </doctypes>
      <names>
        <name seq_no="1" addr_no="1" daisng_id="1000001" reprint="Y">
          <display_name>Jensen, Lars</display_name>
          <full_name>Jensen, Lars</full_name>
          <wos_standard>Jensen, L</wos_standard>
          <first_name>Lars</first_name>
          <last_name>Jensen</last_name>
          <email_addr>lars@example.org</email_addr>
        </name>
        <name seq_no="2" addr_no="1">
          <display_name>Smith, Ann</display_name>
          <full_name>Smith, Ann</full_name>
          <wos_standard>Smith, A</wos_standard>
          <first_name>Ann</first_name>
          <last_name>Smith</last_name>
        </name>
        <name seq_no="3">
          <display_name>Petersen, Bo</display_name>
        </name>
      </names>
    </summary>
    <fullrecord_metadata>
      <addresses>
        <address_name>
          <address_spec addr_no="1">
            <full_address>Tech Univ Denmark, Dept Phys, DK-2800 Lyngby, Denmark</full_address>
            <organizations>
              <organization>Tech Univ Denmark</organization>
              <organization pref="Y">Technical University of Denmark</organization>
            </organizations>
            <country>Denmark</country>
          </address_spec>
        </address_name>
        <address_name>
          <address_spec addr_no="2">
            <full_address>Univ Abidjan, Abidjan, Ivory Coast</full_address>
            <organizations>
              <organization>Univ Abidjan</organization>
              <organization pref="Y">University of Abidjan</organization>
            </organizations>
            <suborganizations>
              <suborganization>Dept Biol</suborganization>
            </suborganizations>
            <country>IVORY COAST</country>
          </address_spec>
        </address_name>
      </addresses>
      <category_info>
        <subjects>
          <subject ascatype="traditional">Physics, Applied</subject>
        </subjects>
      </category_info>
      <keywords>
        <keyword>measurement</keyword>
      </keywords>
      <fund_ack>
        <grants>
          <grant>
            <grant_agency>Danish Research Council</grant_agency>
            <grant_ids>
              <grant_id>DFF-1234</grant_id>
            </grant_ids>
          </grant>
          <grant>
            <grant_ids>
              <grant_id>55</grant_id>
            </grant_ids>
          </grant>
        </grants>
      </fund_ack>
      <refs count="42"/>
    </fullrecord_metadata>
    <item>
      <keywords_plus>
        <keyword>SYSTEMS</keyword>
      </keywords_plus>
    </item>
  </static_data>
  <dynamic_data>
    <cluster_related>
      <identifiers>
        <identifier type="issn" value="1234-5678"/>
        <identifier type="doi" value="10.1000/test.2015.001"/>
      </identifiers>
    </cluster_related>
    <citation_related>
      <tc_list>
        <silo_tc local_count="7"/>
      </tc_list>
    </citation_related>
  </dynamic_data>
</REC>`

func mustParse(t *testing.T, raw string) *wos.Record {
	t.Helper()
	rec, err := wos.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return rec
}

func TestAllDeterministic(t *testing.T) {
	m := New(nil)
	rec := mustParse(t, testRecord)

	first, err := m.All(rec)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	second, err := m.All(mustParse(t, testRecord))
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if !first.Equal(second) {
		t.Error("mapping the same record twice produced different graphs")
	}

	var a, b strings.Builder
	if err := rdf.Write(&a, first); err != nil {
		t.Fatal(err)
	}
	if err := rdf.Write(&b, second); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("serialized graphs are not byte identical")
	}
}

func TestPublicationCore(t *testing.T) {
	m := New(nil)
	g, err := m.Publication(mustParse(t, testRecord))
	if err != nil {
		t.Fatalf("Publication: %v", err)
	}

	uri := PubURI("WOS:000123456700001")
	if uri != rdf.D("pub-WOS000123456700001") {
		t.Errorf("PubURI = %s", uri)
	}
	if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.RDFType, Object: rdf.IRI(rdf.WOSNS + "Article")}) {
		t.Error("missing Article type tag")
	}
	if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.BIBODOI, Object: rdf.NewLiteral("10.1000/test.2015.001")}) {
		t.Error("missing DOI")
	}
	if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.WOSCitationCount, Object: rdf.NewIntLiteral(7)}) {
		t.Error("missing citation count")
	}

	dateURI := DateURI("WOS:000123456700001", "2015-03-01")
	if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.VIVODateTimeValueProp, Object: dateURI}) {
		t.Error("missing publication date relation")
	}
	if !g.Has(rdf.Triple{Subject: dateURI, Predicate: rdf.VIVODateTime, Object: rdf.NewDateTimeLiteral("2015-03-01T00:00:00")}) {
		t.Error("missing dateTime literal")
	}
}

func TestUnknownDocTypeFallsBack(t *testing.T) {
	raw := strings.Replace(testRecord,
		"<doctype>Article</doctype>",
		"<doctype>Hologram</doctype>", 1)
	m := New(nil)
	g, err := m.Publication(mustParse(t, raw))
	if err != nil {
		t.Fatalf("Publication: %v", err)
	}
	uri := PubURI("WOS:000123456700001")
	if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.RDFType, Object: rdf.WOSPublication}) {
		t.Error("unrecognized document type should fall back to the generic tag")
	}
}

func TestAuthorshipsShareAddress(t *testing.T) {
	m := New(nil)
	rec := mustParse(t, testRecord)
	g, err := m.Authorships(rec)
	if err != nil {
		t.Fatalf("Authorships: %v", err)
	}

	addrURI := AddressURI("Tech Univ Denmark, Dept Phys, DK-2800 Lyngby, Denmark", "1")
	first := AuthorshipURI(rec.UID(), "1")
	second := AuthorshipURI(rec.UID(), "2")
	for _, aship := range []rdf.IRI{first, second} {
		if !g.Has(rdf.Triple{Subject: aship, Predicate: rdf.VIVORelates, Object: addrURI}) {
			t.Errorf("%s should relate to the shared address", aship.LocalName())
		}
	}

	// The third author has no address reference and relates only to
	// the publication.
	third := AuthorshipURI(rec.UID(), "3")
	if len(g.Objects(third, rdf.VIVORelates)) != 1 {
		t.Errorf("author without addresses should relate only to the publication")
	}

	if !g.Has(rdf.Triple{Subject: first, Predicate: rdf.WOSReprint, Object: rdf.NewLiteral("Y")}) {
		t.Error("missing reprint flag")
	}
}

func TestSubOrgSentinelLabel(t *testing.T) {
	m := New(nil)
	g, err := m.SubOrgs(mustParse(t, testRecord))
	if err != nil {
		t.Fatalf("SubOrgs: %v", err)
	}

	label := "Department Unknown, Tech Univ Denmark"
	uri := SubOrgURI(label)
	if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.RDFSLabel, Object: rdf.NewLiteral(label)}) {
		t.Errorf("expected sentinel sub-organization label %q", label)
	}
}

func TestAddressesRelateOrgs(t *testing.T) {
	m := New(nil)
	g, err := m.Addresses(mustParse(t, testRecord))
	if err != nil {
		t.Fatalf("Addresses: %v", err)
	}

	addrURI := AddressURI("Tech Univ Denmark, Dept Phys, DK-2800 Lyngby, Denmark", "1")
	if !g.Has(rdf.Triple{Subject: addrURI, Predicate: rdf.VIVORelates, Object: OrgURI("Technical University of Denmark")}) {
		t.Error("address should relate to its unified organization")
	}
	if !g.Has(rdf.Triple{Subject: addrURI, Predicate: rdf.VIVORelates, Object: PubURI("WOS:000123456700001")}) {
		t.Error("address should relate to the publication")
	}
}

func TestUnifiedOrgCountries(t *testing.T) {
	m := New(nil)
	g, err := m.UnifiedOrgs(mustParse(t, testRecord))
	if err != nil {
		t.Fatalf("UnifiedOrgs: %v", err)
	}

	dtu := OrgURI("Technical University of Denmark")
	if !g.Has(rdf.Triple{Subject: dtu, Predicate: rdf.OBOLocatedIn, Object: rdf.IRI(rdf.GeoNS + "Denmark")}) {
		t.Error("DTU should be located in Denmark")
	}

	abidjan := OrgURI("University of Abidjan")
	if !g.Has(rdf.Triple{Subject: abidjan, Predicate: rdf.OBOLocatedIn, Object: rdf.IRI(rdf.GeoNS + "Cote_d_Ivoire")}) {
		t.Error("IVORY COAST should resolve to the Cote d'Ivoire reference")
	}
}

func TestUnresolvedCountryOmitsRelation(t *testing.T) {
	raw := strings.Replace(testRecord, "<country>Denmark</country>", "<country>Atlantis</country>", 1)
	m := New(nil)
	g, err := m.UnifiedOrgs(mustParse(t, raw))
	if err != nil {
		t.Fatalf("UnifiedOrgs: %v", err)
	}

	dtu := OrgURI("Technical University of Denmark")
	if len(g.Objects(dtu, rdf.OBOLocatedIn)) != 0 {
		t.Error("unresolved country should omit the location relation")
	}
	if !g.Has(rdf.Triple{Subject: dtu, Predicate: rdf.RDFType, Object: rdf.WOSUnifiedOrganization}) {
		t.Error("organization entity should still be produced")
	}
}

func TestGrantsSkipMissingAgency(t *testing.T) {
	m := New(nil)
	g := m.Grants(mustParse(t, testRecord))

	funder := rdf.D("funder-danish-research-council")
	if !g.Has(rdf.Triple{Subject: funder, Predicate: rdf.RDFType, Object: rdf.WOSFunder}) {
		t.Error("missing funder entity")
	}

	grant := rdf.D("grant-danish-research-council-dff-1234")
	if !g.Has(rdf.Triple{Subject: grant, Predicate: rdf.WOSGrantID, Object: rdf.NewLiteral("DFF-1234")}) {
		t.Error("missing grant id")
	}

	// The agency-less grant with id 55 produces nothing.
	for _, tr := range g.Triples() {
		if lit, ok := tr.Object.(rdf.Literal); ok && lit.Value == "55" {
			t.Errorf("agency-less grant should be skipped, found %v", tr)
		}
	}
}

func TestVenueTypes(t *testing.T) {
	tests := []struct {
		name    string
		pubType string
		want    rdf.IRI
	}{
		{"journal", "Journal", rdf.BIBOJournal},
		{"book in series", "Book in series", rdf.BIBOBook},
		{"books", "Books", rdf.BIBOBook},
	}
	m := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := strings.Replace(testRecord, `pubtype="Journal"`, `pubtype="`+tt.pubType+`"`, 1)
			g, err := m.Venue(mustParse(t, raw))
			if err != nil {
				t.Fatalf("Venue: %v", err)
			}
			uri := VenueURI(mustParse(t, raw).Source())
			if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.RDFType, Object: tt.want}) {
				t.Errorf("venue type = %v, want %s", g.Objects(uri, rdf.RDFType), tt.want)
			}
		})
	}
}

func TestVenueBookWithProceedingsPaperIsConference(t *testing.T) {
	raw := strings.Replace(testRecord, `pubtype="Journal"`, `pubtype="Book"`, 1)
	raw = strings.Replace(raw, "<doctype>Article</doctype>", "<doctype>Proceedings Paper</doctype>", 1)
	m := New(nil)
	g, err := m.Venue(mustParse(t, raw))
	if err != nil {
		t.Fatalf("Venue: %v", err)
	}
	uri := VenueURI(mustParse(t, raw).Source())
	if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.RDFType, Object: rdf.WOSConference}) {
		t.Error("book publication type with Proceedings Paper should map to Conference")
	}
}

func TestVenueUnknownTypeFatal(t *testing.T) {
	raw := strings.Replace(testRecord, `pubtype="Journal"`, `pubtype="Hologram"`, 1)
	m := New(nil)
	_, err := m.Venue(mustParse(t, raw))
	if !errors.Is(err, ErrUnknownVenueType) {
		t.Errorf("err = %v, want ErrUnknownVenueType", err)
	}
}

func TestVenueIdentityStableAcrossRecords(t *testing.T) {
	a := mustParse(t, testRecord)
	b := mustParse(t, strings.Replace(testRecord, "WOS:000123456700001", "WOS:000999999900009", 1))
	if VenueURI(a.Source()) != VenueURI(b.Source()) {
		t.Error("records sharing a source should mint the same venue identity")
	}
}

func TestJournalCategories(t *testing.T) {
	m := New(nil)
	venues, err := m.Venue(mustParse(t, testRecord))
	if err != nil {
		t.Fatalf("Venue: %v", err)
	}

	g := JournalCategories(venues, map[string][]string{
		"1234-5678": {"Physics, Applied"},
	})
	uri := VenueURI(mustParse(t, testRecord).Source())
	if !g.Has(rdf.Triple{Subject: uri, Predicate: rdf.WOSHasCategory, Object: CategoryURI("Physics, Applied")}) {
		t.Error("venue should relate to its category via ISSN")
	}
}
