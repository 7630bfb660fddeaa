package wos

// Source describes the venue block of a record: the journal, conference
// proceedings volume, or book the item appeared in.
type Source struct {
	UT      string
	BibID   string
	ISSN    string
	EISSN   string
	ISBN    string
	PubType string
	Title   string
	Abbrev  string
}

// Author is one entry of the record's author list. Rank is the
// authoritative per-record position. AddressNumbers is the raw
// whitespace-separated list of address numbers, empty when the record
// gives the author no address.
type Author struct {
	Rank           string
	DaisNG         string
	AddressNumbers string
	Reprint        string
	Email          string
	DisplayName    string
	FullName       string
	WosStandard    string
	First          string
	Last           string
}

// Address is one entry of the record's address list. SubOrganizations
// always has at least one entry: records listing none get the
// DepartmentUnknown sentinel so every address yields a sub-organization
// relation.
type Address struct {
	Number           string
	FullAddress      string
	Organization     string
	SubOrganizations []string
	UnifiedOrgs      []string
	Country          string
}

// Grant is a funding acknowledgement entry. Agency may be empty when
// the record names grant ids with no identifiable agency.
type Grant struct {
	Agency string
	IDs    []string
}

// DepartmentUnknown is the sentinel sub-organization label substituted
// when an address lists no sub-organization.
const DepartmentUnknown = "Department Unknown"

// NoOrganization is the placeholder organization name for addresses
// with no primary organization entry.
const NoOrganization = "n/a"

// xml wire structs below mirror the WoS FullRecord schema. Field tags
// use local names only; the record namespace is ignored.

type recordXML struct {
	UID        string        `xml:"UID"`
	StaticData staticDataXML `xml:"static_data"`
	Dynamic    dynamicXML    `xml:"dynamic_data"`
}

type staticDataXML struct {
	Summary *summaryXML `xml:"summary"`
	Full    fullXML     `xml:"fullrecord_metadata"`
	Item    itemXML     `xml:"item"`
}

type summaryXML struct {
	PubInfo  pubInfoXML `xml:"pub_info"`
	Titles   []titleXML `xml:"titles>title"`
	DocTypes []string   `xml:"doctypes>doctype"`
	Names    []nameXML  `xml:"names>name"`
}

type pubInfoXML struct {
	SortDate string   `xml:"sortdate,attr"`
	Volume   string   `xml:"vol,attr"`
	Issue    string   `xml:"issue,attr"`
	PubType  string   `xml:"pubtype,attr"`
	Page     *pageXML `xml:"page"`
}

type pageXML struct {
	Begin string `xml:"begin,attr"`
	End   string `xml:"end,attr"`
}

type titleXML struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type nameXML struct {
	SeqNo       string `xml:"seq_no,attr"`
	DaisNG      string `xml:"daisng_id,attr"`
	AddrNo      string `xml:"addr_no,attr"`
	Reprint     string `xml:"reprint,attr"`
	DisplayName string `xml:"display_name"`
	FullName    string `xml:"full_name"`
	WosStandard string `xml:"wos_standard"`
	FirstName   string `xml:"first_name"`
	LastName    string `xml:"last_name"`
	Email       string `xml:"email_addr"`
}

type fullXML struct {
	Addresses []addressNameXML `xml:"addresses>address_name"`
	Subjects  []subjectXML     `xml:"category_info>subjects>subject"`
	Keywords  []string         `xml:"keywords>keyword"`
	Abstract  []string         `xml:"abstracts>abstract>abstract_text>p"`
	FundText  []string         `xml:"fund_ack>fund_text>p"`
	Grants    []grantXML       `xml:"fund_ack>grants>grant"`
	Refs      *refsXML         `xml:"refs"`
}

type addressNameXML struct {
	Spec addressSpecXML `xml:"address_spec"`
}

type addressSpecXML struct {
	AddrNo      string    `xml:"addr_no,attr"`
	FullAddress string    `xml:"full_address"`
	Orgs        []orgXML  `xml:"organizations>organization"`
	SubOrgs     []string  `xml:"suborganizations>suborganization"`
	Country     string    `xml:"country"`
}

type orgXML struct {
	Pref  string `xml:"pref,attr"`
	Value string `xml:",chardata"`
}

type subjectXML struct {
	ASCAType string `xml:"ascatype,attr"`
	Value    string `xml:",chardata"`
}

type grantXML struct {
	Agency string   `xml:"grant_agency"`
	IDs    []string `xml:"grant_ids>grant_id"`
}

type refsXML struct {
	Count int `xml:"count,attr"`
}

type itemXML struct {
	BibID        string   `xml:"bib_id"`
	KeywordsPlus []string `xml:"keywords_plus>keyword"`
}

type dynamicXML struct {
	Identifiers []identifierXML `xml:"cluster_related>identifiers>identifier"`
	SiloTC      *siloTCXML      `xml:"citation_related>tc_list>silo_tc"`
}

type identifierXML struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

type siloTCXML struct {
	LocalCount int `xml:"local_count,attr"`
}
