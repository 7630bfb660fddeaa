package rdf

// Namespace prefixes for the vocabularies used in the mapped graphs.
const (
	// DataNS is the namespace for individuals minted by rap-etl.
	DataNS = "http://localhost/data/individual/"

	RDFNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNS = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNS  = "http://www.w3.org/2001/XMLSchema#"
	BIBONS = "http://purl.org/ontology/bibo/"
	VIVONS = "http://vivoweb.org/ontology/core#"
	OBONS  = "http://purl.obolibrary.org/obo/"
	WOSNS  = "http://webofscience.com/ontology/wos#"

	// GeoNS holds the FAO geopolitical country references.
	GeoNS = "http://aims.fao.org/aos/geopolitical.owl#"
)

// D mints an individual IRI in the data namespace from a local name.
func D(localName string) IRI {
	return IRI(DataNS + localName)
}

// Core RDF/RDFS terms.
const (
	RDFType   = IRI(RDFNS + "type")
	RDFSLabel = IRI(RDFSNS + "label")
)

// XSD datatypes.
const (
	XSDInteger  = IRI(XSDNS + "integer")
	XSDDateTime = IRI(XSDNS + "dateTime")
)

// BIBO terms.
const (
	BIBOJournal   = IRI(BIBONS + "Journal")
	BIBOBook      = IRI(BIBONS + "Book")
	BIBOAbstract  = IRI(BIBONS + "abstract")
	BIBOVolume    = IRI(BIBONS + "volume")
	BIBOIssue     = IRI(BIBONS + "issue")
	BIBOPageStart = IRI(BIBONS + "pageStart")
	BIBOPageEnd   = IRI(BIBONS + "pageEnd")
	BIBODOI       = IRI(BIBONS + "doi")
	BIBOISSN      = IRI(BIBONS + "issn")
	BIBOEISSN     = IRI(BIBONS + "eissn")
	BIBOISBN      = IRI(BIBONS + "isbn")
)

// VIVO terms.
const (
	VIVOAuthorship            = IRI(VIVONS + "Authorship")
	VIVODateTimeValue         = IRI(VIVONS + "DateTimeValue")
	VIVORelates               = IRI(VIVONS + "relates")
	VIVORank                  = IRI(VIVONS + "rank")
	VIVODateTime              = IRI(VIVONS + "dateTime")
	VIVODateTimePrecision     = IRI(VIVONS + "dateTimePrecision")
	VIVOYearMonthDayPrecision = IRI(VIVONS + "yearMonthDayPrecision")
	VIVOHasPublicationVenue   = IRI(VIVONS + "hasPublicationVenue")
	VIVODateTimeValueProp     = IRI(VIVONS + "dateTimeValue")
)

// OBO terms.
const (
	// OBOLocatedIn is RO_0001025, "located in".
	OBOLocatedIn = IRI(OBONS + "RO_0001025")
)

// WOS ontology terms for entities the standard ontologies do not cover.
const (
	WOSPublication         = IRI(WOSNS + "Publication")
	WOSAddress             = IRI(WOSNS + "Address")
	WOSSubOrganization     = IRI(WOSNS + "SubOrganization")
	WOSUnifiedOrganization = IRI(WOSNS + "UnifiedOrganization")
	WOSConference          = IRI(WOSNS + "Conference")
	WOSCategory            = IRI(WOSNS + "Category")
	WOSKeywordPlus         = IRI(WOSNS + "KeywordPlus")
	WOSAuthorKeyword       = IRI(WOSNS + "AuthorKeyword")
	WOSFunder              = IRI(WOSNS + "Funder")
	WOSGrant               = IRI(WOSNS + "Grant")

	WOSWosID            = IRI(WOSNS + "wosId")
	WOSFullName         = IRI(WOSNS + "fullName")
	WOSDisplayName      = IRI(WOSNS + "displayName")
	WOSStandardName     = IRI(WOSNS + "standardName")
	WOSFirstName        = IRI(WOSNS + "firstName")
	WOSLastName         = IRI(WOSNS + "lastName")
	WOSEmail            = IRI(WOSNS + "email")
	WOSDaisNg           = IRI(WOSNS + "daisNg")
	WOSReprint          = IRI(WOSNS + "reprint")
	WOSOrganizationName = IRI(WOSNS + "organizationName")
	WOSSubOrgName       = IRI(WOSNS + "subOrganizationName")
	WOSSequenceNumber   = IRI(WOSNS + "sequenceNumber")
	WOSJournalAbbr      = IRI(WOSNS + "journalAbbr")
	WOSFundingText      = IRI(WOSNS + "fundingText")
	WOSReferenceCount   = IRI(WOSNS + "referenceCount")
	WOSCitationCount    = IRI(WOSNS + "citationCount")
	WOSGrantID          = IRI(WOSNS + "grantId")
	WOSHasCategory      = IRI(WOSNS + "hasCategory")
	WOSHasKeywordPlus   = IRI(WOSNS + "hasKeywordPlus")
	WOSHasAuthorKeyword = IRI(WOSNS + "hasAuthorKeyword")
	WOSCountryCode      = IRI(WOSNS + "countryCode")
	WOSWaanID           = IRI(WOSNS + "waanId")
	WOSURL              = IRI(WOSNS + "url")
	WOSNumber           = IRI(WOSNS + "number")
	WOSYear             = IRI(WOSNS + "year")

	WOSInCitesPubPerYear   = IRI(WOSNS + "InCitesPubPerYear")
	WOSInCitesCitesPerYear = IRI(WOSNS + "InCitesCitesPerYear")
	WOSInCitesTopCategory  = IRI(WOSNS + "InCitesTopCategory")
)
