package country

import "github.com/RAP-research-output-impact/rap-etl/internal/rdf"

// rawOverride maps exact raw country strings, as the citation index
// writes them, to canonical local names. These are the idiosyncratic
// spellings that no slug rule recovers.
var rawOverride = map[string]string{
	"UNITED STATES":        "United_States_of_America",
	"PEOPLES R CHINA":      "China",
	"RUSSIA":               "Russian_Federation__the",
	"VENEZUELA":            "Venezuela",
	"CZECH REPUBLIC":       "Czech_Republic_the",
	"IVORY COAST":          "Cote_d_Ivoire",
	"TAIWAN":               "Taiwan",
	"SOUTH KOREA":          "Republic_of_Korea__the",
	"VIETNAM":              "Viet_Nam",
	"IRAN":                 "Iran_Islamic_Rep_of_",
	"REPUBLIC OF GEORGIA":  "Georgia",
	"TANZANIA":             "United_Republic_of_Tanzania__the",
	"BOSNIA & HERZEGOVINA": "Bosnia_and_Herzegovina",
}

// countryReplace maps irregular slugs to canonical local names. Most
// slugs convert directly; these are the ones that do not.
var countryReplace = map[string]string{
	"belarus":              "Belarus",
	"bermuda":              "Bermuda",
	"bolivia":              "Bolivia",
	"bosnia-herceg":        "Bosnia_and_Herzegovina",
	"bosnia-herzegovina":   "Bosnia_and_Herzegovina",
	"brunei":               "Brunei_Darussalam",
	"byelarus":             "Belarus",
	"czech-republic":       "Czech_Republic_the",
	"costa-rica":           "Costa_Rica",
	"england":              "United_Kingdom_of_Great_Britain_and_Northern_Ireland__the",
	"fr-polynesia":         "French_Polynesia",
	"gambia":               "Gambia__the",
	"iran":                 "Iran_Islamic_Rep_of_",
	"ivory-coast":          "Cote_d_Ivoire",
	"libya":                "Libyan_Arab_Jamahiriya__the",
	"moldova":              "Republic_of_Moldova",
	"mongol-peo-rep":       "Mongolia",
	"netherlands":          "Netherlands_the",
	"niger":                "Niger_the",
	"north-ireland":        "United_Kingdom_of_Great_Britain_and_Northern_Ireland__the",
	"papua-n-guinea":       "Papua_New_Guinea",
	"peoples-r-china":      "China",
	"philippines":          "Philippines__the",
	"rep-of-georgia":       "Georgia",
	"republic-of-georgia":  "Georgia",
	"reunion":              "Reunion",
	"russia":               "Russian_Federation__the",
	"scotland":             "United_Kingdom_of_Great_Britain_and_Northern_Ireland__the",
	"south-korea":          "Republic_of_Korea__the",
	"sudan":                "Sudan_the",
	"tanzania":             "United_Republic_of_Tanzania__the",
	"u-arab-emirates":      "United_Arab_Emirates__the",
	"united-arab-emirates": "United_Arab_Emirates__the",
	"united-kingdom":       "United_Kingdom_of_Great_Britain_and_Northern_Ireland__the",
	"united-states":        "United_States_of_America",
	"usa":                  "United_States_of_America",
	"vietnam":              "Viet_Nam",
	"wales":                "United_Kingdom_of_Great_Britain_and_Northern_Ireland__the",
}

// addedCountries supplies references for jurisdictions absent from the
// canonical country set, minted in our own data namespace.
var addedCountries = map[string]rdf.IRI{
	"Greenland": rdf.D("country-greenland"),
	"Macedonia": rdf.D("country-macedonia"),
	"Taiwan":    rdf.D("country-taiwan"),
}

// knownCountries is the canonical country set. Resolution fails rather
// than fabricating a reference for names outside it.
var knownCountries = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range canonicalCountries {
		set[name] = struct{}{}
	}
	for _, name := range countryReplace {
		set[name] = struct{}{}
	}
	for _, name := range rawOverride {
		if _, added := addedCountries[name]; !added {
			set[name] = struct{}{}
		}
	}
	return set
}()

var canonicalCountries = []string{
	"Afghanistan",
	"Albania",
	"Algeria",
	"Andorra",
	"Angola",
	"Argentina",
	"Armenia",
	"Australia",
	"Austria",
	"Azerbaijan",
	"Bahamas",
	"Bahrain",
	"Bangladesh",
	"Barbados",
	"Belgium",
	"Belize",
	"Benin",
	"Bhutan",
	"Botswana",
	"Brazil",
	"Bulgaria",
	"Burkina_Faso",
	"Burundi",
	"Cambodia",
	"Cameroon",
	"Canada",
	"Cape_Verde",
	"Central_African_Republic",
	"Chad",
	"Chile",
	"China",
	"Colombia",
	"Comoros",
	"Congo",
	"Costa_Rica",
	"Croatia",
	"Cuba",
	"Cyprus",
	"Denmark",
	"Djibouti",
	"Dominica",
	"Dominican_Republic",
	"Ecuador",
	"Egypt",
	"El_Salvador",
	"Equatorial_Guinea",
	"Eritrea",
	"Estonia",
	"Ethiopia",
	"Fiji",
	"Finland",
	"France",
	"Gabon",
	"Georgia",
	"Germany",
	"Ghana",
	"Greece",
	"Grenada",
	"Guatemala",
	"Guinea",
	"Guinea_Bissau",
	"Guyana",
	"Haiti",
	"Honduras",
	"Hungary",
	"Iceland",
	"India",
	"Indonesia",
	"Iraq",
	"Ireland",
	"Israel",
	"Italy",
	"Jamaica",
	"Japan",
	"Jordan",
	"Kazakhstan",
	"Kenya",
	"Kiribati",
	"Kuwait",
	"Kyrgyzstan",
	"Laos",
	"Latvia",
	"Lebanon",
	"Lesotho",
	"Liberia",
	"Liechtenstein",
	"Lithuania",
	"Luxembourg",
	"Madagascar",
	"Malawi",
	"Malaysia",
	"Maldives",
	"Mali",
	"Malta",
	"Marshall_Islands",
	"Mauritania",
	"Mauritius",
	"Mexico",
	"Micronesia",
	"Monaco",
	"Mongolia",
	"Montenegro",
	"Morocco",
	"Mozambique",
	"Myanmar",
	"Namibia",
	"Nepal",
	"New_Caledonia",
	"New_Zealand",
	"Nicaragua",
	"Nigeria",
	"Norway",
	"Oman",
	"Pakistan",
	"Palau",
	"Panama",
	"Papua_New_Guinea",
	"Paraguay",
	"Peru",
	"Poland",
	"Portugal",
	"Qatar",
	"Romania",
	"Rwanda",
	"Samoa",
	"San_Marino",
	"Saudi_Arabia",
	"Senegal",
	"Serbia",
	"Seychelles",
	"Sierra_Leone",
	"Singapore",
	"Slovakia",
	"Slovenia",
	"Solomon_Islands",
	"Somalia",
	"South_Africa",
	"Spain",
	"Sri_Lanka",
	"Suriname",
	"Swaziland",
	"Sweden",
	"Switzerland",
	"Syria",
	"Tajikistan",
	"Thailand",
	"Togo",
	"Tonga",
	"Trinidad_Tobago",
	"Tunisia",
	"Turkey",
	"Turkmenistan",
	"Tuvalu",
	"Uganda",
	"Ukraine",
	"Uruguay",
	"Uzbekistan",
	"Vanuatu",
	"Venezuela",
	"Yemen",
	"Zambia",
	"Zimbabwe",
}
