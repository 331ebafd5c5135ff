package canon

import "strings"

// stateAbbrevs maps the lowercase USPS abbreviation to the state slug used
// by the site's location pages.
var stateAbbrevs = map[string]string{
	"al": "alabama", "ak": "alaska", "az": "arizona", "ar": "arkansas", "ca": "california",
	"co": "colorado", "ct": "connecticut", "de": "delaware", "dc": "district-of-columbia",
	"fl": "florida", "ga": "georgia", "hi": "hawaii", "id": "idaho", "il": "illinois",
	"in": "indiana", "ia": "iowa", "ks": "kansas", "ky": "kentucky", "la": "louisiana",
	"me": "maine", "md": "maryland", "ma": "massachusetts", "mi": "michigan", "mn": "minnesota",
	"ms": "mississippi", "mo": "missouri", "mt": "montana", "ne": "nebraska", "nv": "nevada",
	"nh": "new-hampshire", "nj": "new-jersey", "nm": "new-mexico", "ny": "new-york",
	"nc": "north-carolina", "nd": "north-dakota", "oh": "ohio", "ok": "oklahoma", "or": "oregon",
	"pa": "pennsylvania", "ri": "rhode-island", "sc": "south-carolina", "sd": "south-dakota",
	"tn": "tennessee", "tx": "texas", "ut": "utah", "vt": "vermont", "va": "virginia",
	"wa": "washington", "wv": "west-virginia", "wi": "wisconsin", "wy": "wyoming",
}

// allStates lists the state slugs in alphabetical order.
var allStates = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado", "connecticut",
	"delaware", "district-of-columbia", "florida", "georgia", "hawaii", "idaho", "illinois",
	"indiana", "iowa", "kansas", "kentucky", "louisiana", "maine", "maryland", "massachusetts",
	"michigan", "minnesota", "mississippi", "missouri", "montana", "nebraska", "nevada",
	"new-hampshire", "new-jersey", "new-mexico", "new-york", "north-carolina", "north-dakota",
	"ohio", "oklahoma", "oregon", "pennsylvania", "rhode-island", "south-carolina",
	"south-dakota", "tennessee", "texas", "utah", "vermont", "virginia", "washington",
	"west-virginia", "wisconsin", "wyoming",
}

var stateSet = make(map[string]struct{}, len(allStates))

func init() {
	for _, s := range allStates {
		stateSet[s] = struct{}{}
	}
}

// StateFromAbbrev returns the state slug for a two-letter abbreviation.
func StateFromAbbrev(abbr string) (string, bool) {
	s, ok := stateAbbrevs[strings.ToLower(abbr)]
	return s, ok
}

// IsState reports whether slug names a state (full hyphenated name).
func IsState(slug string) bool {
	_, ok := stateSet[slug]
	return ok
}

// Abbreviations returns a copy of the abbreviation table.
func Abbreviations() map[string]string {
	out := make(map[string]string, len(stateAbbrevs))
	for k, v := range stateAbbrevs {
		out[k] = v
	}
	return out
}
