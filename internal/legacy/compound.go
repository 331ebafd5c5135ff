package legacy

import (
	"strings"

	"github.com/cskerritt/kweconomics-sub000/internal/canon"
)

// parseCityState splits a compound token such as jersey-city-nj or
// cherry-hill-new-jersey into city and state and builds the service-scoped
// city path. A token that is only a state maps to the state page.
func parseCityState(loc, slug string) *Redirect {
	tokens := strings.Split(loc, "-")
	n := len(tokens)
	if n >= 2 {
		if state, ok := canon.StateFromAbbrev(tokens[n-1]); ok {
			if city := join(tokens[:n-1]); city != "" {
				return permanent(servicePath(slug, state, city))
			}
		}
	}
	if n >= 3 {
		if state := join(tokens[n-2:]); canon.IsState(state) {
			if city := join(tokens[:n-2]); city != "" {
				return permanent(servicePath(slug, state, city))
			}
		}
	}
	return ResolveLocation(loc)
}

// resolveCityPage handles the old locations/cities/{slug} pages, whose slugs
// look like laredo-tx-tx-vocational-expert: a city, one or more repeated
// state abbreviations and an optional service phrase.
func resolveCityPage(seg string) *Redirect {
	seg = strings.ReplaceAll(seg, "_", "-")
	slug, rest := stripServicePhrase(seg)
	city, state := splitCityState(strings.Split(rest, "-"))
	switch {
	case state == "" && slug != "":
		return permanent(servicePath(slug))
	case state == "":
		return permanent("/locations")
	case city == "":
		return permanent("/" + state)
	case slug == "":
		return permanent("/" + state + "/" + city)
	default:
		return permanent(servicePath(slug, state, city))
	}
}

// stripServicePhrase removes the first known service phrase found in seg
// and returns the matching service slug with the remaining text.
func stripServicePhrase(seg string) (slug, rest string) {
	for _, phrase := range servicePhrases {
		i := strings.Index(seg, phrase)
		if i < 0 {
			continue
		}
		slug, _ = ServiceSlug(phrase)
		rest = seg[:i] + "-" + seg[i+len(phrase):]
		return slug, join(strings.FieldsFunc(rest, func(r rune) bool { return r == '-' }))
	}
	return "", seg
}

// cityState is the accumulator for splitCityState's right-to-left fold.
type cityState struct {
	state  string
	inCity bool
	city   []string // reversed
}

func (acc cityState) step(token string) cityState {
	if token == "" {
		return acc
	}
	if !acc.inCity {
		if state, ok := canon.StateFromAbbrev(token); ok {
			if acc.state == "" {
				acc.state = state
			}
			return acc
		}
		acc.inCity = true
	}
	acc.city = append(acc.city, token)
	return acc
}

// splitCityState folds tokens from the right. The rightmost state
// abbreviation becomes the state; abbreviations between it and the first
// non-abbreviation token are dropped as duplicates. Without a trailing
// abbreviation a trailing full state name is accepted instead.
func splitCityState(tokens []string) (city, state string) {
	var acc cityState
	for i := len(tokens) - 1; i >= 0; i-- {
		acc = acc.step(tokens[i])
	}
	words := make([]string, len(acc.city))
	for i, t := range acc.city {
		words[len(words)-1-i] = t
	}
	if acc.state != "" {
		return join(words), acc.state
	}
	for _, width := range []int{3, 2, 1} {
		if len(words) < width {
			continue
		}
		if name := join(words[len(words)-width:]); canon.IsState(name) {
			return join(words[:len(words)-width]), name
		}
	}
	return join(words), ""
}
