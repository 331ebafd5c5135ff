package legacy

import "github.com/cskerritt/kweconomics-sub000/internal/canon"

// ResolveLocation maps a bare state token, abbreviation first and then full
// name, to the state page. Metro areas and counties need a service to build
// a path, so callers check those themselves.
func ResolveLocation(token string) *Redirect {
	return firstOf(
		func() *Redirect { return abbrevPage(token) },
		func() *Redirect { return statePage(token) },
	)
}

func abbrevPage(token string) *Redirect {
	if state, ok := canon.StateFromAbbrev(token); ok {
		return permanent("/" + state)
	}
	return nil
}

func statePage(token string) *Redirect {
	if canon.IsState(token) {
		return permanent("/" + token)
	}
	return nil
}

func metroPage(token, slug string) *Redirect {
	if m, ok := metroAreas[token]; ok {
		return permanent(servicePath(slug, m.State, m.City))
	}
	return nil
}

func countyPage(token, slug string) *Redirect {
	if c, ok := counties[token]; ok {
		return permanent(servicePath(slug, c.State, c.City))
	}
	return nil
}

// stateOf accepts an abbreviation or a full state slug.
func stateOf(token string) (string, bool) {
	if state, ok := canon.StateFromAbbrev(token); ok {
		return state, true
	}
	if canon.IsState(token) {
		return token, true
	}
	return "", false
}
