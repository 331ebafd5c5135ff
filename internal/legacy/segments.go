package legacy

import (
	"strings"

	"github.com/cskerritt/kweconomics-sub000/internal/canon"
)

var delimiters = []string{"-", "_"}

// resolveCombined handles a single segment that packs a service and a
// location together, e.g. philadelphia-metro-economist or
// forensic-economist-california. Each delimiter is tried in turn; within a
// delimiter the location-first reading is preferred over service-first.
func resolveCombined(seg string) *Redirect {
	for _, d := range delimiters {
		parts := strings.Split(seg, d)
		if len(parts) < 2 {
			continue
		}
		r := firstOf(
			func() *Redirect { return tag(locationFirst(parts), RuleLocationFirst) },
			func() *Redirect { return tag(serviceFirst(parts), RuleServiceFirst) },
		)
		if r != nil {
			return r
		}
	}
	return nil
}

// locationFirst reads parts as {location}-{service}. The first split whose
// suffix is a known service wins, even when the prefix is not a place we
// know; in that case the service page is returned.
func locationFirst(parts []string) *Redirect {
	for i := 1; i < len(parts); i++ {
		slug, ok := ServiceSlug(join(parts[i:]))
		if !ok {
			continue
		}
		loc := join(parts[:i])
		return firstOf(
			func() *Redirect { return metroPage(loc, slug) },
			func() *Redirect { return countyPage(loc, slug) },
			func() *Redirect { return abbrevPage(loc) },
			func() *Redirect { return statePage(loc) },
			func() *Redirect { return permanent(servicePath(slug)) },
		)
	}
	return nil
}

// serviceFirst reads parts as {service}-{location}.
func serviceFirst(parts []string) *Redirect {
	for i := 1; i < len(parts); i++ {
		slug, ok := ServiceSlug(join(parts[:i]))
		if !ok {
			continue
		}
		loc := join(parts[i:])
		r := firstOf(
			func() *Redirect { return parseCityState(loc, slug) },
			func() *Redirect { return metroPage(loc, slug) },
			func() *Redirect { return countyPage(loc, slug) },
			func() *Redirect { return abbrevPage(loc) },
			func() *Redirect { return statePage(loc) },
		)
		if r != nil {
			return r
		}
		// An unknown city name still lands on the service page.
		if len(loc) > 1 {
			return permanent(servicePath(slug))
		}
	}
	return nil
}

// resolveServiceLocation handles {service}/{location}. Unknown services are
// not redirected.
func resolveServiceLocation(service, loc string) *Redirect {
	slug, ok := ServiceSlug(service)
	if !ok {
		return nil
	}
	return firstOf(
		func() *Redirect { return parseCityState(loc, slug) },
		func() *Redirect { return abbrevPage(loc) },
		func() *Redirect { return statePage(loc) },
		func() *Redirect { return metroPage(loc, slug) },
		func() *Redirect { return countyPage(loc, slug) },
		func() *Redirect { return permanent(servicePath(slug)) },
	)
}

// resolveServiceStateCity handles {service}/{state}/{city}. The city is
// passed through as-is.
func resolveServiceStateCity(service, state, city string) *Redirect {
	slug, ok := ServiceSlug(service)
	if !ok {
		return nil
	}
	if full, ok := canon.StateFromAbbrev(state); ok {
		state = full
	}
	if !canon.IsState(state) {
		return nil
	}
	return permanent(servicePath(slug, state, city))
}
