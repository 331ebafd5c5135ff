package legacy

import "strings"

// Rule names reported in Redirect.Rule.
const (
	RuleVendorBundle       = "vendor-bundle"
	RuleBlog               = "blog"
	RuleTools              = "tools"
	RuleBusinessConsulting = "business-consulting"
	RulePracticeAreas      = "practice-areas"
	RuleLocationsCities    = "locations-cities"
	RuleLocationsStates    = "locations-states"
	RuleLocationFirst      = "location-first"
	RuleServiceFirst       = "service-first"
	RuleServiceLocation    = "service-location"
	RuleServiceStateCity   = "service-state-city"
)

// staticRule inspects the normalized path and its segments. A nil result
// hands the path to the next rule.
type staticRule func(p string, segs []string) *Redirect

var staticRules = []staticRule{
	vendorBundle,
	prefixRule("blog", "/", RuleBlog),
	prefixRule("tools", "/services", RuleTools),
	businessConsulting,
	practiceAreas,
	locationsCities,
	locationsStates,
}

// Resolve maps a legacy pathname to a redirect, or returns nil when the path
// is not a recognised legacy URL. Query and fragment must already be removed.
func Resolve(pathname string) *Redirect {
	p, ok := Normalize(pathname)
	if !ok {
		return nil
	}
	segs := segments(p)
	for _, rule := range staticRules {
		if r := rule(p, segs); r != nil {
			return r
		}
	}
	switch len(segs) {
	case 1:
		return resolveCombined(segs[0])
	case 2:
		return tag(resolveServiceLocation(segs[0], segs[1]), RuleServiceLocation)
	case 3:
		return tag(resolveServiceStateCity(segs[0], segs[1], segs[2]), RuleServiceStateCity)
	default:
		return nil
	}
}

func vendorBundle(p string, _ []string) *Redirect {
	if !strings.Contains(p, "vendor/bundle") {
		return nil
	}
	return &Redirect{RedirectTo: "/404", Status: 404, NoIndex: true, Rule: RuleVendorBundle}
}

func prefixRule(prefix, to, rule string) staticRule {
	return func(p string, _ []string) *Redirect {
		if p != prefix && !strings.HasPrefix(p, prefix+"/") {
			return nil
		}
		return tag(permanent(to), rule)
	}
}

func businessConsulting(p string, _ []string) *Redirect {
	if !strings.HasPrefix(p, "services/business-consulting") {
		return nil
	}
	return tag(permanent("/services"), RuleBusinessConsulting)
}

func practiceAreas(_ string, segs []string) *Redirect {
	if segs[0] != "practice-areas" {
		return nil
	}
	return tag(resolvePracticeArea(segs[1:]), RulePracticeAreas)
}

func locationsCities(_ string, segs []string) *Redirect {
	if len(segs) < 3 || segs[0] != "locations" || segs[1] != "cities" {
		return nil
	}
	return tag(resolveCityPage(segs[2]), RuleLocationsCities)
}

func locationsStates(_ string, segs []string) *Redirect {
	if len(segs) != 3 || segs[0] != "locations" || segs[1] != "states" {
		return nil
	}
	if r := ResolveLocation(segs[2]); r != nil {
		return tag(r, RuleLocationsStates)
	}
	return tag(permanent("/locations"), RuleLocationsStates)
}
