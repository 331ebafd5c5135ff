// Package verify checks the legacy resolver against curated sample URLs,
// offline or against a deployed site.
package verify

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cskerritt/kweconomics-sub000/internal/canon"
	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
)

//go:embed samples.yaml
var defaultSamples []byte

type Case struct {
	Category string `yaml:"category"`
	Path     string `yaml:"path"`
	To       string `yaml:"to,omitempty"`
}

type sampleFile struct {
	Cases []Case `yaml:"cases"`
}

// DefaultCases returns the embedded sample set.
func DefaultCases() ([]Case, error) {
	return ParseCases(defaultSamples)
}

// LoadCases reads a sample file from disk.
func LoadCases(path string) ([]Case, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCases(b)
}

func ParseCases(b []byte) ([]Case, error) {
	var f sampleFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}
	for i, c := range f.Cases {
		if _, ok := predicates[c.Category]; !ok {
			return nil, fmt.Errorf("case %d (%s): unknown category %q", i, c.Path, c.Category)
		}
	}
	return f.Cases, nil
}

// FilterCases keeps the cases whose category is listed. An empty list keeps
// everything; an unknown category is an error.
func FilterCases(cases []Case, categories []string) ([]Case, error) {
	if len(categories) == 0 {
		return cases, nil
	}
	want := make(map[string]bool, len(categories))
	for _, c := range categories {
		if _, ok := predicates[c]; !ok {
			return nil, fmt.Errorf("unknown category %q", c)
		}
		want[c] = true
	}
	var out []Case
	for _, c := range cases {
		if want[c.Category] {
			out = append(out, c)
		}
	}
	return out, nil
}

// predicate reports whether a resolver result has the shape its category
// promises.
type predicate func(r *legacy.Redirect) bool

var predicates = map[string]predicate{
	"vendor-bundle": func(r *legacy.Redirect) bool {
		return r != nil && r.Status == 404 && r.NoIndex && !r.Permanent
	},
	"blog":                exactly("/"),
	"tools":               exactly("/services"),
	"business-consulting": exactly("/services"),
	"practice-areas": func(r *legacy.Redirect) bool {
		return permanentTo(r, func(to string) bool { return to == "/services" || strings.HasPrefix(to, "/services/") || isStatePage(to) })
	},
	"locations-states": func(r *legacy.Redirect) bool {
		return permanentTo(r, func(to string) bool { return to == "/locations" || isStatePage(to) })
	},
	"locations-cities": func(r *legacy.Redirect) bool {
		return permanentTo(r, func(to string) bool { return to != "" && to != "/" })
	},
	"single-segment": locationShaped,
	"two-segment":    locationShaped,
	"three-segment": func(r *legacy.Redirect) bool {
		return permanentTo(r, func(to string) bool { return strings.Count(to, "/") == 4 && strings.HasPrefix(to, "/services/") })
	},
	"unresolvable": func(r *legacy.Redirect) bool { return r == nil },
}

func exactly(to string) predicate {
	return func(r *legacy.Redirect) bool {
		return permanentTo(r, func(got string) bool { return got == to })
	}
}

func locationShaped(r *legacy.Redirect) bool {
	return permanentTo(r, func(to string) bool { return isStatePage(to) || strings.HasPrefix(to, "/services/") })
}

func permanentTo(r *legacy.Redirect, ok func(to string) bool) bool {
	return r != nil && r.Permanent && r.Status == 0 && ok(r.RedirectTo)
}

func isStatePage(to string) bool {
	return strings.HasPrefix(to, "/") && canon.IsState(to[1:])
}
