// Package catalog lists the service pages the current site serves.
package catalog

import (
	"fmt"
	"sort"
)

type Service struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

var services = []Service{
	{Slug: "economic-loss-assessment", Title: "Economic Loss Assessment"},
	{Slug: "wrongful-death-economics", Title: "Wrongful Death Economics"},
	{Slug: "personal-injury-economics", Title: "Personal Injury Economics"},
	{Slug: "vocational-evaluation", Title: "Vocational Evaluation"},
	{Slug: "earning-capacity-assessment", Title: "Earning Capacity Assessment"},
	{Slug: "life-care-planning", Title: "Life Care Planning"},
	{Slug: "business-valuation", Title: "Business Valuation"},
	{Slug: "commercial-damages", Title: "Commercial Damages"},
	{Slug: "employment-litigation", Title: "Employment Litigation Economics"},
	{Slug: "household-services-valuation", Title: "Household Services Valuation"},
	{Slug: "pension-valuation", Title: "Pension Valuation"},
}

var bySlug = func() map[string]Service {
	m := make(map[string]Service, len(services))
	for _, s := range services {
		m[s.Slug] = s
	}
	return m
}()

// Has reports whether slug is a live service page.
func Has(slug string) bool {
	_, ok := bySlug[slug]
	return ok
}

// All returns the catalog in display order.
func All() []Service {
	return append([]Service(nil), services...)
}

// Validate checks that every value of targets names a live service. It
// returns one error per dangling legacy token, sorted by token.
func Validate(targets map[string]string) []error {
	keys := make([]string, 0, len(targets))
	for k := range targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var errs []error
	for _, k := range keys {
		if !Has(targets[k]) {
			errs = append(errs, fmt.Errorf("legacy service %q targets unknown slug %q", k, targets[k]))
		}
	}
	return errs
}
