package v1

import (
	"net/http"
	"sort"

	"github.com/go-chi/render"

	"github.com/cskerritt/kweconomics-sub000/internal/canon"
	"github.com/cskerritt/kweconomics-sub000/internal/catalog"
	"github.com/cskerritt/kweconomics-sub000/internal/legacy"
)

type catalogService struct {
	catalog.Service
	LegacyTokens []string `json:"legacyTokens"`
}

type catalogState struct {
	Slug   string `json:"slug"`
	Abbrev string `json:"abbrev"`
}

// catalogHandler lists the live service pages with the legacy tokens that
// redirect to each, and the state pages with their abbreviations.
func catalogHandler(w http.ResponseWriter, req *http.Request) {
	tokens := map[string][]string{}
	for token, slug := range legacy.LegacyServices() {
		tokens[slug] = append(tokens[slug], token)
	}
	services := make([]catalogService, 0, len(tokens))
	for _, s := range catalog.All() {
		ts := tokens[s.Slug]
		sort.Strings(ts)
		if ts == nil {
			ts = []string{}
		}
		services = append(services, catalogService{Service: s, LegacyTokens: ts})
	}

	states := make([]catalogState, 0, 51)
	for abbr, slug := range canon.Abbreviations() {
		states = append(states, catalogState{Slug: slug, Abbrev: abbr})
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Slug < states[j].Slug })

	render.JSON(w, req, map[string]any{"ok": true, "services": services, "states": states})
}
