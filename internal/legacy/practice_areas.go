package legacy

// resolvePracticeArea handles practice-areas/{service}[/{state}[/{city}]].
// Anything it cannot place degrades to the services index.
func resolvePracticeArea(rest []string) *Redirect {
	index := permanent("/services")
	if len(rest) == 0 {
		return index
	}
	slug, ok := ServiceSlug(rest[0])
	if !ok {
		return index
	}
	if len(rest) == 1 {
		return permanent(servicePath(slug))
	}
	state, ok := stateOf(rest[1])
	if !ok {
		return index
	}
	if len(rest) == 2 {
		return permanent("/" + state)
	}
	return permanent(servicePath(slug, state, rest[2]))
}
