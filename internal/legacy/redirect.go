package legacy

import "strings"

// Redirect describes what to do with a recognised legacy URL.
type Redirect struct {
	RedirectTo string `json:"redirectTo"`
	Permanent  bool   `json:"permanent"`
	Status     int    `json:"status,omitempty"`
	NoIndex    bool   `json:"noIndex,omitempty"`
	// Rule names the rule that produced the redirect.
	Rule string `json:"rule,omitempty"`
}

func permanent(to string) *Redirect {
	return &Redirect{RedirectTo: to, Permanent: true}
}

func tag(r *Redirect, rule string) *Redirect {
	if r != nil {
		r.Rule = rule
	}
	return r
}

// firstOf evaluates steps in order and returns the first non-nil result.
func firstOf(steps ...func() *Redirect) *Redirect {
	for _, step := range steps {
		if r := step(); r != nil {
			return r
		}
	}
	return nil
}

func servicePath(slug string, rest ...string) string {
	return "/services/" + strings.Join(append([]string{slug}, rest...), "/")
}

func join(tokens []string) string {
	return strings.Join(tokens, "-")
}
