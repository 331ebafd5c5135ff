package legacy

import (
	"regexp"
	"strings"
)

var reExt = regexp.MustCompile(`\.(html?|php|aspx?|jsp)$`)

// Normalize lower-cases p, trims surrounding slashes and drops a trailing
// page extension. ok is false when nothing is left.
func Normalize(p string) (normalized string, ok bool) {
	p = strings.Trim(strings.ToLower(strings.TrimSpace(p)), "/")
	p = reExt.ReplaceAllString(p, "")
	p = strings.Trim(p, "/")
	return p, p != ""
}

func segments(p string) []string {
	raw := strings.Split(p, "/")
	out := raw[:0]
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
