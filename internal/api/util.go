package api

import (
	"regexp"
	"strings"
)

var uuidRegex = regexp.MustCompile("^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$")

// normalizeUUID lower-cases and trims a route UUID parameter and reports
// whether it has the canonical shape.
func normalizeUUID(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, uuidRegex.MatchString(s)
}
