// Package pathutil normalizes request paths for metric labels and parses path IDs.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern maps a dynamic route to its label template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/summaries/` + uuidPattern + `/download$`), Template: "/api/summaries/:id/download"},
	{Pattern: regexp.MustCompile(`^/api/summaries/[^/]+/download$`), Template: "/api/summaries/:invalid/download"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath turns paths carrying IDs into templates so metric label
// cardinality stays bounded. Query strings and a trailing slash are ignored.
//
//	NormalizePath("/api/summaries/3f2b8c1e-9d4a-4e7b-8a6f-1c2d3e4f5a6b/download") // "/api/summaries/:id/download"
//	NormalizePath("/api/options") // "/api/options"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
