package report

import (
	"regexp"
	"strconv"
	"strings"
)

// locationPattern matches "path/to/file.ext:line" or "path/to/file.ext:start-end".
var locationPattern = regexp.MustCompile(`^([^:]+):(\d+)(?:-(\d+))?$`)

// Location is a parsed path-and-line reference from an issue.
type Location struct {
	Path    string
	Line    int
	LineEnd int
}

// ParseLocation parses a location string of the form "path:line" or
// "path:start-end". The second return is false when the string does not
// match the convention.
func ParseLocation(location string) (Location, bool) {
	m := locationPattern.FindStringSubmatch(location)
	if m == nil {
		return Location{}, false
	}
	line, err := strconv.Atoi(m[2])
	if err != nil || line < 1 {
		return Location{}, false
	}
	loc := Location{Path: m[1], Line: line, LineEnd: line}
	if m[3] != "" {
		end, err := strconv.Atoi(m[3])
		if err != nil || end < line {
			return Location{}, false
		}
		loc.LineEnd = end
	}
	return loc, true
}

// ValidLocation reports whether a location string follows the path:line
// convention required by the schema.
func ValidLocation(location string) bool {
	_, ok := ParseLocation(location)
	return ok
}

// defaultZuulPrefixes are workspace prefixes the CI system prepends to
// checked-out repositories.
var defaultZuulPrefixes = []string{
	"/home/zuul/src/review.opendev.org/",
	"/home/zuul/src/opendev.org/",
	"/home/zuul/src/",
}

// NormalizePath strips CI workspace prefixes and org/project segments so
// the path is relative to the repository root. Extra prefixes may be
// supplied ahead of the defaults.
func NormalizePath(path string, extraPrefixes []string) string {
	prefixes := append(append([]string{}, extraPrefixes...), defaultZuulPrefixes...)
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			rest := strings.TrimPrefix(path, prefix)
			// Drop the org/project segments, e.g. "openstack/nova/".
			parts := strings.SplitN(rest, "/", 3)
			if len(parts) >= 3 {
				return parts[2]
			}
			return rest
		}
	}
	if strings.HasPrefix(path, "/") {
		parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
		if len(parts) >= 3 {
			return parts[2]
		}
		return strings.TrimPrefix(path, "/")
	}
	return path
}
