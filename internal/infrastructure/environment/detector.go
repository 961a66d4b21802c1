package environment

import "strings"

// HostDetector treats a page host as an authoring context when it contains
// any of the configured substrings
type HostDetector struct {
	patterns []string
}

// NewHostDetector creates a detector for the given host substrings
func NewHostDetector(patterns []string) *HostDetector {
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			normalized = append(normalized, p)
		}
	}
	return &HostDetector{patterns: normalized}
}

// IsAuthorEnvironment reports whether host belongs to the authoring tier
func (d *HostDetector) IsAuthorEnvironment(host string) bool {
	host = strings.ToLower(host)
	for _, p := range d.patterns {
		if strings.Contains(host, p) {
			return true
		}
	}
	return false
}

// Static always answers the same way; used by the CLI --author flag and tests
type Static bool

// IsAuthorEnvironment returns the fixed answer
func (s Static) IsAuthorEnvironment(string) bool {
	return bool(s)
}
