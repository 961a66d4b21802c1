package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TagFilter is the as-authored list of requested category tags. A single
// string is split on commas; list values are kept element-wise.
type TagFilter []string

// ParseTagFilter splits a comma-separated tag string
func ParseTagFilter(s string) TagFilter {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return TagFilter(strings.Split(s, ","))
}

// Entries returns the trimmed, non-empty entries in authored order
func (t TagFilter) Entries() []string {
	entries := make([]string, 0, len(t))
	for _, tag := range t {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

// IsEmpty reports whether the filter has no usable entry
func (t TagFilter) IsEmpty() bool {
	return len(t.Entries()) == 0
}

// UnmarshalJSON accepts a comma-separated string or an array of strings
func (t *TagFilter) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*t = nil
	case string:
		*t = ParseTagFilter(v)
	case []interface{}:
		tags := make(TagFilter, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%w: tag values must be strings", ErrInvalidRequest)
			}
			tags = append(tags, s)
		}
		*t = tags
	default:
		return fmt.Errorf("%w: tags must be a string or an array", ErrInvalidRequest)
	}
	return nil
}
