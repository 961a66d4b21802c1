package usecase

import (
	"strings"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// NormalizeTag lowercases a tag and strips its "namespace:" prefix
func NormalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.Index(tag, ":"); idx >= 0 {
		tag = tag[idx+1:]
	}
	return strings.TrimSpace(tag)
}

// normalizeTags normalizes every tag and drops the empty ones
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if n := NormalizeTag(tag); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}

// FilterByCategory keeps records where at least one category contains at
// least one requested tag. Matching is by substring, so "shoe" matches
// "snowshoes". Records without a category list are dropped. An empty filter
// returns records unchanged.
func FilterByCategory(records []domain.ProductRecord, filter domain.TagFilter) []domain.ProductRecord {
	wanted := normalizeTags(filter)
	if len(wanted) == 0 {
		return records
	}

	kept := make([]domain.ProductRecord, 0, len(records))
	for _, record := range records {
		if !record.Category.IsList {
			continue
		}
		if categoriesMatch(normalizeTags(record.Category.Values), wanted) {
			kept = append(kept, record)
		}
	}
	return kept
}

func categoriesMatch(categories, wanted []string) bool {
	for _, category := range categories {
		for _, tag := range wanted {
			if strings.Contains(category, tag) {
				return true
			}
		}
	}
	return false
}
