package usecase

import (
	"net/url"
	"strings"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// legacyFolderSegment marks folders served by the legacy flat content model
const legacyFolderSegment = "/dam/luma3/"

var (
	folderConfigKeys = []string{"folder", "reference", "path"}
	tagConfigKeys    = []string{"tags", "cq:tags"}
)

// ExtractBlockConfig reads the folder path and tag filter from authored
// block markup. Missing sources yield empty values, never an error.
func ExtractBlockConfig(block domain.BlockMarkup) domain.BlockConfig {
	return ResolveBlockConfig(readFolderPath(block), readTagFilter(block))
}

// ResolveBlockConfig normalizes a folder path, selects the content-model
// generation and drops the tag filter for legacy folders
func ResolveBlockConfig(folderPath string, tags domain.TagFilter) domain.BlockConfig {
	folder := NormalizeFolderPath(folderPath)
	legacy := IsLegacyFolder(folder)
	if legacy {
		tags = nil
	}

	return domain.BlockConfig{
		FolderPath: folder,
		TagFilter:  tags,
		IsLegacy:   legacy,
	}
}

// NormalizeFolderPath reduces absolute URLs to their path and strips a
// trailing .html
func NormalizeFolderPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}

	if u, err := url.Parse(path); err == nil && u.Scheme != "" && u.Host != "" {
		path = u.Path
	}

	return strings.TrimSuffix(path, ".html")
}

// IsLegacyFolder reports whether the folder belongs to the legacy model
func IsLegacyFolder(folderPath string) bool {
	return strings.Contains(folderPath, legacyFolderSegment)
}

// readFolderPath priority: anchor href, anchor text, then config rows
func readFolderPath(block domain.BlockMarkup) string {
	if href, text, ok := block.FirstAnchor(); ok {
		if strings.TrimSpace(href) != "" {
			return href
		}
		if text != "" {
			return text
		}
	}

	for _, key := range folderConfigKeys {
		if value := firstNonEmpty(block.ConfigValues(key)); value != "" {
			return value
		}
	}
	return ""
}

// readTagFilter priority: data-tags attribute, then config rows
func readTagFilter(block domain.BlockMarkup) domain.TagFilter {
	if tags := domain.ParseTagFilter(block.Dataset("tags")); !tags.IsEmpty() {
		return tags
	}

	for _, key := range tagConfigKeys {
		values := block.ConfigValues(key)
		var tags domain.TagFilter
		if len(values) == 1 {
			tags = domain.ParseTagFilter(values[0])
		} else {
			tags = domain.TagFilter(values)
		}
		if !tags.IsEmpty() {
			return tags
		}
	}
	return nil
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
