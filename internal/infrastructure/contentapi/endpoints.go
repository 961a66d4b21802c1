package contentapi

import (
	"net/url"
	"strings"
)

// Endpoints are the four persisted-query base URLs, two per content-model
// generation split by author/publish
type Endpoints struct {
	LegacyAuthor  string
	LegacyPublish string
	Author        string
	Publish       string
}

// Select picks the base URL for a generation and environment
func (e Endpoints) Select(isLegacy, isAuthor bool) string {
	switch {
	case isLegacy && isAuthor:
		return e.LegacyAuthor
	case isLegacy:
		return e.LegacyPublish
	case isAuthor:
		return e.Author
	default:
		return e.Publish
	}
}

// BuildRequestURL appends the URL-encoded _path parameter to a base URL
func BuildRequestURL(baseURL, folderPath string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "_path=" + url.QueryEscape(folderPath)
}
