package usecase

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// productPageName is the sibling page that shows a single product
const productPageName = "product"

// BuildCard maps one record to a card. It only reads the record and
// tolerates any missing optional field.
func BuildCard(record domain.ProductRecord, rc domain.RenderContext) domain.Card {
	imageURL := ResolveImageURL(record, rc.IsAuthor, rc.IsLegacy)
	title := CleanTitle(record.Name)

	card := domain.Card{
		ImageURL:  imageURL,
		ImageMode: imageMode(imageURL, rc.IsAuthor),
		Alt:       title,
		Category:  CategoryLabel(record.Category),
		Title:     title,
	}

	if id := record.Identifier(); id != "" {
		card.Href = ProductHref(rc.PagePath, id, rc.IsAuthor)
	}

	return card
}

// ResolveImageURL picks the image for the record's generation. Legacy
// records only look at image; content-fragment records try
// externalImageURL and fall back to damImageURL.
func ResolveImageURL(record domain.ProductRecord, isAuthor, isLegacy bool) string {
	if isLegacy {
		return record.Image.URL(isAuthor)
	}

	if record.ExternalImageURL != nil && record.ExternalImageURL.URL != "" {
		return record.ExternalImageURL.URL
	}
	return record.DAMImageURL.URL(isAuthor)
}

// imageMode: published pages reference absolute and blob URLs directly;
// everything else goes through the optimized picture
func imageMode(imageURL string, isAuthor bool) domain.ImageMode {
	switch {
	case imageURL == "":
		return domain.ImageNone
	case !isAuthor && (strings.HasPrefix(imageURL, "http") || strings.HasPrefix(imageURL, "blob:")):
		return domain.ImageDirect
	default:
		return domain.ImagePicture
	}
}

// CategoryLabel turns ["luma:Shoes", "luma:Men"] into "Shoes / Men"
func CategoryLabel(categories domain.Categories) string {
	if !categories.IsList {
		return ""
	}

	parts := make([]string, 0, len(categories.Values))
	for _, tag := range categories.Values {
		if idx := strings.Index(tag, ":"); idx >= 0 {
			tag = tag[idx+1:]
		}
		if tag != "" {
			parts = append(parts, tag)
		}
	}

	label := strings.ReplaceAll(strings.Join(parts, ", "), ",", " /")
	return cases.Title(language.Und).String(strings.ToLower(label))
}

// CleanTitle keeps the name up to the first comma
func CleanTitle(name string) string {
	if idx := strings.Index(name, ","); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

// ProductHref points at the sibling product page of pagePath. Author pages
// keep the .html extension.
func ProductHref(pagePath, productID string, isAuthor bool) string {
	if u, err := url.Parse(pagePath); err == nil {
		pagePath = u.Path
	}

	dir := "/"
	if idx := strings.LastIndex(pagePath, "/"); idx >= 0 {
		dir = pagePath[:idx+1]
	}

	target := dir + productPageName
	if isAuthor {
		target += ".html"
	}

	return target + "?productId=" + url.QueryEscape(productID)
}
