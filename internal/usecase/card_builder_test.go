package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		name  string
		input domain.Categories
		want  string
	}{
		{"namespaced pair", domain.NewCategories("a:Shoes", "a:Men"), "Shoes / Men"},
		{"luma namespace", domain.NewCategories("luma-products:Shoes", "luma-products:Men"), "Shoes / Men"},
		{"no namespace", domain.NewCategories("solo"), "Solo"},
		{"empty segment dropped", domain.NewCategories("a:"), ""},
		{"mixed case normalised", domain.NewCategories("ns:RUNNING shoes"), "Running Shoes"},
		{"hyphenated words", domain.NewCategories("ns:t-shirts"), "T-Shirts"},
		{"apostrophe stays inside the word", domain.NewCategories("luma:men's", "luma:women's"), "Men's / Women's"},
		{"empty list", domain.NewCategories(), ""},
		{"not a list", domain.Categories{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryLabel(tt.input))
		})
	}
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Red Shoes", CleanTitle("Red Shoes, Size 10"))
	assert.Equal(t, "Red Shoes", CleanTitle("  Red Shoes  "))
	assert.Equal(t, "", CleanTitle(""))
	assert.Equal(t, "", CleanTitle(", only qualifier"))
}

func TestProductHref(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		id       string
		isAuthor bool
		want     string
	}{
		{"publish", "/us/en/men", "MJ01", false, "/us/en/product?productId=MJ01"},
		{"author keeps html", "/content/luma/us/en/men.html", "MJ01", true, "/content/luma/us/en/product.html?productId=MJ01"},
		{"trailing slash", "/us/en/", "MJ01", false, "/us/en/product?productId=MJ01"},
		{"encoded id", "/us/en/men", "a b&c", false, "/us/en/product?productId=a+b%26c"},
		{"empty page", "", "x", false, "/product?productId=x"},
		{"page with query", "/us/en/men?foo=bar", "x", false, "/us/en/product?productId=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductHref(tt.page, tt.id, tt.isAuthor))
		})
	}
}

func TestResolveImageURL(t *testing.T) {
	legacy := domain.ProductRecord{
		Image:            &domain.AssetRef{PublishURL: "https://publish.example.com/a.jpg"},
		ExternalImageURL: &domain.ExternalImage{URL: "https://never.example.com/x.jpg"},
	}

	t.Run("legacy publish url", func(t *testing.T) {
		assert.Equal(t, "https://publish.example.com/a.jpg", ResolveImageURL(legacy, false, true))
	})

	t.Run("legacy author url absent", func(t *testing.T) {
		assert.Equal(t, "", ResolveImageURL(legacy, true, true))
	})

	t.Run("legacy without image", func(t *testing.T) {
		assert.Equal(t, "", ResolveImageURL(domain.ProductRecord{}, false, true))
	})

	t.Run("content fragment prefers external", func(t *testing.T) {
		r := domain.ProductRecord{
			Image:            &domain.AssetRef{PublishURL: "/never.jpg"},
			ExternalImageURL: &domain.ExternalImage{URL: "https://cdn.example.com/x.jpg"},
			DAMImageURL:      &domain.AssetRef{PublishURL: "/content/dam/luma/x.jpg"},
		}
		assert.Equal(t, "https://cdn.example.com/x.jpg", ResolveImageURL(r, false, false))
	})

	t.Run("content fragment falls back to dam", func(t *testing.T) {
		r := domain.ProductRecord{
			ExternalImageURL: &domain.ExternalImage{},
			DAMImageURL:      &domain.AssetRef{AuthorURL: "/content/dam/luma/author.jpg", PublishURL: "/content/dam/luma/publish.jpg"},
		}
		assert.Equal(t, "/content/dam/luma/author.jpg", ResolveImageURL(r, true, false))
		assert.Equal(t, "/content/dam/luma/publish.jpg", ResolveImageURL(r, false, false))
	})

	t.Run("content fragment ignores legacy image", func(t *testing.T) {
		r := domain.ProductRecord{Image: &domain.AssetRef{PublishURL: "/legacy.jpg"}}
		assert.Equal(t, "", ResolveImageURL(r, false, false))
	})
}

func TestBuildCard(t *testing.T) {
	publish := domain.RenderContext{PagePath: "/us/en/men"}
	author := domain.RenderContext{PagePath: "/content/luma/us/en/men.html", IsAuthor: true}

	tests := []struct {
		name   string
		record domain.ProductRecord
		rc     domain.RenderContext
		want   domain.Card
	}{
		{
			name: "blob url on publish is direct",
			record: domain.ProductRecord{
				SKU:              "MJ01",
				Name:             "Beaumont Summit Kit, Large",
				Category:         domain.NewCategories("luma:Men", "luma:Jackets"),
				ExternalImageURL: &domain.ExternalImage{URL: "blob:abc"},
			},
			rc: publish,
			want: domain.Card{
				ImageURL:  "blob:abc",
				ImageMode: domain.ImageDirect,
				Alt:       "Beaumont Summit Kit",
				Category:  "Men / Jackets",
				Title:     "Beaumont Summit Kit",
				Href:      "/us/en/product?productId=MJ01",
			},
		},
		{
			name: "absolute url on author uses picture",
			record: domain.ProductRecord{
				ID:               "p1",
				Name:             "Tee",
				ExternalImageURL: &domain.ExternalImage{URL: "https://cdn.example.com/tee.jpg"},
			},
			rc: author,
			want: domain.Card{
				ImageURL:  "https://cdn.example.com/tee.jpg",
				ImageMode: domain.ImagePicture,
				Alt:       "Tee",
				Title:     "Tee",
				Href:      "/content/luma/us/en/product.html?productId=p1",
			},
		},
		{
			name: "repository path on publish uses picture",
			record: domain.ProductRecord{
				SKU:         "s",
				DAMImageURL: &domain.AssetRef{PublishURL: "/content/dam/luma/s.jpg"},
			},
			rc: publish,
			want: domain.Card{
				ImageURL:  "/content/dam/luma/s.jpg",
				ImageMode: domain.ImagePicture,
				Href:      "/us/en/product?productId=s",
			},
		},
		{
			name:   "sku preferred over id",
			record: domain.ProductRecord{ID: "id-1", SKU: "sku-1"},
			rc:     publish,
			want:   domain.Card{Href: "/us/en/product?productId=sku-1"},
		},
		{
			name:   "no identifier means no navigation",
			record: domain.ProductRecord{Name: "Orphan"},
			rc:     publish,
			want:   domain.Card{Alt: "Orphan", Title: "Orphan"},
		},
		{
			name:   "everything missing",
			record: domain.ProductRecord{},
			rc:     author,
			want:   domain.Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCard(tt.record, tt.rc)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildCard() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildCard_LegacyRecordAuthorWithoutAuthorURL(t *testing.T) {
	record := domain.ProductRecord{
		SKU:   "L1",
		Image: &domain.AssetRef{PublishURL: "https://publish.example.com/l1.jpg"},
	}

	onPublish := BuildCard(record, domain.RenderContext{IsLegacy: true})
	assert.Equal(t, "https://publish.example.com/l1.jpg", onPublish.ImageURL)
	assert.Equal(t, domain.ImageDirect, onPublish.ImageMode)

	onAuthor := BuildCard(record, domain.RenderContext{IsLegacy: true, IsAuthor: true})
	assert.Equal(t, "", onAuthor.ImageURL)
	assert.Equal(t, domain.ImageNone, onAuthor.ImageMode)
	assert.True(t, onAuthor.Interactive())
}

func TestBuildCard_DoesNotMutateRecord(t *testing.T) {
	record := domain.ProductRecord{
		SKU:      "x",
		Name:     "A, B",
		Category: domain.NewCategories("ns:One", "ns:Two"),
	}
	before := record
	before.Category = domain.NewCategories("ns:One", "ns:Two")

	BuildCard(record, domain.RenderContext{})

	if diff := cmp.Diff(before, record); diff != "" {
		t.Errorf("record mutated (-before +after):\n%s", diff)
	}
}
