package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/infrastructure/markup"
)

func assertGolden(t *testing.T, name string, b *domain.Block) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Fragment(&buf, b))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

func TestFragment_Golden(t *testing.T) {
	t.Run("card_grid", func(t *testing.T) {
		assertGolden(t, "card_grid", &domain.Block{
			Tags: []string{"luma:men"},
			Cards: []domain.Card{
				{
					ImageURL:  "blob:abc",
					ImageMode: domain.ImageDirect,
					Alt:       "Tee",
					Category:  "Men / Tops",
					Title:     "Tee",
					Href:      "/us/en/product?productId=MJ01",
				},
				{
					ImageURL:  "/content/dam/luma/shoe.jpg",
					ImageMode: domain.ImagePicture,
					Alt:       "Shoe",
					Category:  "Shoes",
					Title:     "Shoe",
				},
			},
		})
	})

	t.Run("empty_state", func(t *testing.T) {
		assertGolden(t, "empty_state", &domain.Block{})
	})
}

func TestFragment_EmptyStateHasNoCards(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fragment(&buf, &domain.Block{Tags: []string{"a", "b"}}))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, `class="cpl-empty"`))
	assert.Equal(t, 0, strings.Count(out, `class="cpl-card"`))
	assert.Equal(t, 2, strings.Count(out, `class="cpl-tag"`))
}

func TestFragment_NoTagsNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fragment(&buf, &domain.Block{Cards: []domain.Card{{Title: "x"}}}))

	assert.NotContains(t, buf.String(), ClassTags)
	assert.Contains(t, buf.String(), `<div class="cpl-card">`)
}

func TestCard_Escaping(t *testing.T) {
	out, err := String(Card(domain.Card{
		Title:    `<script>alert("x")</script>`,
		Category: "Men & Women",
		Href:     `/product?productId=a"b`,
	}))
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Men &amp; Women")
	assert.Contains(t, out, `href="/product?productId=a&#34;b"`)
}

func TestOptimizedPicture(t *testing.T) {
	out, err := String(OptimizedPicture("https://author.example.com/content/dam/luma/a.png?x=1", "Alt", true, nil))
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(out, "<source"))
	assert.Equal(t, 3, strings.Count(out, `type="image/webp"`))
	assert.Contains(t, out, `srcset="/content/dam/luma/a.png?width=600&amp;format=webply&amp;optimize=medium"`)
	assert.Contains(t, out, `srcset="/content/dam/luma/a.png?width=400&amp;format=png&amp;optimize=medium"`)
	assert.Contains(t, out, `<img loading="eager" alt="Alt" src="/content/dam/luma/a.png?width=320&amp;format=png&amp;optimize=medium"/>`)
	assert.NotContains(t, out, "author.example.com")
}

func TestDecorate(t *testing.T) {
	block, err := markup.Parse(`<div class="category-product-lister"><div><div>folder</div><div>/content/dam/luma</div></div></div>`)
	require.NoError(t, err)

	Decorate(block.Root(), &domain.Block{})
	out, err := String(block.Root())
	require.NoError(t, err)

	assert.Equal(t,
		`<div class="category-product-lister"><div class="cpl-grid"><p class="cpl-empty">No products found.</p></div></div>`,
		out)
}
