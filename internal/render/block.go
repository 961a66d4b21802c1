// Package render turns a built lister into HTML nodes with the cpl-* class
// markers and serializes them.
package render

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// EmptyMessage is shown when there is nothing to list
const EmptyMessage = "No products found."

// Class markers
const (
	ClassTags         = "cpl-tags"
	ClassTag          = "cpl-tag"
	ClassGrid         = "cpl-grid"
	ClassCard         = "cpl-card"
	ClassCardMedia    = "cpl-card-media"
	ClassCardCategory = "cpl-card-category"
	ClassCardTitle    = "cpl-card-title"
	ClassEmpty        = "cpl-empty"
)

// Nodes returns the tag header (only when there are tags) and the grid
func Nodes(b *domain.Block) []*html.Node {
	var nodes []*html.Node
	if len(b.Tags) > 0 {
		nodes = append(nodes, tagHeader(b.Tags))
	}
	return append(nodes, grid(b))
}

// Decorate replaces the children of the authored block element with the
// rendered lister
func Decorate(root *html.Node, b *domain.Block) {
	for c := root.FirstChild; c != nil; {
		next := c.NextSibling
		root.RemoveChild(c)
		c = next
	}
	for _, n := range Nodes(b) {
		root.AppendChild(n)
	}
}

// Fragment writes the tag header and grid as HTML
func Fragment(w io.Writer, b *domain.Block) error {
	for _, n := range Nodes(b) {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering lister: %w", err)
		}
	}
	return nil
}

// String renders a single node
func String(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func tagHeader(tags []string) *html.Node {
	header := element("div", ClassTags)
	for _, tag := range tags {
		chip := element("span", ClassTag)
		chip.AppendChild(text(tag))
		header.AppendChild(chip)
	}
	return header
}

func grid(b *domain.Block) *html.Node {
	g := element("div", ClassGrid)
	if b.Empty() {
		empty := element("p", ClassEmpty)
		empty.AppendChild(text(EmptyMessage))
		g.AppendChild(empty)
		return g
	}

	for _, c := range b.Cards {
		g.AppendChild(Card(c))
	}
	return g
}

// Card renders one product card. Cards with a target are links; the rest
// are plain, non-interactive containers.
func Card(c domain.Card) *html.Node {
	var card *html.Node
	if c.Interactive() {
		card = element("a", ClassCard)
		setAttr(card, "href", c.Href)
	} else {
		card = element("div", ClassCard)
	}

	media := element("div", ClassCardMedia)
	switch c.ImageMode {
	case domain.ImageDirect:
		img := element("img", "")
		setAttr(img, "src", c.ImageURL)
		setAttr(img, "alt", c.Alt)
		setAttr(img, "loading", "lazy")
		media.AppendChild(img)
	case domain.ImagePicture:
		media.AppendChild(OptimizedPicture(c.ImageURL, c.Alt, false, CardBreakpoints))
	}
	card.AppendChild(media)

	category := element("div", ClassCardCategory)
	category.AppendChild(text(c.Category))
	card.AppendChild(category)

	title := element("div", ClassCardTitle)
	title.AppendChild(text(c.Title))
	card.AppendChild(title)

	return card
}

func element(tag, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: atom.Lookup([]byte(tag)), Data: tag}
	if class != "" {
		setAttr(n, "class", class)
	}
	return n
}

func setAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
