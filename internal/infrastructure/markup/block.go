// Package markup reads authored block markup: the first link, the
// key/value configuration rows and data-* attributes of the block element.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

var keyWhitespace = regexp.MustCompile(`\s+`)

// Block is a parsed authored block
type Block struct {
	root   *html.Node
	config map[string][]string
}

// Parse parses an HTML fragment and uses its first element as the block
func Parse(fragment string) (*Block, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, fmt.Errorf("parsing block markup: %w", err)
	}

	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return NewBlock(n), nil
		}
	}
	return nil, fmt.Errorf("%w: markup has no element", domain.ErrInvalidRequest)
}

// NewBlock wraps an already parsed block element
func NewBlock(root *html.Node) *Block {
	return &Block{root: root, config: readConfig(root)}
}

// Root returns the block element
func (b *Block) Root() *html.Node {
	return b.root
}

// FirstAnchor returns the href and text of the first link in the block
func (b *Block) FirstAnchor() (string, string, bool) {
	a := findFirst(b.root, atom.A)
	if a == nil {
		return "", "", false
	}
	return getAttr(a, "href"), strings.TrimSpace(textContent(a)), true
}

// ConfigValues returns the values of a configuration row
func (b *Block) ConfigValues(key string) []string {
	return b.config[normalizeKey(key)]
}

// Dataset returns the data-<name> attribute of the block element
func (b *Block) Dataset(name string) string {
	return getAttr(b.root, "data-"+name)
}

// readConfig reads rows of the form <div><div>key</div><div>value</div></div>.
// Links yield their hrefs, images their src, paragraphs their text; anything
// else yields the cell text.
func readConfig(root *html.Node) map[string][]string {
	config := make(map[string][]string)

	for row := root.FirstChild; row != nil; row = row.NextSibling {
		cols := elementChildren(row)
		if len(cols) < 2 {
			continue
		}

		key := normalizeKey(textContent(cols[0]))
		if key == "" {
			continue
		}
		config[key] = cellValues(cols[1])
	}

	return config
}

func cellValues(cell *html.Node) []string {
	if links := findAll(cell, atom.A); len(links) > 0 {
		return collect(links, func(n *html.Node) string { return getAttr(n, "href") })
	}
	if imgs := findAll(cell, atom.Img); len(imgs) > 0 {
		return collect(imgs, func(n *html.Node) string { return getAttr(n, "src") })
	}
	if paras := findAll(cell, atom.P); len(paras) > 0 {
		return collect(paras, func(n *html.Node) string { return strings.TrimSpace(textContent(n)) })
	}

	text := strings.TrimSpace(textContent(cell))
	if text == "" {
		return nil
	}
	return []string{text}
}

func collect(nodes []*html.Node, value func(*html.Node) string) []string {
	values := make([]string, 0, len(nodes))
	for _, n := range nodes {
		values = append(values, value(n))
	}
	return values
}

func normalizeKey(s string) string {
	return keyWhitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

func elementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == a {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(n)
	return found
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
