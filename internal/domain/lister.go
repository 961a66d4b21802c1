package domain

// BlockConfig is what config extraction reads from the authored block
type BlockConfig struct {
	FolderPath string    `json:"folderPath"`
	TagFilter  TagFilter `json:"tags,omitempty"`
	IsLegacy   bool      `json:"isLegacy"`
}

// RenderContext is fixed for a single decoration
type RenderContext struct {
	IsAuthor   bool      `json:"isAuthor" yaml:"isAuthor"`
	IsLegacy   bool      `json:"isLegacy" yaml:"isLegacy"`
	FolderPath string    `json:"folderPath" yaml:"folderPath"`
	TagFilter  TagFilter `json:"tags,omitempty" yaml:"tags,omitempty"`
	PagePath   string    `json:"pagePath,omitempty" yaml:"pagePath,omitempty"`
}

// ProductQuery selects the endpoint and folder for one fetch
type ProductQuery struct {
	FolderPath string
	TagFilter  TagFilter
	IsLegacy   bool
	IsAuthor   bool
}

// FetchResult is the outcome of a product fetch. On failure Products is
// empty and Diagnostic holds the cause; callers never see a raised error.
type FetchResult struct {
	Products   []ProductRecord
	Diagnostic error
}

// OK reports whether the fetch succeeded
func (r FetchResult) OK() bool {
	return r.Diagnostic == nil
}

// ImageMode tells the renderer how to present a card image
type ImageMode int

const (
	// ImageNone means no image URL could be resolved
	ImageNone ImageMode = iota
	// ImageDirect is a plain lazy <img> with the URL as-is
	ImageDirect
	// ImagePicture is a responsive <picture> with breakpoint variants
	ImagePicture
)

// String returns the mode name used in JSON/YAML output
func (m ImageMode) String() string {
	switch m {
	case ImageDirect:
		return "direct"
	case ImagePicture:
		return "picture"
	default:
		return "none"
	}
}

// Card is the renderable form of one product
type Card struct {
	ImageURL  string    `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	ImageMode ImageMode `json:"-" yaml:"-"`
	Alt       string    `json:"alt" yaml:"alt"`
	Category  string    `json:"category" yaml:"category"`
	Title     string    `json:"title" yaml:"title"`
	Href      string    `json:"href,omitempty" yaml:"href,omitempty"`
}

// Interactive reports whether the card navigates anywhere
func (c Card) Interactive() bool {
	return c.Href != ""
}

// Block is the decorated lister: header chips plus cards in fetch order
type Block struct {
	Context    RenderContext
	Tags       []string
	Cards      []Card
	Diagnostic error
}

// Empty reports whether the grid shows the empty state
func (b *Block) Empty() bool {
	return len(b.Cards) == 0
}
