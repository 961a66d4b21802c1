package render

import "github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"

// View is the structured (JSON/YAML) form of a built lister
type View struct {
	Context    domain.RenderContext `json:"context" yaml:"context"`
	Tags       []string             `json:"tags" yaml:"tags"`
	Cards      []CardView           `json:"cards" yaml:"cards"`
	Empty      bool                 `json:"empty" yaml:"empty"`
	Diagnostic string               `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
}

// CardView adds the image mode name to a card
type CardView struct {
	domain.Card `yaml:",inline"`
	ImageMode   string `json:"imageMode" yaml:"imageMode"`
}

// NewView converts a block for structured output
func NewView(b *domain.Block) View {
	view := View{
		Context: b.Context,
		Tags:    b.Tags,
		Cards:   make([]CardView, 0, len(b.Cards)),
		Empty:   b.Empty(),
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	for _, c := range b.Cards {
		view.Cards = append(view.Cards, CardView{Card: c, ImageMode: c.ImageMode.String()})
	}
	if b.Diagnostic != nil {
		view.Diagnostic = b.Diagnostic.Error()
	}
	return view
}
