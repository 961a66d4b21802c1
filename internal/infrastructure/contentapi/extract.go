package contentapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// ItemsExtractor locates the item list inside a decoded payload. It returns
// found=false when its container is absent so the next extractor can try.
type ItemsExtractor struct {
	Name string
	Path []string
}

// DefaultExtractors are tried in order: content-fragment schema, then legacy
var DefaultExtractors = []ItemsExtractor{
	{Name: "content-fragment", Path: []string{"data", "productsContentFragmentModelList", "items"}},
	{Name: "legacy", Path: []string{"data", "productsModelList", "items"}},
}

// Extract walks Path and returns the raw item list
func (e ItemsExtractor) Extract(payload json.RawMessage) (json.RawMessage, bool) {
	current := payload
	for _, key := range e.Path {
		var object map[string]json.RawMessage
		if err := json.Unmarshal(current, &object); err != nil || object == nil {
			return nil, false
		}
		next, ok := object[key]
		if !ok {
			return nil, false
		}
		current = next
	}

	if isNull(current) {
		return nil, false
	}
	return current, true
}

// skipFunc is told about each item that could not be decoded
type skipFunc func(index int, err error)

// extractItems runs the extractors in order; the first hit wins. No hit is
// an empty list, not an error. Items are decoded one by one: an item that
// does not fit ProductRecord is reported to onSkip and left out, the rest
// keep their order.
func extractItems(body []byte, extractors []ItemsExtractor, onSkip skipFunc) ([]domain.ProductRecord, string, error) {
	if !json.Valid(body) {
		return nil, "", fmt.Errorf("%w: response is not JSON", domain.ErrMalformedPayload)
	}

	for _, extractor := range extractors {
		raw, found := extractor.Extract(body)
		if !found {
			continue
		}

		var elements []json.RawMessage
		if err := json.Unmarshal(raw, &elements); err != nil {
			return nil, extractor.Name, fmt.Errorf("%w: %s items: %v", domain.ErrMalformedPayload, extractor.Name, err)
		}

		items := make([]domain.ProductRecord, 0, len(elements))
		for i, element := range elements {
			var item domain.ProductRecord
			if err := json.Unmarshal(element, &item); err != nil {
				if onSkip != nil {
					onSkip(i, err)
				}
				continue
			}
			items = append(items, item)
		}
		return items, extractor.Name, nil
	}

	return []domain.ProductRecord{}, "", nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
