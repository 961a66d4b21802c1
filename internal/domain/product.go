package domain

import (
	"encoding/json"
	"fmt"
)

// ProductRecord is one item returned by the content API. Legacy records
// carry Image; content-fragment records carry ExternalImageURL and
// DAMImageURL. Fields belonging to the other generation are left nil.
type ProductRecord struct {
	ID       string     `json:"id,omitempty"`
	SKU      string     `json:"sku,omitempty"`
	Name     string     `json:"name,omitempty"`
	Category Categories `json:"category"`

	Image *AssetRef `json:"image,omitempty"`

	ExternalImageURL *ExternalImage `json:"externalImageURL,omitempty"`
	DAMImageURL      *AssetRef      `json:"damImageURL,omitempty"`
}

// Identifier returns the SKU, falling back to the ID
func (p ProductRecord) Identifier() string {
	if p.SKU != "" {
		return p.SKU
	}
	return p.ID
}

// Categories holds the category tags of a record. IsList reports whether
// the payload actually carried a JSON array; a missing, null or scalar
// value leaves it false.
type Categories struct {
	Values []string
	IsList bool
}

// NewCategories builds a list-shaped Categories value
func NewCategories(values ...string) Categories {
	if values == nil {
		values = []string{}
	}
	return Categories{Values: values, IsList: true}
}

// UnmarshalJSON accepts any JSON value and only keeps arrays
func (c *Categories) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	list, ok := raw.([]interface{})
	if !ok {
		*c = Categories{}
		return nil
	}

	values := make([]string, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			values = append(values, v)
		case nil:
			values = append(values, "")
		default:
			values = append(values, fmt.Sprint(v))
		}
	}

	*c = Categories{Values: values, IsList: true}
	return nil
}

// MarshalJSON writes null for non-list values
func (c Categories) MarshalJSON() ([]byte, error) {
	if !c.IsList {
		return []byte("null"), nil
	}
	return json.Marshal(c.Values)
}

// AssetRef is a DAM asset addressed by its author/publish URL pair
type AssetRef struct {
	AuthorURL  string `json:"_authorUrl,omitempty"`
	PublishURL string `json:"_publishUrl,omitempty"`
}

// URL picks the author or publish URL for the given environment
func (a *AssetRef) URL(isAuthor bool) string {
	if a == nil {
		return ""
	}
	if isAuthor {
		return a.AuthorURL
	}
	return a.PublishURL
}

// ExternalImage is the content-fragment image field. The API returns either
// a plain string or a {"plaintext": "..."} object.
type ExternalImage struct {
	URL string
}

// UnmarshalJSON accepts both the string and the plaintext-object forms
func (e *ExternalImage) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		e.URL = v
	case map[string]interface{}:
		if text, ok := v["plaintext"].(string); ok {
			e.URL = text
		} else {
			e.URL = ""
		}
	default:
		e.URL = ""
	}
	return nil
}

// MarshalJSON writes the plain string form
func (e ExternalImage) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.URL)
}
