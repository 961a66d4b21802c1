package usecase

import (
	"context"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// MockContentAPI is a mock implementation of domain.ContentAPI
type MockContentAPI struct {
	items   []domain.ProductRecord
	err     error
	calls   int
	queries []domain.ProductQuery
	onQuery func()
}

func NewMockContentAPI() *MockContentAPI {
	return &MockContentAPI{}
}

func (m *MockContentAPI) QueryProducts(ctx context.Context, query domain.ProductQuery) ([]domain.ProductRecord, error) {
	m.calls++
	m.queries = append(m.queries, query)
	if m.onQuery != nil {
		m.onQuery()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

// MockBlock is a mock implementation of domain.BlockMarkup
type MockBlock struct {
	href, text string
	hasAnchor  bool
	config     map[string][]string
	dataset    map[string]string
}

func (m *MockBlock) FirstAnchor() (string, string, bool) {
	return m.href, m.text, m.hasAnchor
}

func (m *MockBlock) ConfigValues(key string) []string {
	return m.config[key]
}

func (m *MockBlock) Dataset(name string) string {
	return m.dataset[name]
}

// staticEnv answers IsAuthorEnvironment with a fixed value
type staticEnv bool

func (s staticEnv) IsAuthorEnvironment(string) bool { return bool(s) }
