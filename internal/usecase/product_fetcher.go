package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// ProductFetcher wraps the content API with the fail-open policy: any
// failure becomes an empty list plus a diagnostic
type ProductFetcher struct {
	api    domain.ContentAPI
	logger *zap.Logger
}

// NewProductFetcher creates a fetcher over the given content API
func NewProductFetcher(api domain.ContentAPI, logger *zap.Logger) *ProductFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductFetcher{api: api, logger: logger}
}

// Fetch loads the products of a folder and applies the tag filter.
// It never returns an error; check FetchResult.Diagnostic instead.
func (f *ProductFetcher) Fetch(ctx context.Context, query domain.ProductQuery) domain.FetchResult {
	if query.FolderPath == "" {
		return domain.FetchResult{Products: []domain.ProductRecord{}}
	}

	items, err := f.api.QueryProducts(ctx, query)
	if err != nil {
		f.logger.Warn("product fetch failed",
			zap.String("folder", query.FolderPath),
			zap.Bool("legacy", query.IsLegacy),
			zap.Bool("author", query.IsAuthor),
			zap.Error(err))
		return domain.FetchResult{Products: []domain.ProductRecord{}, Diagnostic: err}
	}
	if items == nil {
		items = []domain.ProductRecord{}
	}

	if !query.TagFilter.IsEmpty() {
		before := len(items)
		items = FilterByCategory(items, query.TagFilter)
		f.logger.Debug("category filter applied",
			zap.Strings("tags", query.TagFilter.Entries()),
			zap.Int("before", before),
			zap.Int("after", len(items)))
	}

	return domain.FetchResult{Products: items}
}
