package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// DecorateRequest is one decoration of an authored block
type DecorateRequest struct {
	Block       domain.BlockMarkup
	Host        string
	PagePath    string
	ContainerID string
}

// ListRequest lists products without authored markup
type ListRequest struct {
	FolderPath  string
	TagFilter   domain.TagFilter
	Host        string
	PagePath    string
	ContainerID string
}

// ListerService runs config extraction, fetch, filter and card building in
// that order
type ListerService struct {
	fetcher *ProductFetcher
	env     domain.EnvironmentDetector
	tracker domain.InvocationTracker
	logger  *zap.Logger
}

// NewListerService creates a lister service with dependencies
func NewListerService(
	api domain.ContentAPI,
	env domain.EnvironmentDetector,
	tracker domain.InvocationTracker,
	logger *zap.Logger,
) *ListerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracker == nil {
		tracker = untracked{}
	}

	logger = logger.Named("lister")
	return &ListerService{
		fetcher: NewProductFetcher(api, logger),
		env:     env,
		tracker: tracker,
		logger:  logger,
	}
}

// Decorate builds the lister for an authored block.
// Flow: extract config -> fetch (+ filter) -> build cards
func (s *ListerService) Decorate(ctx context.Context, req DecorateRequest) (*domain.Block, error) {
	if req.Block == nil {
		return nil, domain.ErrInvalidRequest
	}

	cfg := ExtractBlockConfig(req.Block)
	return s.list(ctx, cfg, req.Host, req.PagePath, req.ContainerID)
}

// List builds the lister from an explicit folder path and tag filter
func (s *ListerService) List(ctx context.Context, req ListRequest) (*domain.Block, error) {
	cfg := ResolveBlockConfig(req.FolderPath, req.TagFilter)
	return s.list(ctx, cfg, req.Host, req.PagePath, req.ContainerID)
}

func (s *ListerService) list(
	ctx context.Context,
	cfg domain.BlockConfig,
	host, pagePath, containerID string,
) (*domain.Block, error) {
	rc := domain.RenderContext{
		IsAuthor:   s.env.IsAuthorEnvironment(host),
		IsLegacy:   cfg.IsLegacy,
		FolderPath: cfg.FolderPath,
		TagFilter:  cfg.TagFilter,
		PagePath:   pagePath,
	}

	token := s.tracker.Begin(containerID)
	defer s.tracker.Finish(containerID, token)

	result := s.fetcher.Fetch(ctx, domain.ProductQuery{
		FolderPath: rc.FolderPath,
		TagFilter:  rc.TagFilter,
		IsLegacy:   rc.IsLegacy,
		IsAuthor:   rc.IsAuthor,
	})

	if !s.tracker.IsCurrent(containerID, token) {
		s.logger.Info("discarding superseded decoration",
			zap.String("container", containerID),
			zap.String("folder", rc.FolderPath))
		return nil, domain.ErrSuperseded
	}

	cards := make([]domain.Card, 0, len(result.Products))
	for _, record := range result.Products {
		cards = append(cards, BuildCard(record, rc))
	}

	s.logger.Debug("lister built",
		zap.String("folder", rc.FolderPath),
		zap.Bool("legacy", rc.IsLegacy),
		zap.Bool("author", rc.IsAuthor),
		zap.Int("cards", len(cards)))

	return &domain.Block{
		Context:    rc,
		Tags:       rc.TagFilter.Entries(),
		Cards:      cards,
		Diagnostic: result.Diagnostic,
	}, nil
}

// untracked is used when no tracker is configured; every token stays current
type untracked struct{}

func (untracked) Begin(string) string { return "" }

func (untracked) IsCurrent(string, string) bool { return true }

func (untracked) Finish(string, string) {}
