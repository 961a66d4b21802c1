package domain

import "context"

// ContentAPI defines the interface for querying the GraphQL persisted queries
type ContentAPI interface {
	QueryProducts(ctx context.Context, query ProductQuery) ([]ProductRecord, error)
}

// BlockMarkup is the read side of an authored block
type BlockMarkup interface {
	// FirstAnchor returns the href and text of the first <a> in the block
	FirstAnchor() (href, text string, ok bool)
	// ConfigValues returns the values of a key/value configuration row
	ConfigValues(key string) []string
	// Dataset returns a data-* attribute of the block element
	Dataset(name string) string
}

// EnvironmentDetector decides whether a page host is an authoring context
type EnvironmentDetector interface {
	IsAuthorEnvironment(host string) bool
}

// InvocationTracker hands out a generation token per container so results
// of a superseded fetch can be discarded
type InvocationTracker interface {
	Begin(containerID string) string
	IsCurrent(containerID, token string) bool
	Finish(containerID, token string)
}
