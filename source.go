package relver

import "context"

// TagSource yields the raw tag set the resolver works on.
type TagSource interface {
	Tags(ctx context.Context) ([]string, error)
}

// StaticSource is a fixed, pre-fetched tag list.
type StaticSource []string

// Tags returns the list unchanged.
func (s StaticSource) Tags(_ context.Context) ([]string, error) {
	return s, nil
}
