package source

import "context"

// Source provides one complete configuration text per read.
type Source interface {
	Name() string
	Read() (string, error)
}

// Watchable is a Source that can report rewrites of its underlying input.
type Watchable interface {
	Source

	// Watch sends the full input text on out after every change, until ctx
	// is cancelled.
	Watch(ctx context.Context, out chan<- string) error
}
