package ports

import "context"

// OutputSink receives rendered documents.
type OutputSink interface {
	// Write stores data under name, replacing any previous content.
	Write(ctx context.Context, name string, data []byte) error
}

// ExportCache stores rendered documents between runs.
type ExportCache interface {
	// Get returns domain.ErrCacheMiss when nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
