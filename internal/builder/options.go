package builder

import (
	"log/slog"
	"time"
)

// DefaultToolVersion is reported in provenance when no version is configured.
const DefaultToolVersion = "dev"

// Option configures a Builder.
type Option func(*Builder)

// WithAnnotations toggles cross-references, history, provenance and notes.
// Annotations are on by default.
func WithAnnotations(on bool) Option {
	return func(b *Builder) {
		b.annotations = on
	}
}

// WithTestMode suppresses time-sensitive provenance and parent inference so
// output can be compared across runs.
func WithTestMode(on bool) Option {
	return func(b *Builder) {
		b.testMode = on
	}
}

// WithDBVersion records the source database release in provenance.
func WithDBVersion(v int) Option {
	return func(b *Builder) {
		b.dbVersion = v
	}
}

// WithLogger sets the logger for skipped or unrecognised source structure.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock overrides the provenance timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithToolVersion sets the exporter version named in provenance.
func WithToolVersion(v string) Option {
	return func(b *Builder) {
		if v != "" {
			b.toolVersion = v
		}
	}
}
