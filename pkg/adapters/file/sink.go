package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Sink implements ports.OutputSink using the local filesystem.
// Every output is a file named after the model in BasePath.
type Sink struct {
	BasePath string
}

// NewSink creates a Sink. An empty basePath means the working directory.
func NewSink(basePath string) *Sink {
	if basePath == "" {
		basePath = "."
	}
	return &Sink{BasePath: basePath}
}

// Write stores data under name, replacing any previous file.
func (s *Sink) Write(ctx context.Context, name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure output directory: %w", err)
	}

	// Written through a sibling temp file and renamed into place.
	tmp, err := os.CreateTemp(s.BasePath, "."+name+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// Read returns a previously written output.
func (s *Sink) Read(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (s *Sink) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid output name %q", name)
	}
	return filepath.Join(s.BasePath, name), nil
}

// WriterSink writes every output to a single stream, one after another.
// It backs the "-" output directory.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write copies data to the stream. name is ignored.
func (s *WriterSink) Write(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
