// Package registry maps export format names to their renderers.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Target is what a renderer turns into bytes: a pathway, or a list of
// events folded into one model. Exactly one of Pathway and Events is set.
type Target struct {
	Graph   *domain.Graph
	Pathway *domain.Pathway
	Events  []domain.Event
}

// Rendered is the output of a renderer. ID names the file: the pathway
// dbId, or the model id of an event list.
type Rendered struct {
	ID   string
	Data []byte
}

// RenderFunc renders a target into a format's serialization.
type RenderFunc func(ctx context.Context, t Target) (Rendered, error)

// Format describes one output format.
type Format struct {
	Name        string
	Aliases     []string
	Extension   string
	ContentType string
	// PathwaysOnly formats reject event-list targets.
	PathwaysOnly bool
	Render       RenderFunc
}

// FileName names the file a pathway or model id is written to.
func (f Format) FileName(id string) string {
	return id + f.Extension
}

// Registry manages the available formats.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
	aliases map[string]string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
		aliases: make(map[string]string),
	}
}

// Register adds a format under its name and aliases.
// A format with the same name is overwritten.
func (r *Registry) Register(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := strings.ToLower(f.Name)
	r.formats[name] = f
	for _, a := range f.Aliases {
		r.aliases[strings.ToLower(a)] = name
	}
}

// Lookup resolves a name or alias, case-insensitively.
func (r *Registry) Lookup(name string) (Format, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	f, ok := r.formats[key]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, name)
	}
	return f, nil
}

// Render looks up a format and renders t with it.
func (r *Registry) Render(ctx context.Context, name string, t Target) (Rendered, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return Rendered{}, err
	}
	if f.PathwaysOnly && t.Pathway == nil {
		return Rendered{}, fmt.Errorf("format %s exports pathways only", f.Name)
	}
	if f.Render == nil {
		return Rendered{}, fmt.Errorf("format %s has no renderer", f.Name)
	}
	return f.Render(ctx, t)
}

// Names lists the registered format names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.formats))
	for _, f := range r.formats {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
