// Package imagegen adapts hosted image models that recolour a photo from a
// text prompt.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrNoImage is returned when a provider answers without an image.
var ErrNoImage = errors.New("provider returned no image")

// Request is one transformation.
type Request struct {
	Prompt   string
	ImageURL string
}

// Result is a generated image.
type Result struct {
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}

// Generator turns a photo and prompt into a new photo.
type Generator interface {
	// Name returns the provider name used in config and requests.
	Name() string

	// Transform runs the model. Implementations honour ctx cancellation.
	Transform(ctx context.Context, req Request) (*Result, error)
}

// APIError is a non-2xx answer from a provider.
type APIError struct {
	Provider string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.Status, e.Body)
}

// Registry holds generators by name.
type Registry struct {
	generators map[string]Generator
	fallback   string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds g. The first registered generator becomes the default.
func (r *Registry) Register(g Generator) {
	if r.fallback == "" {
		r.fallback = g.Name()
	}
	r.generators[g.Name()] = g
}

// SetDefault selects the generator used when a request names none.
func (r *Registry) SetDefault(name string) error {
	if _, ok := r.generators[name]; !ok {
		return fmt.Errorf("unknown image provider %q", name)
	}
	r.fallback = name
	return nil
}

// Get retrieves a generator by name. An empty name selects the default.
func (r *Registry) Get(name string) (Generator, bool) {
	if name == "" {
		name = r.fallback
	}
	g, ok := r.generators[name]
	return g, ok
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
