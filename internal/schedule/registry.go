package schedule

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "maternal-care-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// Registry holds the loaded schedule template for each domain. Templates are
// registered once at startup and read concurrently afterwards, so no lock is
// needed as long as Register is not called after serving starts.
type Registry struct {
	templates map[Domain]*Template
}

// NewRegistry creates an empty template registry
func NewRegistry() *Registry {
	return &Registry{templates: make(map[Domain]*Template)}
}

// Register validates a template and adds it to the registry. Registering a
// second template for the same domain is a seed-data error.
func (r *Registry) Register(t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := r.templates[t.Domain]; exists {
		return &apperrors.InvalidTemplateError{
			Domain: string(t.Domain),
			Reason: "template for this domain is already registered",
		}
	}
	r.templates[t.Domain] = t
	return nil
}

// Get returns the template registered for the domain
func (r *Registry) Get(domain Domain) (*Template, error) {
	t, ok := r.templates[domain]
	if !ok {
		return nil, &apperrors.TemplateNotFoundError{Domain: string(domain)}
	}
	return t, nil
}

// Domains lists the registered domains in stable order
func (r *Registry) Domains() []Domain {
	out := make([]Domain, 0, len(r.templates))
	for d := range r.templates {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LoadDir reads every YAML template file in dir and returns a registry with
// all of them registered. Any malformed file fails the whole load; a broken
// schedule must never be served.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory %q: %w", dir, err)
	}

	registry := NewRegistry()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		tmpl, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if err := registry.Register(tmpl); err != nil {
			return nil, err
		}
	}

	if len(registry.templates) == 0 {
		return nil, fmt.Errorf("no schedule templates found in %q", dir)
	}
	return registry, nil
}

func loadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file %q: %w", path, err)
	}
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, &apperrors.InvalidTemplateError{
			Domain: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Reason: fmt.Sprintf("malformed YAML: %v", err),
		}
	}
	return &tmpl, nil
}
