package style

import "strings"

// Registry holds registered styles.
type Registry struct {
	styles map[string]Style
}

// DefaultRegistry is the global style registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new style registry.
func NewRegistry() *Registry {
	return &Registry{
		styles: make(map[string]Style),
	}
}

// Register adds a style to the registry.
func (r *Registry) Register(s Style) {
	r.styles[s.Name()] = s
}

// Get retrieves a style by name. Lookup is case-insensitive.
func (r *Registry) Get(name string) (Style, bool) {
	s, ok := r.styles[strings.ToLower(name)]
	return s, ok
}

// List returns all registered style names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	return names
}

// Register adds a style to the default registry.
func Register(s Style) {
	DefaultRegistry.Register(s)
}

// Get retrieves a style from the default registry.
func Get(name string) (Style, bool) {
	return DefaultRegistry.Get(name)
}

// List returns all style names in the default registry.
func List() []string {
	return DefaultRegistry.List()
}
