package scheme

import "sort"

// Registry holds available schemes.
type Registry struct {
	schemes map[string]*Scheme
	current *Scheme
}

// NewRegistry creates a registry with the built-in schemes. The default
// dark scheme starts current.
func NewRegistry() *Registry {
	r := &Registry{
		schemes: make(map[string]*Scheme),
	}

	r.Register(DefaultDark())
	r.Register(Monokai())
	r.Register(Dracula())
	r.Register(SolarizedDark())
	r.Register(Light())

	r.current = r.schemes["Default Dark"]
	return r
}

// Register adds a scheme to the registry, replacing any scheme with the
// same name.
func (r *Registry) Register(s *Scheme) {
	r.schemes[s.Name] = s
}

// Get returns a scheme by name.
func (r *Registry) Get(name string) (*Scheme, bool) {
	s, ok := r.schemes[name]
	return s, ok
}

// Current returns the current scheme.
func (r *Registry) Current() *Scheme {
	return r.current
}

// SetCurrent sets the current scheme by name.
func (r *Registry) SetCurrent(name string) bool {
	if s, ok := r.schemes[name]; ok {
		r.current = s
		return true
	}
	return false
}

// Names returns all registered scheme names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
