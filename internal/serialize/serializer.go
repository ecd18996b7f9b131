// Package serialize defines the output side of an export: a Serializer
// consumes one SyntaxInfo artifact and writes it in a concrete clipboard
// or interchange format. Implementations live in subpackages (html, rtf,
// ansi, pack, script); the Registry maps format names to them so the CLI
// can select one by flag.
package serialize

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/dshills/richclip/internal/richtext"
)

// ErrUnknownFormat is returned by Lookup for an unregistered format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Serializer writes a styled-text artifact in one output format.
type Serializer interface {
	// Format returns the registry name of the format ("html", "rtf", ...).
	Format() string

	// ContentType returns the MIME type of the produced output.
	ContentType() string

	// FileExtension returns the conventional file extension, dot included.
	FileExtension() string

	// Serialize writes the artifact to w. The artifact is read-only;
	// implementations must not retain it past the call.
	Serialize(w io.Writer, info *richtext.SyntaxInfo) error
}

// Registry manages available serializers.
type Registry struct {
	mu sync.RWMutex

	// byFormat maps format names to serializers
	byFormat map[string]Serializer
}

// NewRegistry creates an empty serializer registry.
func NewRegistry() *Registry {
	return &Registry{
		byFormat: make(map[string]Serializer),
	}
}

// Register adds a serializer to the registry. A later registration under
// the same format name replaces the earlier one.
func (r *Registry) Register(s Serializer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byFormat[s.Format()] = s
}

// Get returns the serializer registered under the given format name.
func (r *Registry) Get(format string) (Serializer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byFormat[format]
	return s, ok
}

// Lookup returns the serializer for the format or ErrUnknownFormat.
func (r *Registry) Lookup(format string) (Serializer, error) {
	if s, ok := r.Get(format); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Formats returns all registered format names, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
