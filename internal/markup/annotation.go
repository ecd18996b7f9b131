package markup

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/style"
)

// Annotation is one styled range in the model. Annotations are created
// through the model and identified by ID; an annotation removed from
// its model is invalidated but may still be referenced by holders.
type Annotation struct {
	// ID uniquely identifies the annotation.
	ID uuid.UUID

	// Range is the annotated document range.
	Range buffer.Range

	// Layer classifies the annotation.
	Layer Layer

	// Priority controls stacking against overlapping annotations.
	Priority Priority

	// Attributes is the styling the annotation applies.
	Attributes style.TextAttributes

	valid bool
}

// NewAnnotation creates a standalone annotation. Most callers should go
// through Model.Add instead.
func NewAnnotation(r buffer.Range, layer Layer, priority Priority, attrs style.TextAttributes) *Annotation {
	return &Annotation{
		ID:         uuid.New(),
		Range:      r,
		Layer:      layer,
		Priority:   priority,
		Attributes: attrs,
		valid:      true,
	}
}

// IsValid reports whether the annotation is still live and its range is
// well-formed and non-empty.
func (a *Annotation) IsValid() bool {
	return a.valid && a.Range.IsValid() && !a.Range.IsEmpty()
}

// Invalidate marks the annotation stale. Stale annotations are skipped
// by cursors.
func (a *Annotation) Invalidate() {
	a.valid = false
}

// String returns a debug representation.
func (a *Annotation) String() string {
	return fmt.Sprintf("%s %v %s p%d", a.ID, a.Range, a.Layer, a.Priority)
}
