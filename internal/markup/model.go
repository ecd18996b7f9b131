package markup

import (
	"sort"

	"github.com/google/uuid"

	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/style"
)

// Model stores annotations sorted by range start. It is not safe for
// concurrent use; the export pipeline requires the document and its
// models to be stable for the duration of a call anyway.
type Model struct {
	annotations []*Annotation
	openCursors int
}

// NewModel creates an empty annotation model.
func NewModel() *Model {
	return &Model{}
}

// Add creates an annotation and inserts it into the model.
func (m *Model) Add(r buffer.Range, layer Layer, priority Priority, attrs style.TextAttributes) *Annotation {
	a := NewAnnotation(r, layer, priority, attrs)
	m.insert(a)
	return a
}

// insert places the annotation keeping the slice sorted by start
// offset. Equal starts keep insertion order.
func (m *Model) insert(a *Annotation) {
	idx := sort.Search(len(m.annotations), func(i int) bool {
		return m.annotations[i].Range.Start > a.Range.Start
	})
	m.annotations = append(m.annotations, nil)
	copy(m.annotations[idx+1:], m.annotations[idx:])
	m.annotations[idx] = a
}

// Remove deletes the annotation with the given ID and invalidates it.
func (m *Model) Remove(id uuid.UUID) bool {
	for i, a := range m.annotations {
		if a.ID == id {
			a.Invalidate()
			m.annotations = append(m.annotations[:i], m.annotations[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes and invalidates all annotations.
func (m *Model) Clear() {
	for _, a := range m.annotations {
		a.Invalidate()
	}
	m.annotations = nil
}

// Len returns the number of annotations in the model.
func (m *Model) Len() int {
	return len(m.annotations)
}

// All returns the annotations in start order. The slice is a copy.
func (m *Model) All() []*Annotation {
	out := make([]*Annotation, len(m.annotations))
	copy(out, m.annotations)
	return out
}

// Overlapping returns a cursor over the annotations overlapping the
// window, in start order. The caller must Close the cursor.
func (m *Model) Overlapping(window buffer.Range) *Cursor {
	var items []*Annotation
	for _, a := range m.annotations {
		if a.Range.Start >= window.End {
			break
		}
		if a.Range.Overlaps(window) {
			items = append(items, a)
		}
	}
	m.openCursors++
	return &Cursor{model: m, items: items}
}

// OpenCursors returns the number of cursors not yet closed. Exports
// must leave this at zero.
func (m *Model) OpenCursors() int {
	return m.openCursors
}

// Cursor walks a window's annotations in start order.
type Cursor struct {
	model  *Model
	items  []*Annotation
	idx    int
	closed bool
}

// Next returns the next annotation, or false when exhausted or closed.
func (c *Cursor) Next() (*Annotation, bool) {
	if c.closed || c.idx >= len(c.items) {
		return nil, false
	}
	a := c.items[c.idx]
	c.idx++
	return a, true
}

// Close releases the cursor. Idempotent.
func (c *Cursor) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.model.openCursors--
}
