// Package markup provides the overlay annotation model: sparse,
// possibly-overlapping styled ranges layered over a document, queried
// by the export pipeline through start-ordered cursors.
package markup

// Layer identifies what kind of annotation a range carries. Reserved
// presentation layers mark editor chrome (caret row, selection,
// diagnostic stripes) that never represents genuine text styling and is
// excluded from exports.
type Layer uint8

// Annotation layers.
const (
	LayerNone Layer = iota
	LayerSearch
	LayerDiagnostic
	LayerBookmark
	LayerDiff
	LayerCustom

	// Reserved presentation layers.
	LayerCaretRow
	LayerSelection
	LayerErrorStripe
	LayerWarningStripe
)

// IsReserved reports whether the layer is editor presentation chrome
// rather than text styling.
func (l Layer) IsReserved() bool {
	return l >= LayerCaretRow
}

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerNone:
		return "none"
	case LayerSearch:
		return "search"
	case LayerDiagnostic:
		return "diagnostic"
	case LayerBookmark:
		return "bookmark"
	case LayerDiff:
		return "diff"
	case LayerCustom:
		return "custom"
	case LayerCaretRow:
		return "caret-row"
	case LayerSelection:
		return "selection"
	case LayerErrorStripe:
		return "error-stripe"
	case LayerWarningStripe:
		return "warning-stripe"
	default:
		return "unknown"
	}
}

// Priority controls stacking when annotations overlap. Higher values
// win.
type Priority int

// Standard priority levels.
const (
	PriorityLow      Priority = 50
	PriorityNormal   Priority = 100
	PriorityHigh     Priority = 150
	PriorityCritical Priority = 200
)
