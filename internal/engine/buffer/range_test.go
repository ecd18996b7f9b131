package buffer

import "testing"

func TestRangeBasics(t *testing.T) {
	r := NewRange(3, 9)

	if r.Len() != 6 {
		t.Errorf("Len() = %d, want 6", r.Len())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty range")
	}
	if !r.IsValid() {
		t.Error("IsValid() = false for valid range")
	}
	if !NewRange(5, 5).IsEmpty() {
		t.Error("IsEmpty() = false for empty range")
	}
	if NewRange(9, 3).IsValid() {
		t.Error("IsValid() = true for inverted range")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(3, 9)

	tests := []struct {
		offset ByteOffset
		want   bool
	}{
		{offset: 2, want: false},
		{offset: 3, want: true},
		{offset: 8, want: true},
		{offset: 9, want: false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.offset); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestRangeOverlapsIntersect(t *testing.T) {
	tests := []struct {
		name          string
		a, b          Range
		wantOverlap   bool
		wantIntersect Range
	}{
		{
			name:          "disjoint",
			a:             NewRange(0, 3),
			b:             NewRange(5, 8),
			wantOverlap:   false,
			wantIntersect: NewRange(5, 5),
		},
		{
			name:          "touching is not overlapping",
			a:             NewRange(0, 3),
			b:             NewRange(3, 6),
			wantOverlap:   false,
			wantIntersect: NewRange(3, 3),
		},
		{
			name:          "partial overlap",
			a:             NewRange(0, 5),
			b:             NewRange(3, 8),
			wantOverlap:   true,
			wantIntersect: NewRange(3, 5),
		},
		{
			name:          "containment",
			a:             NewRange(0, 10),
			b:             NewRange(4, 6),
			wantOverlap:   true,
			wantIntersect: NewRange(4, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.wantOverlap {
				t.Errorf("Overlaps = %v, want %v", got, tt.wantOverlap)
			}
			if got := tt.a.Intersect(tt.b); got != tt.wantIntersect {
				t.Errorf("Intersect = %v, want %v", got, tt.wantIntersect)
			}
		})
	}
}

func TestRangeShiftClamp(t *testing.T) {
	r := NewRange(3, 9)

	if got := r.Shift(10); got != NewRange(13, 19) {
		t.Errorf("Shift(10) = %v", got)
	}
	if got := r.Shift(-3); got != NewRange(0, 6) {
		t.Errorf("Shift(-3) = %v", got)
	}

	bound := NewRange(4, 7)
	if got := r.Clamp(bound); got != NewRange(4, 7) {
		t.Errorf("Clamp = %v, want [4:7)", got)
	}
	if got := NewRange(0, 2).Clamp(bound); got != NewRange(4, 4) {
		t.Errorf("Clamp of disjoint range = %v, want empty [4:4)", got)
	}
}
