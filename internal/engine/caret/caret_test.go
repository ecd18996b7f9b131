package caret

import (
	"testing"

	"github.com/dshills/richclip/internal/engine/buffer"
)

func TestCaretBasics(t *testing.T) {
	tests := []struct {
		name      string
		caret     Caret
		wantStart ByteOffset
		wantEnd   ByteOffset
		wantEmpty bool
		wantFwd   bool
	}{
		{"collapsed", NewAt(5), 5, 5, true, true},
		{"forward", New(2, 8), 2, 8, false, true},
		{"backward", New(8, 2), 2, 8, false, false},
		{"from range", FromRange(buffer.NewRange(1, 4)), 1, 4, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caret.Start(); got != tt.wantStart {
				t.Errorf("Start() = %d, want %d", got, tt.wantStart)
			}
			if got := tt.caret.End(); got != tt.wantEnd {
				t.Errorf("End() = %d, want %d", got, tt.wantEnd)
			}
			if got := tt.caret.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.wantEmpty)
			}
			if got := tt.caret.IsForward(); got != tt.wantFwd {
				t.Errorf("IsForward() = %v, want %v", got, tt.wantFwd)
			}
			if got, want := tt.caret.Len(), tt.wantEnd-tt.wantStart; got != want {
				t.Errorf("Len() = %d, want %d", got, want)
			}
		})
	}
}

func TestCaretRange(t *testing.T) {
	c := New(10, 3)
	r := c.Range()
	if r.Start != 3 || r.End != 10 {
		t.Errorf("Range() = %v, want [3:10)", r)
	}
}

func TestCaretWithFill(t *testing.T) {
	c := New(0, 4).WithFill(3)
	if c.Fill != 3 {
		t.Errorf("Fill = %d, want 3", c.Fill)
	}
	if got, want := c.String(), "[0:4)+3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSetNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    []Caret
		want  []Range
		multi bool
	}{
		{
			name:  "empty defaults to cursor at zero",
			in:    nil,
			want:  []Range{{Start: 0, End: 0}},
			multi: false,
		},
		{
			name:  "sorted by start",
			in:    []Caret{New(10, 14), New(2, 5)},
			want:  []Range{{Start: 2, End: 5}, {Start: 10, End: 14}},
			multi: true,
		},
		{
			name:  "overlapping merged",
			in:    []Caret{New(2, 8), New(5, 12)},
			want:  []Range{{Start: 2, End: 12}},
			multi: false,
		},
		{
			name:  "contained merged",
			in:    []Caret{New(2, 12), New(5, 8)},
			want:  []Range{{Start: 2, End: 12}},
			multi: false,
		},
		{
			name:  "touching stay distinct",
			in:    []Caret{New(2, 5), New(5, 9)},
			want:  []Range{{Start: 2, End: 5}, {Start: 5, End: 9}},
			multi: true,
		},
		{
			name:  "backward carets normalized by range",
			in:    []Caret{New(9, 5), New(3, 1)},
			want:  []Range{{Start: 1, End: 3}, {Start: 5, End: 9}},
			multi: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSetFromSlice(tt.in)
			all := s.All()
			if len(all) != len(tt.want) {
				t.Fatalf("Count() = %d, want %d", len(all), len(tt.want))
			}
			for i, c := range all {
				if c.Range() != tt.want[i] {
					t.Errorf("caret %d = %v, want %v", i, c.Range(), tt.want[i])
				}
			}
			if got := s.IsMulti(); got != tt.multi {
				t.Errorf("IsMulti() = %v, want %v", got, tt.multi)
			}
		})
	}
}

func TestSetAllReturnsCopy(t *testing.T) {
	s := NewSetFromSlice([]Caret{New(0, 3), New(5, 8)})
	all := s.All()
	all[0] = New(100, 200)
	if s.Primary().Range() != (Range{Start: 0, End: 3}) {
		t.Error("mutating All() result changed set contents")
	}
}

func TestSetAdd(t *testing.T) {
	s := NewSetAt(10)
	s.Add(New(0, 4))
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
	if s.Primary().Start() != 0 {
		t.Errorf("Primary().Start() = %d, want 0", s.Primary().Start())
	}
}

func TestNewBlockSet(t *testing.T) {
	text := buffer.NewText("alpha\nhi\nlonger line\n")

	s, err := NewBlockSet(text, buffer.Point{Line: 0, Column: 2}, buffer.Point{Line: 2, Column: 6})
	if err != nil {
		t.Fatalf("NewBlockSet() error = %v", err)
	}
	if !s.IsBlock() {
		t.Fatal("IsBlock() = false, want true")
	}
	if s.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", s.Count())
	}

	wantRanges := []Range{
		{Start: 2, End: 5},   // "pha", line length 5 clips the right edge
		{Start: 8, End: 8},   // "hi" is shorter than the left edge
		{Start: 11, End: 15}, // "nger"
	}
	wantFills := []int{1, 4, 0}
	for i, c := range s.All() {
		if c.Range() != wantRanges[i] {
			t.Errorf("caret %d range = %v, want %v", i, c.Range(), wantRanges[i])
		}
		if c.Fill != wantFills[i] {
			t.Errorf("caret %d fill = %d, want %d", i, c.Fill, wantFills[i])
		}
	}
}

func TestNewBlockSetSwappedCorners(t *testing.T) {
	text := buffer.NewText("one\ntwo\n")
	s, err := NewBlockSet(text, buffer.Point{Line: 1, Column: 3}, buffer.Point{Line: 0, Column: 1})
	if err != nil {
		t.Fatalf("NewBlockSet() error = %v", err)
	}
	want := []Range{{Start: 1, End: 3}, {Start: 5, End: 7}}
	for i, c := range s.All() {
		if c.Range() != want[i] {
			t.Errorf("caret %d range = %v, want %v", i, c.Range(), want[i])
		}
	}
}
