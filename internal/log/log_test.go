package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLReturnsContextLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	ctx := NewContext(context.Background(), l)
	L(ctx).Debug("from context", zap.Int("n", 7))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Message != "from context" {
		t.Errorf("message = %q, want %q", entries[0].Message, "from context")
	}
}

func TestLFallsBackToGlobal(t *testing.T) {
	l := L(context.Background())
	if l == nil {
		t.Fatal("L returned nil")
	}
	// The fallback must be safe to use even when nothing was installed.
	l.Debug("ignored")
}

func TestLNilContext(t *testing.T) {
	//nolint:staticcheck // nil context is the degenerate input under test
	if L(nil) == nil {
		t.Fatal("L(nil) returned nil")
	}
}

func TestInit(t *testing.T) {
	for _, verbose := range []bool{true, false} {
		l, err := Init(verbose)
		if err != nil {
			t.Fatalf("Init(%v): %v", verbose, err)
		}
		if l == nil {
			t.Fatalf("Init(%v) returned nil logger", verbose)
		}
	}
}
