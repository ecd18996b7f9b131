package highlight

import (
	"sort"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name     string
		lookup   func() (Lexer, bool)
		wantLang string
		wantOK   bool
	}{
		{
			name:     "by language",
			lookup:   func() (Lexer, bool) { return r.GetByLanguage("go") },
			wantLang: "go",
			wantOK:   true,
		},
		{
			name:     "unknown language",
			lookup:   func() (Lexer, bool) { return r.GetByLanguage("cobol") },
			wantOK:   false,
		},
		{
			name:     "by extension with dot",
			lookup:   func() (Lexer, bool) { return r.GetByExtension(".py") },
			wantLang: "python",
			wantOK:   true,
		},
		{
			name:     "by extension without dot",
			lookup:   func() (Lexer, bool) { return r.GetByExtension("rs") },
			wantLang: "rust",
			wantOK:   true,
		},
		{
			name:   "empty extension",
			lookup: func() (Lexer, bool) { return r.GetByExtension("") },
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := tt.lookup()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && l.Language() != tt.wantLang {
				t.Errorf("Language() = %q, want %q", l.Language(), tt.wantLang)
			}
		})
	}
}

func TestRegistryByFilename(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name     string
		path     string
		wantLang string
		wantOK   bool
	}{
		{"extension wins", "/src/pkg/main.go", "go", true},
		{"typescript", "app.tsx", "javascript", true},
		{"dotfile pattern", "/home/user/.babelrc", "json", true},
		{"glob pattern", ".eslintrc.base", "json", true},
		{"suffix glob", "conf.json5", "json", true},
		{"unknown", "notes.txt", "", false},
		{"no extension no pattern", "Makefile", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := r.GetByFilename(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("GetByFilename(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && l.Language() != tt.wantLang {
				t.Errorf("Language() = %q, want %q", l.Language(), tt.wantLang)
			}
		})
	}
}

func TestRegistryLanguagesSorted(t *testing.T) {
	r := DefaultRegistry()
	langs := r.Languages()
	if len(langs) == 0 {
		t.Fatal("no languages registered")
	}
	if !sort.StringsAreSorted(langs) {
		t.Errorf("Languages() not sorted: %v", langs)
	}
	found := false
	for _, lang := range langs {
		if lang == "markdown" {
			found = true
		}
	}
	if !found {
		t.Errorf("Languages() = %v, missing markdown", langs)
	}
}
