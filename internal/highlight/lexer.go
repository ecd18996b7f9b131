package highlight

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/tidwall/match"
)

// Lexer tokenizes source text one line at a time.
type Lexer interface {
	// HighlightLine tokenizes a single line and returns the tokens.
	// prevState is the lexer state from the previous line (for multi-line
	// constructs). Returns the tokens, sorted by StartCol and
	// non-overlapping, and the state at the end of the line.
	HighlightLine(line string, prevState LexerState) ([]Token, LexerState)

	// Language returns the language this lexer supports.
	Language() string

	// FileExtensions returns the file extensions this lexer handles.
	FileExtensions() []string
}

// Registry manages available lexers.
type Registry struct {
	mu sync.RWMutex

	// byLanguage maps language names to lexers
	byLanguage map[string]Lexer

	// byExtension maps file extensions to lexers
	byExtension map[string]Lexer

	// patterns are filename glob patterns checked in registration order,
	// for files identified by name rather than extension (".babelrc",
	// "Dockerfile.*" and the like)
	patterns []patternEntry
}

type patternEntry struct {
	glob  string
	lexer Lexer
}

// NewRegistry creates an empty lexer registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage:  make(map[string]Lexer),
		byExtension: make(map[string]Lexer),
	}
}

// Register adds a lexer to the registry.
func (r *Registry) Register(l Lexer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byLanguage[l.Language()] = l
	for _, ext := range l.FileExtensions() {
		r.byExtension[ext] = l
	}
}

// RegisterPattern associates a filename glob pattern with a lexer.
// Patterns are matched against the base name of the file.
func (r *Registry) RegisterPattern(glob string, l Lexer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = append(r.patterns, patternEntry{glob: glob, lexer: l})
}

// GetByLanguage returns a lexer for the given language.
func (r *Registry) GetByLanguage(language string) (Lexer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byLanguage[language]
	return l, ok
}

// GetByExtension returns a lexer for the given file extension.
func (r *Registry) GetByExtension(ext string) (Lexer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ext == "" {
		return nil, false
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	l, ok := r.byExtension[ext]
	return l, ok
}

// GetByFilename returns a lexer for the given file path. The extension
// is consulted first; registered filename patterns act as a fallback.
func (r *Registry) GetByFilename(path string) (Lexer, bool) {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		if l, ok := r.GetByExtension(ext); ok {
			return l, true
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patterns {
		if match.Match(base, p.glob) {
			return p.lexer, true
		}
	}
	return nil, false
}

// Languages returns all registered language names, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultRegistry returns a registry with all built-in lexers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltinLexers(r)
	return r
}
