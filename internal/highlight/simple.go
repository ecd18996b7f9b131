package highlight

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule defines a highlighting rule.
type Rule struct {
	// Pattern is the regex pattern to match.
	Pattern *regexp.Regexp

	// TokenType is the type to assign to matches.
	TokenType TokenType

	// Submatch is the submatch index to use (0 for whole match).
	Submatch int
}

// multiLineRule defines a multi-line construct.
type multiLineRule struct {
	start     string
	end       string
	tokenType TokenType
	state     LexerState
}

// SimpleLexer is a regex and keyword driven lexer. Multi-line
// constructs are matched in registration order, then regex rules, then
// keywords and identifiers over whatever is left uncovered.
type SimpleLexer struct {
	language   string
	extensions []string
	rules      []Rule
	keywords   map[string]TokenType
	multiLine  []multiLineRule
}

// NewSimpleLexer creates an empty lexer for the given language.
func NewSimpleLexer(language string, extensions []string) *SimpleLexer {
	return &SimpleLexer{
		language:   language,
		extensions: extensions,
		keywords:   make(map[string]TokenType),
	}
}

// AddRule adds a highlighting rule. The pattern must compile.
func (l *SimpleLexer) AddRule(pattern string, tokenType TokenType) *SimpleLexer {
	l.rules = append(l.rules, Rule{
		Pattern:   regexp.MustCompile(pattern),
		TokenType: tokenType,
	})
	return l
}

// AddKeywords adds keywords with a specific token type.
func (l *SimpleLexer) AddKeywords(tokenType TokenType, keywords ...string) *SimpleLexer {
	for _, kw := range keywords {
		l.keywords[kw] = tokenType
	}
	return l
}

// AddMultiLine adds a multi-line construct rule.
func (l *SimpleLexer) AddMultiLine(start, end string, tokenType TokenType, state LexerState) *SimpleLexer {
	l.multiLine = append(l.multiLine, multiLineRule{
		start:     start,
		end:       end,
		tokenType: tokenType,
		state:     state,
	})
	return l
}

// Language returns the language name.
func (l *SimpleLexer) Language() string {
	return l.language
}

// FileExtensions returns the supported file extensions.
func (l *SimpleLexer) FileExtensions() []string {
	return l.extensions
}

// HighlightLine tokenizes a single line.
func (l *SimpleLexer) HighlightLine(line string, prevState LexerState) ([]Token, LexerState) {
	if prevState != LexerStateNormal {
		endIdx, found := l.findMultiLineEnd(line, prevState)
		if !found {
			// Entire line is part of the multi-line construct.
			if len(line) == 0 {
				return nil, prevState
			}
			return []Token{{
				Type:     l.tokenTypeForState(prevState),
				StartCol: 0,
				EndCol:   uint32(len(line)),
			}}, prevState
		}

		tokens := []Token{{
			Type:     l.tokenTypeForState(prevState),
			StartCol: 0,
			EndCol:   uint32(endIdx),
		}}
		rest, state := l.highlightNormal(line[endIdx:])
		for i := range rest {
			rest[i].StartCol += uint32(endIdx)
			rest[i].EndCol += uint32(endIdx)
		}
		return append(tokens, rest...), state
	}

	return l.highlightNormal(line)
}

// highlightNormal highlights a line starting in the normal state.
func (l *SimpleLexer) highlightNormal(line string) ([]Token, LexerState) {
	tokens := make([]Token, 0)
	covered := make([]bool, len(line))
	state := LexerStateNormal

	// Multi-line construct starts, earliest occurrence first. A construct
	// left unclosed swallows the rest of the line and sets the state.
	pos := 0
	for pos < len(line) {
		ruleIdx, idx := l.findNextMultiLineStart(line, pos)
		if ruleIdx < 0 {
			break
		}
		rule := l.multiLine[ruleIdx]
		bodyStart := idx + len(rule.start)
		endIdx := strings.Index(line[bodyStart:], rule.end)
		if endIdx < 0 {
			tokens = append(tokens, Token{
				Type:     rule.tokenType,
				StartCol: uint32(idx),
				EndCol:   uint32(len(line)),
			})
			markCovered(covered, idx, len(line))
			state = rule.state
			break
		}
		endPos := bodyStart + endIdx + len(rule.end)
		tokens = append(tokens, Token{
			Type:     rule.tokenType,
			StartCol: uint32(idx),
			EndCol:   uint32(endPos),
		})
		markCovered(covered, idx, endPos)
		pos = endPos
	}

	// Regex rules over uncovered text.
	for _, rule := range l.rules {
		matches := rule.Pattern.FindAllStringSubmatchIndex(line, -1)
		for _, m := range matches {
			start, end := m[0], m[1]
			if rule.Submatch > 0 && len(m) > rule.Submatch*2+1 {
				start = m[rule.Submatch*2]
				end = m[rule.Submatch*2+1]
			}
			if start >= 0 && end > start && !isCovered(covered, start, end) {
				tokens = append(tokens, Token{
					Type:     rule.TokenType,
					StartCol: uint32(start),
					EndCol:   uint32(end),
				})
				markCovered(covered, start, end)
			}
		}
	}

	// Keywords and identifiers.
	tokens = append(tokens, l.findIdentifiers(line, covered)...)

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].StartCol < tokens[j].StartCol
	})

	return tokens, state
}

// findNextMultiLineStart returns the rule index and position of the
// earliest multi-line construct start at or after pos. Ties go to the
// earlier registered rule.
func (l *SimpleLexer) findNextMultiLineStart(line string, pos int) (int, int) {
	bestRule, bestIdx := -1, -1
	for i, rule := range l.multiLine {
		idx := strings.Index(line[pos:], rule.start)
		if idx < 0 {
			continue
		}
		idx += pos
		if bestIdx < 0 || idx < bestIdx {
			bestRule, bestIdx = i, idx
		}
	}
	return bestRule, bestIdx
}

// findMultiLineEnd finds the end of a continued multi-line construct.
// Returns the index just past the terminator.
func (l *SimpleLexer) findMultiLineEnd(line string, state LexerState) (int, bool) {
	for _, rule := range l.multiLine {
		if rule.state == state {
			idx := strings.Index(line, rule.end)
			if idx >= 0 {
				return idx + len(rule.end), true
			}
			return 0, false
		}
	}
	return 0, false
}

// tokenTypeForState returns the token type for a lexer state.
func (l *SimpleLexer) tokenTypeForState(state LexerState) TokenType {
	for _, rule := range l.multiLine {
		if rule.state == state {
			return rule.tokenType
		}
	}
	return TokenNone
}

// findIdentifiers finds identifier words in the uncovered parts of the
// line and classifies keywords.
func (l *SimpleLexer) findIdentifiers(line string, covered []bool) []Token {
	tokens := make([]Token, 0)

	i := 0
	for i < len(line) {
		if covered[i] {
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		if !unicode.IsLetter(r) && r != '_' {
			i += size
			continue
		}

		start := i
		for i < len(line) {
			r, size = utf8.DecodeRuneInString(line[i:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			i += size
		}
		end := i

		if isCovered(covered, start, end) {
			continue
		}

		word := line[start:end]
		tokenType := TokenIdentifier
		if kwType, ok := l.keywords[word]; ok {
			tokenType = kwType
		}
		tokens = append(tokens, Token{
			Type:     tokenType,
			StartCol: uint32(start),
			EndCol:   uint32(end),
		})
		markCovered(covered, start, end)
	}

	return tokens
}

// isCovered checks if any byte in [start, end) is already covered.
func isCovered(covered []bool, start, end int) bool {
	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(covered); i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

// markCovered marks the bytes in [start, end) as covered.
func markCovered(covered []bool, start, end int) {
	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(covered); i++ {
		covered[i] = true
	}
}
