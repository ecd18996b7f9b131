// Package highlight provides lexical tokenization for the export
// pipeline: token types, the lexer interface, built-in lexers and a
// document-level token cursor.
package highlight

// TokenType represents the semantic type of a token.
type TokenType uint16

// Token types for syntax highlighting.
// These follow TextMate/VS Code scope naming conventions at a high level.
const (
	TokenNone TokenType = iota

	// Comments
	TokenComment
	TokenCommentLine
	TokenCommentBlock
	TokenCommentDoc

	// Strings
	TokenString
	TokenStringQuoted
	TokenStringInterpolated
	TokenStringRegexp
	TokenStringEscape

	// Numbers
	TokenNumber
	TokenNumberInteger
	TokenNumberFloat
	TokenNumberHex
	TokenNumberOctal
	TokenNumberBinary

	// Keywords
	TokenKeyword
	TokenKeywordControl     // if, else, for, while, switch, case, return
	TokenKeywordOperator    // new, delete, typeof, instanceof
	TokenKeywordOther       // package, import, export, from
	TokenKeywordDeclaration // var, let, const, func, type, struct

	// Operators and punctuation
	TokenOperator
	TokenPunctuation

	// Identifiers
	TokenIdentifier
	TokenVariable
	TokenVariableParameter
	TokenConstant
	TokenConstantLanguage // true, false, nil, null

	// Functions
	TokenFunction
	TokenFunctionDeclaration
	TokenFunctionCall
	TokenFunctionBuiltin

	// Types
	TokenTypeName
	TokenTypeBuiltin   // int, string, bool, etc.
	TokenTypeParameter // generic type parameters

	// Storage
	TokenStorage
	TokenStorageModifier // public, private, static, const

	// Markup (for markdown, HTML, etc.)
	TokenMarkup
	TokenMarkupHeading
	TokenMarkupBold
	TokenMarkupItalic
	TokenMarkupStrike
	TokenMarkupQuote
	TokenMarkupList
	TokenMarkupLink
	TokenMarkupCode

	// Invalid/Error
	TokenInvalid
	TokenInvalidDeprecated
	TokenInvalidIllegal

	// Special
	TokenMeta      // Meta information (e.g., preprocessor, decorators)
	TokenTag       // HTML/XML tags
	TokenAttribute // HTML/XML attributes
	TokenLabel     // Labels (goto targets, etc.)

	// Sentinel for iteration
	tokenTypeCount
)

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// IsComment returns true if this is a comment token.
func (t TokenType) IsComment() bool {
	return t >= TokenComment && t <= TokenCommentDoc
}

// IsString returns true if this is a string token.
func (t TokenType) IsString() bool {
	return t >= TokenString && t <= TokenStringEscape
}

// IsNumber returns true if this is a number token.
func (t TokenType) IsNumber() bool {
	return t >= TokenNumber && t <= TokenNumberBinary
}

// IsKeyword returns true if this is a keyword token.
func (t TokenType) IsKeyword() bool {
	return t >= TokenKeyword && t <= TokenKeywordDeclaration
}

// IsIdentifier returns true if this is an identifier-like token.
func (t TokenType) IsIdentifier() bool {
	return t >= TokenIdentifier && t <= TokenConstantLanguage
}

// IsMarkup returns true if this is a markup token.
func (t TokenType) IsMarkup() bool {
	return t >= TokenMarkup && t <= TokenMarkupCode
}

// Token represents one lexed token on a single line.
type Token struct {
	// Type is the semantic type of the token.
	Type TokenType

	// StartCol is the starting byte column (0-indexed).
	StartCol uint32

	// EndCol is the ending byte column (exclusive).
	EndCol uint32
}

// Len returns the length of the token in bytes.
func (t Token) Len() uint32 {
	return t.EndCol - t.StartCol
}

// Contains returns true if the column is within the token.
func (t Token) Contains(col uint32) bool {
	return col >= t.StartCol && col < t.EndCol
}

// LexerState carries the lexer's state across line boundaries for
// multi-line constructs like block comments and strings.
type LexerState uint32

// Common lexer states.
const (
	LexerStateNormal LexerState = iota
	LexerStateBlockComment
	LexerStateBlockCommentDoc
	LexerStateStringDouble
	LexerStateStringSingle
	LexerStateStringBacktick
	LexerStateStringRaw
	LexerStateStringHeredoc
)

// TokenTypeFromString converts a scope string to a TokenType.
// Supports TextMate-style scope names like "comment.line", "keyword.control".
// Unknown scopes fall back through their parent segments.
func TokenTypeFromString(scope string) TokenType {
	for len(scope) > 0 {
		if t, ok := scopeToToken[scope]; ok {
			return t
		}
		// Remove last segment
		for i := len(scope) - 1; i >= 0; i-- {
			if scope[i] == '.' {
				scope = scope[:i]
				break
			}
			if i == 0 {
				scope = ""
			}
		}
	}
	return TokenNone
}

// Scope returns the TextMate-style scope name for this token type.
func (t TokenType) Scope() string {
	return t.String()
}

// tokenTypeNames maps token types to their string names.
var tokenTypeNames = []string{
	TokenNone: "none",

	TokenComment:      "comment",
	TokenCommentLine:  "comment.line",
	TokenCommentBlock: "comment.block",
	TokenCommentDoc:   "comment.block.documentation",

	TokenString:             "string",
	TokenStringQuoted:       "string.quoted",
	TokenStringInterpolated: "string.interpolated",
	TokenStringRegexp:       "string.regexp",
	TokenStringEscape:       "string.escape",

	TokenNumber:        "number",
	TokenNumberInteger: "number.integer",
	TokenNumberFloat:   "number.float",
	TokenNumberHex:     "number.hex",
	TokenNumberOctal:   "number.octal",
	TokenNumberBinary:  "number.binary",

	TokenKeyword:            "keyword",
	TokenKeywordControl:     "keyword.control",
	TokenKeywordOperator:    "keyword.operator",
	TokenKeywordOther:       "keyword.other",
	TokenKeywordDeclaration: "keyword.declaration",

	TokenOperator:    "operator",
	TokenPunctuation: "punctuation",

	TokenIdentifier:        "identifier",
	TokenVariable:          "variable",
	TokenVariableParameter: "variable.parameter",
	TokenConstant:          "constant",
	TokenConstantLanguage:  "constant.language",

	TokenFunction:            "function",
	TokenFunctionDeclaration: "function.declaration",
	TokenFunctionCall:        "function.call",
	TokenFunctionBuiltin:     "function.builtin",

	TokenTypeName:      "type",
	TokenTypeBuiltin:   "type.builtin",
	TokenTypeParameter: "type.parameter",

	TokenStorage:         "storage",
	TokenStorageModifier: "storage.modifier",

	TokenMarkup:        "markup",
	TokenMarkupHeading: "markup.heading",
	TokenMarkupBold:    "markup.bold",
	TokenMarkupItalic:  "markup.italic",
	TokenMarkupStrike:  "markup.strike",
	TokenMarkupQuote:   "markup.quote",
	TokenMarkupList:    "markup.list",
	TokenMarkupLink:    "markup.link",
	TokenMarkupCode:    "markup.code",

	TokenInvalid:           "invalid",
	TokenInvalidDeprecated: "invalid.deprecated",
	TokenInvalidIllegal:    "invalid.illegal",

	TokenMeta:      "meta",
	TokenTag:       "tag",
	TokenAttribute: "attribute",
	TokenLabel:     "label",
}

// scopeToToken maps TextMate scope strings to token types.
var scopeToToken = func() map[string]TokenType {
	m := make(map[string]TokenType, len(tokenTypeNames))
	for i, name := range tokenTypeNames {
		if name != "" {
			m[name] = TokenType(i)
		}
	}
	return m
}()
