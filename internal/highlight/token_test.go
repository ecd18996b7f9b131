package highlight

import "testing"

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{TokenNone, "none"},
		{TokenCommentLine, "comment.line"},
		{TokenString, "string"},
		{TokenKeywordControl, "keyword.control"},
		{TokenMarkupHeading, "markup.heading"},
		{tokenTypeCount, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenTypeFromString(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  TokenType
	}{
		{"exact match", "comment.line", TokenCommentLine},
		{"parent fallback", "comment.line.double-slash", TokenCommentLine},
		{"deep fallback", "keyword.control.flow.go", TokenKeywordControl},
		{"top level", "string", TokenString},
		{"unknown", "bogus.scope", TokenNone},
		{"empty", "", TokenNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenTypeFromString(tt.scope); got != tt.want {
				t.Errorf("TokenTypeFromString(%q) = %v, want %v", tt.scope, got, tt.want)
			}
		})
	}
}

func TestTokenTypeClassification(t *testing.T) {
	if !TokenCommentDoc.IsComment() {
		t.Error("TokenCommentDoc.IsComment() = false")
	}
	if TokenString.IsComment() {
		t.Error("TokenString.IsComment() = true")
	}
	if !TokenStringEscape.IsString() {
		t.Error("TokenStringEscape.IsString() = false")
	}
	if !TokenNumberBinary.IsNumber() {
		t.Error("TokenNumberBinary.IsNumber() = false")
	}
	if !TokenKeywordDeclaration.IsKeyword() {
		t.Error("TokenKeywordDeclaration.IsKeyword() = false")
	}
	if !TokenConstantLanguage.IsIdentifier() {
		t.Error("TokenConstantLanguage.IsIdentifier() = false")
	}
	if !TokenMarkupCode.IsMarkup() {
		t.Error("TokenMarkupCode.IsMarkup() = false")
	}
}

func TestTokenContains(t *testing.T) {
	tok := Token{Type: TokenString, StartCol: 3, EndCol: 7}
	if tok.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tok.Len())
	}
	for col, want := range map[uint32]bool{2: false, 3: true, 6: true, 7: false} {
		if got := tok.Contains(col); got != want {
			t.Errorf("Contains(%d) = %v, want %v", col, got, want)
		}
	}
}
