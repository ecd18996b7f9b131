package scheme

import (
	"github.com/dshills/richclip/internal/highlight"
	"github.com/dshills/richclip/internal/style"
)

// fg builds attributes with just a foreground color set.
func fg(c style.Color) style.TextAttributes {
	return style.PlainAttributes().WithForeground(c)
}

// DefaultDark returns the default dark scheme.
func DefaultDark() *Scheme {
	comment := style.ColorFromRGB(106, 153, 85)
	keyword := style.ColorFromRGB(86, 156, 214)
	str := style.ColorFromRGB(206, 145, 120)
	number := style.ColorFromRGB(181, 206, 168)
	function := style.ColorFromRGB(220, 220, 170)
	typ := style.ColorFromRGB(78, 201, 176)
	variable := style.ColorFromRGB(156, 220, 254)
	invalid := style.ColorFromRGB(244, 71, 71)

	return &Scheme{
		Name:       "Default Dark",
		Background: style.ColorFromRGB(30, 30, 30),
		Foreground: style.ColorFromRGB(212, 212, 212),
		FontFamily: "JetBrains Mono",
		FontSize:   13,
		TokenStyles: map[highlight.TokenType]style.TextAttributes{
			highlight.TokenComment:      fg(comment).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentLine:  fg(comment).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentBlock: fg(comment).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentDoc:   fg(comment).WithFontStyle(style.AttrItalic),

			highlight.TokenString:             fg(str),
			highlight.TokenStringQuoted:       fg(str),
			highlight.TokenStringInterpolated: fg(str),
			highlight.TokenStringRegexp:       fg(str),
			highlight.TokenStringEscape:       fg(style.ColorFromRGB(215, 186, 125)),

			highlight.TokenNumber:        fg(number),
			highlight.TokenNumberInteger: fg(number),
			highlight.TokenNumberFloat:   fg(number),
			highlight.TokenNumberHex:     fg(number),
			highlight.TokenNumberOctal:   fg(number),
			highlight.TokenNumberBinary:  fg(number),

			highlight.TokenKeyword:            fg(keyword),
			highlight.TokenKeywordControl:     fg(keyword),
			highlight.TokenKeywordOperator:    fg(keyword),
			highlight.TokenKeywordOther:       fg(keyword),
			highlight.TokenKeywordDeclaration: fg(keyword),

			highlight.TokenIdentifier:        fg(variable),
			highlight.TokenVariable:          fg(variable),
			highlight.TokenVariableParameter: fg(variable),
			highlight.TokenConstant:          fg(style.ColorFromRGB(79, 193, 255)),
			highlight.TokenConstantLanguage:  fg(keyword),

			highlight.TokenFunction:            fg(function),
			highlight.TokenFunctionDeclaration: fg(function),
			highlight.TokenFunctionCall:        fg(function),
			highlight.TokenFunctionBuiltin:     fg(function),

			highlight.TokenTypeName:      fg(typ),
			highlight.TokenTypeBuiltin:   fg(typ),
			highlight.TokenTypeParameter: fg(typ),

			highlight.TokenStorage:         fg(keyword),
			highlight.TokenStorageModifier: fg(keyword),

			highlight.TokenInvalid:           fg(invalid),
			highlight.TokenInvalidDeprecated: fg(invalid).WithFontStyle(style.AttrStrikethrough),
			highlight.TokenInvalidIllegal:    fg(invalid).WithFontStyle(style.AttrBold),

			highlight.TokenMarkupHeading: fg(keyword).WithFontStyle(style.AttrBold),
			highlight.TokenMarkupBold:    style.PlainAttributes().WithFontStyle(style.AttrBold),
			highlight.TokenMarkupItalic:  style.PlainAttributes().WithFontStyle(style.AttrItalic),
			highlight.TokenMarkupStrike:  style.PlainAttributes().WithFontStyle(style.AttrStrikethrough),
			highlight.TokenMarkupCode:    fg(str),
			highlight.TokenMarkupLink:    fg(typ).WithFontStyle(style.AttrUnderline),

			highlight.TokenMeta:      fg(style.ColorFromRGB(155, 155, 155)),
			highlight.TokenAttribute: fg(variable),
		},
		ScopeStyles: make(map[string]style.TextAttributes),
	}
}

// Monokai returns a Monokai-inspired scheme.
func Monokai() *Scheme {
	pink := style.ColorFromRGB(249, 38, 114)
	green := style.ColorFromRGB(166, 226, 46)
	orange := style.ColorFromRGB(253, 151, 31)
	yellow := style.ColorFromRGB(230, 219, 116)
	blue := style.ColorFromRGB(102, 217, 239)
	purple := style.ColorFromRGB(174, 129, 255)
	comment := style.ColorFromRGB(117, 113, 94)
	white := style.ColorFromRGB(248, 248, 242)

	return &Scheme{
		Name:       "Monokai",
		Background: style.ColorFromRGB(39, 40, 34),
		Foreground: white,
		FontFamily: "JetBrains Mono",
		FontSize:   13,
		TokenStyles: map[highlight.TokenType]style.TextAttributes{
			highlight.TokenComment:      fg(comment),
			highlight.TokenCommentLine:  fg(comment),
			highlight.TokenCommentBlock: fg(comment),
			highlight.TokenCommentDoc:   fg(comment),

			highlight.TokenString:             fg(yellow),
			highlight.TokenStringInterpolated: fg(yellow),
			highlight.TokenStringEscape:       fg(purple),

			highlight.TokenNumber:       fg(purple),
			highlight.TokenNumberHex:    fg(purple),
			highlight.TokenNumberOctal:  fg(purple),
			highlight.TokenNumberBinary: fg(purple),

			highlight.TokenKeyword:            fg(pink),
			highlight.TokenKeywordControl:     fg(pink),
			highlight.TokenKeywordOperator:    fg(pink),
			highlight.TokenKeywordOther:       fg(pink),
			highlight.TokenKeywordDeclaration: fg(blue).WithFontStyle(style.AttrItalic),

			highlight.TokenOperator:    fg(pink),
			highlight.TokenPunctuation: fg(white),

			highlight.TokenIdentifier:        fg(white),
			highlight.TokenVariable:          fg(white),
			highlight.TokenVariableParameter: fg(orange).WithFontStyle(style.AttrItalic),
			highlight.TokenConstant:          fg(purple),
			highlight.TokenConstantLanguage:  fg(purple),

			highlight.TokenFunction:            fg(green),
			highlight.TokenFunctionDeclaration: fg(green),
			highlight.TokenFunctionCall:        fg(green),
			highlight.TokenFunctionBuiltin:     fg(blue),

			highlight.TokenTypeName:      fg(blue).WithFontStyle(style.AttrItalic),
			highlight.TokenTypeBuiltin:   fg(blue).WithFontStyle(style.AttrItalic),
			highlight.TokenTypeParameter: fg(orange).WithFontStyle(style.AttrItalic),

			highlight.TokenStorage:         fg(pink),
			highlight.TokenStorageModifier: fg(pink),

			highlight.TokenInvalid: style.NewTextAttributes(
				pink, style.ColorFromRGB(80, 20, 40), "", style.AttrNone),
			highlight.TokenInvalidDeprecated: fg(comment).WithFontStyle(style.AttrStrikethrough),
			highlight.TokenInvalidIllegal:    fg(pink).WithFontStyle(style.AttrBold),
		},
		ScopeStyles: make(map[string]style.TextAttributes),
	}
}

// Dracula returns a Dracula-inspired scheme.
func Dracula() *Scheme {
	pink := style.ColorFromRGB(255, 121, 198)
	green := style.ColorFromRGB(80, 250, 123)
	orange := style.ColorFromRGB(255, 184, 108)
	yellow := style.ColorFromRGB(241, 250, 140)
	purple := style.ColorFromRGB(189, 147, 249)
	cyan := style.ColorFromRGB(139, 233, 253)
	red := style.ColorFromRGB(255, 85, 85)
	comment := style.ColorFromRGB(98, 114, 164)
	white := style.ColorFromRGB(248, 248, 242)

	return &Scheme{
		Name:       "Dracula",
		Background: style.ColorFromRGB(40, 42, 54),
		Foreground: white,
		FontFamily: "Fira Code",
		FontSize:   13,
		TokenStyles: map[highlight.TokenType]style.TextAttributes{
			highlight.TokenComment:      fg(comment),
			highlight.TokenCommentLine:  fg(comment),
			highlight.TokenCommentBlock: fg(comment),
			highlight.TokenCommentDoc:   fg(comment),

			highlight.TokenString:       fg(yellow),
			highlight.TokenStringEscape: fg(pink),

			highlight.TokenNumber: fg(purple),

			highlight.TokenKeyword:            fg(pink),
			highlight.TokenKeywordControl:     fg(pink),
			highlight.TokenKeywordDeclaration: fg(pink),

			highlight.TokenOperator:    fg(pink),
			highlight.TokenPunctuation: fg(white),

			highlight.TokenIdentifier:        fg(white),
			highlight.TokenVariable:          fg(white),
			highlight.TokenVariableParameter: fg(orange).WithFontStyle(style.AttrItalic),
			highlight.TokenConstant:          fg(purple),
			highlight.TokenConstantLanguage:  fg(purple),

			highlight.TokenFunction:            fg(green),
			highlight.TokenFunctionDeclaration: fg(green),
			highlight.TokenFunctionCall:        fg(green),
			highlight.TokenFunctionBuiltin:     fg(cyan),

			highlight.TokenTypeName:    fg(cyan).WithFontStyle(style.AttrItalic),
			highlight.TokenTypeBuiltin: fg(cyan).WithFontStyle(style.AttrItalic),

			highlight.TokenStorage:         fg(pink),
			highlight.TokenStorageModifier: fg(pink),

			highlight.TokenInvalid:        fg(red),
			highlight.TokenInvalidIllegal: fg(red).WithFontStyle(style.AttrBold),
		},
		ScopeStyles: make(map[string]style.TextAttributes),
	}
}

// SolarizedDark returns a Solarized Dark scheme.
func SolarizedDark() *Scheme {
	base01 := style.ColorFromRGB(88, 110, 117)
	yellow := style.ColorFromRGB(181, 137, 0)
	orange := style.ColorFromRGB(203, 75, 22)
	red := style.ColorFromRGB(220, 50, 47)
	magenta := style.ColorFromRGB(211, 54, 130)
	violet := style.ColorFromRGB(108, 113, 196)
	blue := style.ColorFromRGB(38, 139, 210)
	cyan := style.ColorFromRGB(42, 161, 152)
	green := style.ColorFromRGB(133, 153, 0)

	return &Scheme{
		Name:       "Solarized Dark",
		Background: style.ColorFromRGB(0, 43, 54),
		Foreground: style.ColorFromRGB(131, 148, 150),
		FontFamily: "Menlo",
		FontSize:   12,
		TokenStyles: map[highlight.TokenType]style.TextAttributes{
			highlight.TokenComment:      fg(base01).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentLine:  fg(base01).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentBlock: fg(base01).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentDoc:   fg(base01).WithFontStyle(style.AttrItalic),

			highlight.TokenString:       fg(cyan),
			highlight.TokenStringEscape: fg(orange),

			highlight.TokenNumber: fg(magenta),

			highlight.TokenKeyword:            fg(green),
			highlight.TokenKeywordControl:     fg(green),
			highlight.TokenKeywordDeclaration: fg(green),

			highlight.TokenOperator:    fg(green),
			highlight.TokenPunctuation: fg(base01),

			highlight.TokenIdentifier:        fg(blue),
			highlight.TokenVariable:          fg(blue),
			highlight.TokenVariableParameter: fg(blue),
			highlight.TokenConstant:          fg(violet),
			highlight.TokenConstantLanguage:  fg(violet),

			highlight.TokenFunction:            fg(blue),
			highlight.TokenFunctionDeclaration: fg(blue),
			highlight.TokenFunctionCall:        fg(blue),
			highlight.TokenFunctionBuiltin:     fg(blue),

			highlight.TokenTypeName:    fg(yellow),
			highlight.TokenTypeBuiltin: fg(yellow),

			highlight.TokenStorage:         fg(green),
			highlight.TokenStorageModifier: fg(orange),

			highlight.TokenInvalid:        fg(red),
			highlight.TokenInvalidIllegal: fg(red).WithFontStyle(style.AttrBold),
		},
		ScopeStyles: make(map[string]style.TextAttributes),
	}
}

// Light returns a light scheme.
func Light() *Scheme {
	comment := style.ColorFromRGB(0, 128, 0)
	keyword := style.ColorFromRGB(0, 0, 255)
	str := style.ColorFromRGB(163, 21, 21)
	number := style.ColorFromRGB(9, 134, 88)
	function := style.ColorFromRGB(121, 94, 38)
	typ := style.ColorFromRGB(38, 127, 153)
	variable := style.ColorFromRGB(0, 16, 128)
	operator := style.ColorFromRGB(0, 0, 0)
	invalid := style.ColorFromRGB(205, 49, 49)

	return &Scheme{
		Name:       "Light",
		Background: style.ColorFromRGB(255, 255, 255),
		Foreground: style.ColorFromRGB(0, 0, 0),
		FontFamily: "SF Mono",
		FontSize:   12,
		TokenStyles: map[highlight.TokenType]style.TextAttributes{
			highlight.TokenComment:      fg(comment).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentLine:  fg(comment).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentBlock: fg(comment).WithFontStyle(style.AttrItalic),
			highlight.TokenCommentDoc:   fg(comment).WithFontStyle(style.AttrItalic),

			highlight.TokenString:       fg(str),
			highlight.TokenStringEscape: fg(invalid),

			highlight.TokenNumber: fg(number),

			highlight.TokenKeyword:            fg(keyword),
			highlight.TokenKeywordControl:     fg(keyword),
			highlight.TokenKeywordDeclaration: fg(keyword),

			highlight.TokenOperator:    fg(operator),
			highlight.TokenPunctuation: fg(operator),

			highlight.TokenIdentifier:        fg(variable),
			highlight.TokenVariable:          fg(variable),
			highlight.TokenVariableParameter: fg(variable),
			highlight.TokenConstant:          fg(style.ColorFromRGB(0, 112, 193)),
			highlight.TokenConstantLanguage:  fg(keyword),

			highlight.TokenFunction:            fg(function),
			highlight.TokenFunctionDeclaration: fg(function),
			highlight.TokenFunctionCall:        fg(function),
			highlight.TokenFunctionBuiltin:     fg(function),

			highlight.TokenTypeName:    fg(typ),
			highlight.TokenTypeBuiltin: fg(typ),

			highlight.TokenStorage:         fg(keyword),
			highlight.TokenStorageModifier: fg(keyword),

			highlight.TokenInvalid:        fg(invalid),
			highlight.TokenInvalidIllegal: fg(invalid).WithFontStyle(style.AttrBold),
		},
		ScopeStyles: make(map[string]style.TextAttributes),
	}
}
