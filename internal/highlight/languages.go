package highlight

// GoLexer returns a lexer for Go.
func GoLexer() *SimpleLexer {
	l := NewSimpleLexer("go", []string{".go"})

	l.AddMultiLine("/*", "*/", TokenCommentBlock, LexerStateBlockComment)
	l.AddMultiLine("`", "`", TokenString, LexerStateStringBacktick)

	l.AddRule(`//.*$`, TokenCommentLine)
	l.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	l.AddRule(`'(?:[^'\\]|\\.)'`, TokenString)
	l.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumberHex)
	l.AddRule(`\b0[oO][0-7]+\b`, TokenNumberOctal)
	l.AddRule(`\b0[bB][01]+\b`, TokenNumberBinary)
	l.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)

	l.AddKeywords(TokenKeywordControl,
		"if", "else", "for", "range", "switch", "case", "default",
		"break", "continue", "return", "goto", "fallthrough", "select")
	l.AddKeywords(TokenKeywordDeclaration,
		"func", "var", "const", "type", "struct", "interface", "map", "chan")
	l.AddKeywords(TokenKeywordOther,
		"package", "import", "defer", "go")
	l.AddKeywords(TokenConstantLanguage,
		"true", "false", "nil", "iota")
	l.AddKeywords(TokenTypeBuiltin,
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"bool", "byte", "rune", "string", "error", "any")
	l.AddKeywords(TokenFunctionBuiltin,
		"make", "new", "len", "cap", "append", "copy", "delete",
		"close", "panic", "recover", "print", "println",
		"real", "imag", "complex", "min", "max", "clear")

	return l
}

// PythonLexer returns a lexer for Python.
func PythonLexer() *SimpleLexer {
	l := NewSimpleLexer("python", []string{".py", ".pyw", ".pyi"})

	l.AddMultiLine(`"""`, `"""`, TokenString, LexerStateStringDouble)
	l.AddMultiLine(`'''`, `'''`, TokenString, LexerStateStringSingle)

	l.AddRule(`#.*$`, TokenCommentLine)
	l.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	l.AddRule(`'(?:[^'\\]|\\.)*'`, TokenString)
	l.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumberHex)
	l.AddRule(`\b0[oO][0-7]+\b`, TokenNumberOctal)
	l.AddRule(`\b0[bB][01]+\b`, TokenNumberBinary)
	l.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?j?\b`, TokenNumber)
	l.AddRule(`@\w+`, TokenMeta)

	l.AddKeywords(TokenKeywordControl,
		"if", "elif", "else", "for", "while", "break", "continue",
		"return", "try", "except", "finally", "raise", "with", "as",
		"match", "case")
	l.AddKeywords(TokenKeywordDeclaration,
		"def", "class", "lambda", "async", "await")
	l.AddKeywords(TokenKeywordOther,
		"import", "from", "global", "nonlocal", "pass", "yield",
		"assert", "del", "in", "is", "not", "and", "or")
	l.AddKeywords(TokenConstantLanguage,
		"True", "False", "None")
	l.AddKeywords(TokenTypeBuiltin,
		"int", "float", "str", "bool", "list", "dict", "set", "tuple",
		"bytes", "bytearray", "complex", "frozenset", "type", "object")
	l.AddKeywords(TokenFunctionBuiltin,
		"print", "len", "range", "enumerate", "zip", "map", "filter",
		"open", "input", "isinstance", "hasattr", "getattr", "setattr",
		"callable", "iter", "next", "sorted", "reversed",
		"sum", "min", "max", "abs", "round", "all", "any",
		"format", "repr", "id", "hash", "dir", "vars",
		"super", "property", "staticmethod", "classmethod")

	return l
}

// JavaScriptLexer returns a lexer for JavaScript and TypeScript.
func JavaScriptLexer() *SimpleLexer {
	l := NewSimpleLexer("javascript", []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"})

	l.AddMultiLine("/*", "*/", TokenCommentBlock, LexerStateBlockComment)
	l.AddMultiLine("`", "`", TokenStringInterpolated, LexerStateStringBacktick)

	l.AddRule(`//.*$`, TokenCommentLine)
	l.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	l.AddRule(`'(?:[^'\\]|\\.)*'`, TokenString)
	l.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumberHex)
	l.AddRule(`\b0[oO][0-7]+\b`, TokenNumberOctal)
	l.AddRule(`\b0[bB][01]+\b`, TokenNumberBinary)
	l.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)
	l.AddRule(`@\w+`, TokenMeta)

	l.AddKeywords(TokenKeywordControl,
		"if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "return", "throw", "try", "catch", "finally")
	l.AddKeywords(TokenKeywordDeclaration,
		"function", "var", "let", "const", "class", "extends", "async", "await",
		"type", "interface", "enum", "namespace", "module", "declare")
	l.AddKeywords(TokenKeywordOther,
		"import", "export", "from", "as", "new", "delete",
		"typeof", "instanceof", "in", "of", "this", "super", "static",
		"get", "set", "yield", "debugger", "with")
	l.AddKeywords(TokenConstantLanguage,
		"true", "false", "null", "undefined", "NaN", "Infinity")
	l.AddKeywords(TokenStorageModifier,
		"public", "private", "protected", "readonly", "abstract", "override")

	return l
}

// RustLexer returns a lexer for Rust.
func RustLexer() *SimpleLexer {
	l := NewSimpleLexer("rust", []string{".rs"})

	l.AddMultiLine("/*", "*/", TokenCommentBlock, LexerStateBlockComment)

	l.AddRule(`//.*$`, TokenCommentLine)
	l.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	l.AddRule(`'(?:[^'\\]|\\.)'`, TokenString)
	l.AddRule(`r#*"[^"]*"#*`, TokenString)
	l.AddRule(`b"(?:[^"\\]|\\.)*"`, TokenString)
	l.AddRule(`\b0[xX][0-9a-fA-F_]+\b`, TokenNumberHex)
	l.AddRule(`\b0[oO][0-7_]+\b`, TokenNumberOctal)
	l.AddRule(`\b0[bB][01_]+\b`, TokenNumberBinary)
	l.AddRule(`\b\d[\d_]*\.?[\d_]*(?:[eE][+-]?[\d_]+)?(?:f32|f64|i\d+|u\d+|isize|usize)?\b`, TokenNumber)
	l.AddRule(`#!?\[.*?\]`, TokenMeta)

	l.AddKeywords(TokenKeywordControl,
		"if", "else", "match", "for", "while", "loop", "break", "continue",
		"return", "yield")
	l.AddKeywords(TokenKeywordDeclaration,
		"fn", "let", "mut", "const", "static", "struct", "enum", "trait",
		"impl", "type", "mod", "macro_rules")
	l.AddKeywords(TokenKeywordOther,
		"use", "crate", "super", "self", "Self", "pub", "where", "as",
		"async", "await", "dyn", "move", "ref", "unsafe", "extern")
	l.AddKeywords(TokenConstantLanguage,
		"true", "false", "None", "Some", "Ok", "Err")
	l.AddKeywords(TokenTypeBuiltin,
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str", "String",
		"Vec", "Box", "Option", "Result")
	l.AddKeywords(TokenFunctionBuiltin,
		"println", "print", "format", "panic", "assert", "debug_assert",
		"todo", "unimplemented", "unreachable")

	return l
}

// MarkdownLexer returns a lexer for Markdown.
func MarkdownLexer() *SimpleLexer {
	l := NewSimpleLexer("markdown", []string{".md", ".markdown"})

	// Order matters, more specific rules first.
	l.AddRule("^#{1,6}\\s+.*$", TokenMarkupHeading)
	l.AddRule("\\*\\*[^*]+\\*\\*", TokenMarkupBold)
	l.AddRule("__[^_]+__", TokenMarkupBold)
	l.AddRule("\\*[^*]+\\*", TokenMarkupItalic)
	l.AddRule("_[^_]+_", TokenMarkupItalic)
	l.AddRule("~~[^~]+~~", TokenMarkupStrike)
	l.AddRule("`[^`]+`", TokenMarkupCode)
	l.AddRule("^```.*$", TokenMarkupCode)
	l.AddRule("^>\\s+.*$", TokenMarkupQuote)
	l.AddRule("^\\s*[-*+]\\s+", TokenMarkupList)
	l.AddRule("^\\s*\\d+\\.\\s+", TokenMarkupList)
	l.AddRule("\\[([^\\]]+)\\]\\(([^)]+)\\)", TokenMarkupLink)

	return l
}

// JSONLexer returns a lexer for JSON.
func JSONLexer() *SimpleLexer {
	l := NewSimpleLexer("json", []string{".json", ".jsonc"})

	l.AddRule(`"(?:[^"\\]|\\.)*"\s*:`, TokenAttribute)
	l.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	l.AddRule(`-?\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)
	l.AddRule(`//.*$`, TokenCommentLine)

	l.AddKeywords(TokenConstantLanguage, "true", "false", "null")

	return l
}

// RegisterBuiltinLexers registers all built-in lexers, including
// filename patterns for extensionless config files.
func RegisterBuiltinLexers(r *Registry) {
	r.Register(GoLexer())
	r.Register(PythonLexer())
	r.Register(JavaScriptLexer())
	r.Register(RustLexer())
	r.Register(MarkdownLexer())

	js := JSONLexer()
	r.Register(js)
	r.RegisterPattern(".babelrc", js)
	r.RegisterPattern(".eslintrc*", js)
	r.RegisterPattern("*.json5", js)
}
