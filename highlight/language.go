package highlight

import "strings"

// language is the lexical description of one language family.
type language struct {
	name         string
	keywords     []string
	types        []string
	constants    []string
	lineComments []string
	blockComment bool // /* ... */
	tripleQuotes bool // """ and ''' strings
	backtickRaw  bool // `raw` strings may span lines
	capitalTypes bool // Capitalized identifiers are types
}

var languages = []language{
	{
		name: "go",
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
			"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
		},
		types: []string{
			"bool", "byte", "complex64", "complex128", "error", "float32", "float64",
			"int", "int8", "int16", "int32", "int64", "rune", "string",
			"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any",
		},
		constants:    []string{"true", "false", "nil", "iota"},
		lineComments: []string{"//"},
		blockComment: true,
		backtickRaw:  true,
		capitalTypes: true,
	},
	{
		name: "python",
		keywords: []string{
			"and", "as", "assert", "async", "await", "break", "class", "continue", "def",
			"del", "elif", "else", "except", "finally", "for", "from", "global", "if",
			"import", "in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
			"return", "try", "while", "with", "yield",
		},
		types:        []string{"int", "float", "str", "bool", "list", "dict", "set", "tuple", "bytes", "object"},
		constants:    []string{"True", "False", "None", "self"},
		lineComments: []string{"#"},
		tripleQuotes: true,
		capitalTypes: true,
	},
	{
		name: "javascript",
		keywords: []string{
			"async", "await", "break", "case", "catch", "class", "const", "continue",
			"debugger", "default", "delete", "do", "else", "export", "extends", "finally",
			"for", "from", "function", "if", "import", "in", "instanceof", "let", "new",
			"of", "return", "static", "super", "switch", "this", "throw", "try", "typeof",
			"var", "void", "while", "with", "yield", "interface", "type", "implements",
			"enum", "readonly", "private", "public", "protected",
		},
		types:        []string{"string", "number", "boolean", "any", "unknown", "never", "object", "void"},
		constants:    []string{"true", "false", "null", "undefined", "NaN", "Infinity"},
		lineComments: []string{"//"},
		blockComment: true,
		backtickRaw:  true,
		capitalTypes: true,
	},
	{
		name: "rust",
		keywords: []string{
			"as", "async", "await", "break", "const", "continue", "crate", "dyn", "else",
			"enum", "extern", "fn", "for", "if", "impl", "in", "let", "loop", "match",
			"mod", "move", "mut", "pub", "ref", "return", "static", "struct", "trait",
			"type", "unsafe", "use", "where", "while",
		},
		types: []string{
			"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128", "isize",
			"str", "u8", "u16", "u32", "u64", "u128", "usize", "String", "Vec", "Option", "Result",
		},
		constants:    []string{"true", "false", "None", "Some", "Ok", "Err", "self", "Self"},
		lineComments: []string{"//"},
		blockComment: true,
		capitalTypes: true,
	},
	{
		name: "shell",
		keywords: []string{
			"if", "then", "else", "elif", "fi", "for", "while", "until", "do", "done",
			"case", "esac", "in", "function", "return", "local", "export", "readonly",
			"set", "unset", "shift", "exit",
		},
		constants:    []string{"true", "false"},
		lineComments: []string{"#"},
	},
	{
		name: "sql",
		keywords: []string{
			"select", "from", "where", "insert", "into", "values", "update", "set",
			"delete", "create", "table", "drop", "alter", "join", "left", "right",
			"inner", "outer", "on", "group", "by", "order", "having", "limit", "as",
			"and", "or", "not", "in", "is", "distinct", "union", "primary", "key",
			"SELECT", "FROM", "WHERE", "INSERT", "INTO", "VALUES", "UPDATE", "SET",
			"DELETE", "CREATE", "TABLE", "DROP", "ALTER", "JOIN", "LEFT", "RIGHT",
			"INNER", "OUTER", "ON", "GROUP", "BY", "ORDER", "HAVING", "LIMIT", "AS",
			"AND", "OR", "NOT", "IN", "IS", "DISTINCT", "UNION", "PRIMARY", "KEY",
		},
		types:        []string{"int", "integer", "text", "varchar", "boolean", "INT", "INTEGER", "TEXT", "VARCHAR", "BOOLEAN"},
		constants:    []string{"null", "true", "false", "NULL", "TRUE", "FALSE"},
		lineComments: []string{"--"},
		blockComment: true,
	},
	{
		// generic covers unknown tags with the most common C-family and
		// scripting conventions.
		name: "generic",
		keywords: []string{
			"if", "else", "for", "while", "do", "switch", "case", "break", "continue",
			"return", "function", "func", "def", "class", "struct", "import", "export",
			"const", "let", "var", "new", "try", "catch", "throw",
		},
		constants:    []string{"true", "false", "null", "nil", "None", "True", "False"},
		lineComments: []string{"//", "#"},
		blockComment: true,
	},
}

var aliases = map[string]string{
	"go": "go", "golang": "go",
	"python": "python", "py": "python", "python3": "python",
	"javascript": "javascript", "js": "javascript", "jsx": "javascript", "mjs": "javascript",
	"typescript": "javascript", "ts": "javascript", "tsx": "javascript",
	"rust": "rust", "rs": "rust",
	"shell": "shell", "sh": "shell", "bash": "shell", "zsh": "shell",
	"sql": "sql",
}

func lookupLanguage(tag string) *language {
	name, ok := aliases[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		name = "generic"
	}
	for i := range languages {
		if languages[i].name == name {
			return &languages[i]
		}
	}
	return &languages[len(languages)-1]
}
