package flexconf

import (
	"fmt"
	"math/big"
)

// Position identifies a point in a source document. Column counts code
// points, not bytes; both Line and Column are 1-based.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Literals and keys
	TokenIdent
	TokenString
	TokenInt
	TokenFloat
	TokenBool
	TokenNull

	// Structure
	TokenKVSep
	TokenBlockOpen
	TokenBlockClose
	TokenItemSep
	TokenNewline

	// Indentation
	TokenIndent
	TokenDedent
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenIdent:      "Identifier",
	TokenString:     "String",
	TokenInt:        "Int",
	TokenFloat:      "Float",
	TokenBool:       "Bool",
	TokenNull:       "Null",
	TokenKVSep:      "KVSep",
	TokenBlockOpen:  "BlockOpen",
	TokenBlockClose: "BlockClose",
	TokenItemSep:    "ItemSep",
	TokenNewline:    "Newline",
	TokenIndent:     "Indent",
	TokenDedent:     "Dedent",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one lexical element. Literal holds the raw source text;
// Indent, Dedent, EOF and the synthetic Newlines (the blank-line
// separator and the one closing an unterminated last line) have none. The
// decoded payload of a literal token lives in the typed fields: Str for
// String and Identifier, Int or Big for Int, Float for Float, Bool for
// Bool.
type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
	Str     string
	Int     int64
	Big     *big.Int
	Float   float64
	Bool    bool
}

// isData reports whether the token carries document content, as opposed
// to the structural Newline/Indent/Dedent/EOF markers.
func (t Token) isData() bool {
	switch t.Kind {
	case TokenNewline, TokenIndent, TokenDedent, TokenEOF:
		return false
	}
	return true
}
