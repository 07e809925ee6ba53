package lang

import "strconv"

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// TokenEOF marks the end of the token stream.
	TokenEOF TokenKind = iota

	// TokenIdent is an identifier: one or more ASCII letters or
	// underscores. The keywords "set" and "mod" are lexed as ordinary
	// identifiers and recognized by the parser from grammar position.
	TokenIdent

	// TokenString is a string literal @"...". The token text is the
	// content between the quotes, taken literally with no escape
	// processing.
	TokenString

	// TokenNumber is an octal integer literal. The token text includes
	// the 0o or 0O prefix.
	TokenNumber

	// TokenPunct is one of the literal tokens ( ) = ^ { } or the
	// compound token "(list".
	TokenPunct

	// TokenOperator is one of the single-character operators + - * /.
	TokenOperator
)

// String returns a string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenPunct:
		return "punctuation"
	case TokenOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Position locates a token or error within the source text.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number in runes, starting at 1
}

// Token is a single lexical unit with its raw text span.
// Tokens live only within one parse pass.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}

// String returns a human-readable description of the token for error
// messages.
func (t Token) String() string {
	if t.Kind == TokenEOF {
		return t.Kind.String()
	}

	return strconv.Quote(t.Text)
}
