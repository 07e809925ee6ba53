package lang

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"
)

// Lexer converts manifest source text into a token stream. The stream is
// lazy, finite, and non-restartable: each call to Next consumes input.
type Lexer struct {
	input []byte
	pos   int
	line  int
	col   int
}

// NewLexer creates a lexer over the given source text.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: []byte(input),
		pos:   0,
		line:  1,
		col:   1,
	}
}

// Next returns the next token in the stream, or a *LexError at the first
// position that matches none of the language's lexical rules. After the
// input is exhausted, Next returns a TokenEOF token indefinitely.
func (l *Lexer) Next() (Token, error) {
	err := l.skipWhitespaceAndComments()
	if err != nil {
		return Token{}, err
	}

	pos := l.position()

	if l.eof() {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}

	switch ch := l.peek(); {
	case ch == '@':
		return l.lexString()

	case ch == '0':
		return l.lexNumber()

	case isIdent(ch):
		return l.lexIdentifier()

	case ch == '(':
		// "(list" is a single compound token; a lone "(" is punctuation.
		if l.peekN(5) == "(list" {
			l.advanceN(5)

			return Token{Kind: TokenPunct, Text: "(list", Pos: pos}, nil
		}

		l.advance()

		return Token{Kind: TokenPunct, Text: "(", Pos: pos}, nil

	case ch == ')' || ch == '=' || ch == '^' || ch == '{' || ch == '}':
		l.advance()

		return Token{Kind: TokenPunct, Text: string(ch), Pos: pos}, nil

	case ch == '+' || ch == '-' || ch == '*' || ch == '/':
		l.advance()

		return Token{Kind: TokenOperator, Text: string(ch), Pos: pos}, nil

	default:
		return Token{}, &LexError{
			Pos: pos,
			Err: ErrUnexpectedChar.Wrap(fmt.Errorf("%q", ch)),
		}
	}
}

// All returns an iterator over the remaining tokens, ending after the
// first error or TokenEOF (inclusive).
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if !yield(tok, err) || err != nil || tok.Kind == TokenEOF {
				return
			}
		}
	}
}

// lexString scans a string literal @"...". The token text is the content
// between the quotes, taken literally.
func (l *Lexer) lexString() (Token, error) {
	pos := l.position()

	l.advance() // skip '@'

	if l.peek() != '"' {
		return Token{}, &LexError{
			Pos: pos,
			Err: ErrUnexpectedChar.Wrap(fmt.Errorf("%q", '@')),
		}
	}

	l.advance() // skip opening '"'

	start := l.pos

	for !l.eof() && l.peek() != '"' {
		l.advance()
	}

	if l.eof() {
		return Token{}, &LexError{Pos: pos, Err: ErrUnterminatedString}
	}

	text := string(l.input[start:l.pos])

	l.advance() // skip closing '"'

	return Token{Kind: TokenString, Text: text, Pos: pos}, nil
}

// lexNumber scans an octal integer literal: 0o or 0O followed by one or
// more octal digits. No other radix is recognized.
func (l *Lexer) lexNumber() (Token, error) {
	pos := l.position()
	start := l.pos

	l.advance() // skip '0'

	if ch := l.peek(); ch != 'o' && ch != 'O' {
		return Token{}, &LexError{
			Pos: pos,
			Err: ErrInvalidOctal.Wrap(fmt.Errorf("%q", l.peekN(2))),
		}
	}

	l.advance() // skip radix marker

	digits := 0
	for !l.eof() && l.peek() >= '0' && l.peek() <= '7' {
		l.advance()
		digits++
	}

	if digits == 0 {
		return Token{}, &LexError{
			Pos: pos,
			Err: ErrInvalidOctal.Wrap(fmt.Errorf("%q", string(l.input[start:l.pos]))),
		}
	}

	return Token{
		Kind: TokenNumber,
		Text: string(l.input[start:l.pos]),
		Pos:  pos,
	}, nil
}

// lexIdentifier scans one or more ASCII letters or underscores.
func (l *Lexer) lexIdentifier() (Token, error) {
	pos := l.position()
	start := l.pos

	for !l.eof() && isIdent(l.peek()) {
		l.advance()
	}

	return Token{
		Kind: TokenIdent,
		Text: string(l.input[start:l.pos]),
		Pos:  pos,
	}, nil
}

// skipWhitespaceAndComments consumes whitespace and %{ ... %} block
// comments. Comment matching is non-greedy: the first %} terminates.
func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		for !l.eof() && unicode.IsSpace(l.peek()) {
			l.advance()
		}

		if l.peek() == '%' && l.peekN(2) == "%{" {
			err := l.skipBlockComment()
			if err != nil {
				return err
			}

			continue
		}

		return nil
	}
}

func (l *Lexer) skipBlockComment() error {
	pos := l.position()

	l.advance() // skip '%'
	l.advance() // skip '{'

	for !l.eof() {
		if l.peek() == '%' && l.peekN(2) == "%}" {
			l.advance() // skip '%'
			l.advance() // skip '}'

			return nil
		}

		l.advance()
	}

	return &LexError{Pos: pos, Err: ErrUnterminatedComment}
}

// Helper methods

func (l *Lexer) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(l.input[l.pos:])

	return r
}

func (l *Lexer) peekN(n int) string {
	if l.pos+n > len(l.input) {
		return string(l.input[l.pos:])
	}

	return string(l.input[l.pos : l.pos+n])
}

func (l *Lexer) advance() {
	if l.eof() {
		return
	}

	r, size := utf8.DecodeRune(l.input[l.pos:])

	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) advanceN(n int) {
	for range n {
		l.advance()
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

// isIdent reports whether r may appear in an identifier. Identifiers are
// ASCII letters and underscores only; digits are not permitted.
func isIdent(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
