package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ardnew/setcomp/log"
)

// ParseReader parses a manifest document from an io.Reader. The source
// is consumed wholly before parsing begins.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*AST, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a manifest document from a string and returns the
// syntax tree. Options can be provided to customize behavior.
func ParseString(
	ctx context.Context,
	input string,
	opts ...Option,
) (*AST, error) {
	ast := &AST{}
	applyOptions(ast, opts...)

	p := &parser{
		lex:    NewLexer(input),
		ast:    ast,
		logger: ast.logger,
	}

	ast.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(input)))

	err := p.parseDocument(ctx)
	if err != nil {
		// Attach the source input for better error messages.
		attachSource(err, input)

		return nil, err
	}

	ast.logger.TraceContext(ctx, "parse complete",
		slog.Int("constant_count", len(ast.Constants)))

	return ast, nil
}

// attachSource threads the original input into lex and parse errors so
// their messages can render a source snippet.
func attachSource(err error, input string) {
	le := &LexError{}
	if errors.As(err, &le) {
		le.Source = input
	}

	pe := &ParseError{}
	if errors.As(err, &pe) {
		pe.Source = input
	}
}

// parser holds the parser state: the lexer and a single token of
// lookahead. The grammar is resolvable by inspecting at most one token
// ahead at each decision point, so no backtracking occurs.
type parser struct {
	lex    *Lexer
	ast    *AST
	tok    Token
	logger log.Logger
}

// next advances the lookahead token.
func (p *parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

// parseDocument parses: Statement* EOF.
func (p *parser) parseDocument(ctx context.Context) error {
	err := p.next()
	if err != nil {
		return err
	}

	for p.tok.Kind != TokenEOF {
		decl, err := p.parseStatement(ctx)
		if err != nil {
			return err
		}

		p.ast.Constants = append(p.ast.Constants, decl)
	}

	return nil
}

// parseStatement parses: "set" Identifier "=" Value.
func (p *parser) parseStatement(ctx context.Context) (*ConstantDecl, error) {
	pos := p.tok.Pos

	if p.tok.Kind != TokenIdent || p.tok.Text != "set" {
		return nil, &ParseError{Token: p.tok, Expected: []string{`"set"`}}
	}

	err := p.next()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != TokenIdent {
		return nil, &ParseError{Token: p.tok, Expected: []string{"identifier"}}
	}

	name := p.tok.Text

	err = p.next()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != TokenPunct || p.tok.Text != "=" {
		return nil, &ParseError{Token: p.tok, Expected: []string{`"="`}}
	}

	err = p.next()
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "statement parsed",
		slog.String("name", name),
		slog.String("kind", value.Kind.String()))

	return &ConstantDecl{Name: name, Value: value, Pos: pos}, nil
}

// valueExpected lists the alternatives reported when no value production
// matches the lookahead token.
var valueExpected = []string{
	`"(list"`, "string", "octal number", `"^"`, "identifier",
}

// parseValue parses one of: Array | String | Octal | Expression |
// NameRef. The lookahead token alone selects the production; a name
// reference is reached only when no other production matches.
func (p *parser) parseValue() (*Node, error) {
	pos := p.tok.Pos

	switch {
	case p.tok.Kind == TokenString:
		node := &Node{Kind: NodeString, Text: p.tok.Text, Pos: pos}

		return node, p.next()

	case p.tok.Kind == TokenNumber:
		node := &Node{Kind: NodeInt, Text: p.tok.Text, Pos: pos}

		return node, p.next()

	case p.tok.Kind == TokenPunct && p.tok.Text == "(list":
		return p.parseArray()

	case p.tok.Kind == TokenPunct && p.tok.Text == "^":
		return p.parseExpression()

	case p.tok.Kind == TokenIdent:
		node := &Node{Kind: NodeRef, Text: p.tok.Text, Pos: pos}

		return node, p.next()

	default:
		return nil, &ParseError{Token: p.tok, Expected: valueExpected}
	}
}

// parseArray parses: "(list" Value* ")".
func (p *parser) parseArray() (*Node, error) {
	pos := p.tok.Pos

	err := p.next() // consume "(list"
	if err != nil {
		return nil, err
	}

	node := &Node{Kind: NodeArray, Pos: pos}

	for {
		if p.tok.Kind == TokenPunct && p.tok.Text == ")" {
			return node, p.next()
		}

		if p.tok.Kind == TokenEOF {
			return nil, &ParseError{
				Token:    p.tok,
				Expected: append([]string{`")"`}, valueExpected...),
			}
		}

		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		node.Items = append(node.Items, elem)
	}
}

// parseExpression parses: "^" "{" (Value | Operator)* "}". Inside the
// braces the identifier "mod" is always an operator, never a name
// reference.
func (p *parser) parseExpression() (*Node, error) {
	pos := p.tok.Pos

	err := p.next() // consume "^"
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != TokenPunct || p.tok.Text != "{" {
		return nil, &ParseError{Token: p.tok, Expected: []string{`"{"`}}
	}

	err = p.next()
	if err != nil {
		return nil, err
	}

	node := &Node{Kind: NodeExpr, Pos: pos}

	for {
		switch {
		case p.tok.Kind == TokenPunct && p.tok.Text == "}":
			return node, p.next()

		case p.tok.Kind == TokenEOF:
			return nil, &ParseError{
				Token:    p.tok,
				Expected: append([]string{`"}"`, "operator"}, valueExpected...),
			}

		case p.tok.Kind == TokenOperator:
			op, err := operatorOf(p.tok.Text)
			if err != nil {
				return nil, err
			}

			node.Items = append(node.Items,
				&Node{Kind: NodeOp, Op: op, Pos: p.tok.Pos})

			err = p.next()
			if err != nil {
				return nil, err
			}

		case p.tok.Kind == TokenIdent && p.tok.Text == "mod":
			node.Items = append(node.Items,
				&Node{Kind: NodeOp, Op: OpMod, Pos: p.tok.Pos})

			err := p.next()
			if err != nil {
				return nil, err
			}

		default:
			item, err := p.parseValue()
			if err != nil {
				return nil, err
			}

			node.Items = append(node.Items, item)
		}
	}
}

// operatorOf maps an operator token's spelling to its Op value.
func operatorOf(text string) (Op, error) {
	switch text {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	case "mod":
		return OpMod, nil
	default:
		return 0, ErrInvalidNode.With(slog.String("operator", text))
	}
}
