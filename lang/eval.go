package lang

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// Compile resolves every constant declaration in document order and
// returns the resulting document. References resolve against constants
// declared earlier; a name declared more than once is overwritten, with
// later references seeing the newest value. The first semantic failure
// aborts compilation with an *EvalError naming the constant.
func (ast *AST) Compile(ctx context.Context) (*Document, error) {
	doc := NewDocument()

	for decl := range ast.All() {
		value, err := resolveNode(doc, decl.Value)
		if err != nil {
			ast.logger.ErrorContext(ctx, "constant resolution failed",
				slog.String("name", decl.Name),
				slog.Any("error", err))

			return nil, &EvalError{Constant: decl.Name, Err: err}
		}

		doc.bind(decl.Name, value)

		ast.logger.TraceContext(ctx, "constant resolved",
			slog.String("name", decl.Name),
			slog.String("value", value.String()))
	}

	return doc, nil
}

// resolveNode resolves one value node against the constants bound so
// far.
func resolveNode(doc *Document, node *Node) (Value, error) {
	switch node.Kind {
	case NodeString:
		return NewString(node.Text), nil

	case NodeInt:
		i, err := parseOctal(node.Text)
		if err != nil {
			return Value{}, err
		}

		return NewInt(i), nil

	case NodeArray:
		elems := make([]Value, 0, len(node.Items))

		for _, item := range node.Items {
			elem, err := resolveNode(doc, item)
			if err != nil {
				return Value{}, err
			}

			elems = append(elems, elem)
		}

		return NewList(elems...), nil

	case NodeRef:
		value, ok := doc.Get(node.Text)
		if !ok {
			return Value{}, ErrUndefinedConstant.
				Wrap(fmt.Errorf("%q", node.Text)).
				With(slog.String("name", node.Text))
		}

		return value, nil

	case NodeExpr:
		return evalExpr(doc, node)

	default:
		return Value{}, ErrInvalidNode.
			With(slog.String("kind", node.Kind.String()))
	}
}

// parseOctal converts an octal literal, including its 0o or 0O prefix,
// to an integer.
func parseOctal(text string) (int64, error) {
	if len(text) < 3 ||
		text[0] != '0' ||
		(text[1] != 'o' && text[1] != 'O') {
		return 0, ErrInvalidOctal.Wrap(fmt.Errorf("%q", text))
	}

	i, err := strconv.ParseInt(text[2:], 8, 64)
	if err != nil {
		return 0, ErrInvalidOctal.Wrap(fmt.Errorf("%q", text))
	}

	return i, nil
}

// evalExpr evaluates a postfix expression with a value stack. A value
// item pushes its resolved value; an operator pops two integers and
// pushes the result. Exactly one value must remain when the items are
// exhausted; that value is the result, whatever its kind.
func evalExpr(doc *Document, node *Node) (Value, error) {
	stack := make([]Value, 0, len(node.Items))

	for _, item := range node.Items {
		if item.Kind != NodeOp {
			value, err := resolveNode(doc, item)
			if err != nil {
				return Value{}, err
			}

			stack = append(stack, value)

			continue
		}

		if len(stack) < 2 {
			return Value{}, ErrNotEnoughOperands.
				Wrap(fmt.Errorf("operator %q", item.Op)).
				With(slog.String("operator", item.Op.String()))
		}

		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		if a.Kind != KindInt || b.Kind != KindInt {
			return Value{}, ErrIntegerOperands.
				With(slog.String("operator", item.Op.String()))
		}

		result, err := applyOp(item.Op, a.Int, b.Int)
		if err != nil {
			return Value{}, err
		}

		stack = append(stack, NewInt(result))
	}

	if len(stack) != 1 {
		return Value{}, ErrMalformedStack.
			Wrap(fmt.Errorf("%d values remain", len(stack))).
			With(slog.Int("depth", len(stack)))
	}

	return stack[0], nil
}

// applyOp applies an arithmetic operator to two integers. Division and
// modulo round toward negative infinity, and the sign of a modulo
// result follows the divisor.
func applyOp(op Op, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		return a + b, nil

	case OpSub:
		return a - b, nil

	case OpMul:
		return a * b, nil

	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}

		return floorDiv(a, b), nil

	case OpMod:
		if b == 0 {
			return 0, ErrDivisionByZero
		}

		return floorMod(a, b), nil

	default:
		return 0, ErrInvalidNode.With(slog.String("operator", op.String()))
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return m
}
