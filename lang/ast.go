package lang

import (
	"iter"

	"github.com/ardnew/setcomp/log"
)

// AST represents the syntax tree of a parsed manifest document. The tree
// is immutable after parsing; each node is exclusively owned by its
// parent.
type AST struct {
	Constants []*ConstantDecl
	logger    log.Logger
}

// All returns an iterator over the constant declarations in document
// order.
func (ast *AST) All() iter.Seq[*ConstantDecl] {
	return func(yield func(*ConstantDecl) bool) {
		for _, decl := range ast.Constants {
			if !yield(decl) {
				return
			}
		}
	}
}

// ConstantDecl is a single declaration statement: "set" Name "=" Value.
type ConstantDecl struct {
	Name  string
	Value *Node
	Pos   Position
}

// NodeKind discriminates the value node variants of the syntax tree.
type NodeKind int

const (
	// NodeString is a string literal.
	NodeString NodeKind = iota

	// NodeInt is an octal integer literal.
	NodeInt

	// NodeArray is an ordered list of value nodes.
	NodeArray

	// NodeRef is a reference to a previously declared constant.
	NodeRef

	// NodeExpr is a postfix arithmetic expression.
	NodeExpr

	// NodeOp is an operator; it appears only among expression items.
	NodeOp
)

// String returns a string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeString:
		return "String"
	case NodeInt:
		return "Int"
	case NodeArray:
		return "Array"
	case NodeRef:
		return "Ref"
	case NodeExpr:
		return "Expr"
	case NodeOp:
		return "Op"
	default:
		return "Unknown"
	}
}

// Op is a postfix arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

// String returns the operator's source spelling.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "mod"
	default:
		return "?"
	}
}

// Node is one value node in the syntax tree.
type Node struct {
	Kind NodeKind

	// Text holds the literal content for NodeString, the full octal
	// literal for NodeInt, and the referenced name for NodeRef.
	Text string

	// Op is set for NodeOp only.
	Op Op

	// Items holds array elements for NodeArray and expression items
	// (values and operators) for NodeExpr.
	Items []*Node

	Pos Position
}
