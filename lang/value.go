package lang

import (
	"strconv"
	"strings"
)

// Kind discriminates the resolved value variants.
type Kind int

const (
	// KindString is a literal string value.
	KindString Kind = iota

	// KindInt is a 64-bit signed integer value.
	KindInt

	// KindList is an ordered sequence of resolved values.
	KindList
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a fully resolved constant value: a string, an integer, or a
// list of resolved values. The zero value is the empty string.
type Value struct {
	Kind Kind
	Str  string
	Int  int64
	List []Value
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NewInt returns an integer value.
func NewInt(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// NewList returns a list value holding the given elements.
func NewList(elems ...Value) Value {
	return Value{Kind: KindList, List: elems}
}

// Native converts the value to its natural Go representation: string,
// int64, or []any. Lists convert recursively.
func (v Value) Native() any {
	switch v.Kind {
	case KindString:
		return v.Str

	case KindInt:
		return v.Int

	case KindList:
		elems := make([]any, len(v.List))
		for i, e := range v.List {
			elems[i] = e.Native()
		}

		return elems

	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and content.
// Lists compare element-wise.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindString:
		return v.Str == o.Str

	case KindInt:
		return v.Int == o.Int

	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}

		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}

		return true

	default:
		return false
	}
}

// String renders the value for diagnostics and interactive display.
// Strings are quoted, integers are decimal, and lists are bracketed.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return strconv.Quote(v.Str)

	case KindInt:
		return strconv.FormatInt(v.Int, 10)

	case KindList:
		elems := make([]string, len(v.List))
		for i, e := range v.List {
			elems[i] = e.String()
		}

		return "[" + strings.Join(elems, ", ") + "]"

	default:
		return ""
	}
}
