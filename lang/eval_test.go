package lang

import (
	"errors"
	"testing"
)

func compile(t *testing.T, input string) *Document {
	t.Helper()

	doc, err := CompileString(t.Context(), input)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	return doc
}

func compileErr(t *testing.T, input string) error {
	t.Helper()

	_, err := CompileString(t.Context(), input)
	if err == nil {
		t.Fatalf("expected compile error for %q", input)
	}

	return err
}

func TestCompile_OctalLiteral(t *testing.T) {
	doc := compile(t, "set A = 0o12")

	v, ok := doc.Get("A")
	if !ok {
		t.Fatal("A not defined")
	}

	if !v.Equal(NewInt(10)) {
		t.Errorf("expected 10, got %v", v)
	}
}

func TestCompile_MixedList(t *testing.T) {
	doc := compile(t, `set A = (list @"x" @"y" 0o5)`)

	v, _ := doc.Get("A")

	want := NewList(NewString("x"), NewString("y"), NewInt(5))
	if !v.Equal(want) {
		t.Errorf("expected %v, got %v", want, v)
	}
}

func TestCompile_ReferenceInExpression(t *testing.T) {
	doc := compile(t, "set A = 0o2 set B = ^{ A A * }")

	v, _ := doc.Get("B")
	if !v.Equal(NewInt(4)) {
		t.Errorf("expected 4, got %v", v)
	}
}

func TestCompile_ReferenceCopiesValue(t *testing.T) {
	// B captures A's value at declaration time.
	doc := compile(t, `set A = 0o1 set B = A set A = 0o2`)

	b, _ := doc.Get("B")
	if !b.Equal(NewInt(1)) {
		t.Errorf("expected B=1, got %v", b)
	}

	a, _ := doc.Get("A")
	if !a.Equal(NewInt(2)) {
		t.Errorf("expected A=2, got %v", a)
	}
}

func TestCompile_FloorDivision(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"set R = ^{ 0o10 0o3 - }", 5},
		{"set R = ^{ 0o10 0o3 mod }", 2},
		{"set R = ^{ 0o7 0o2 / }", 3},
		{"set R = ^{ 0o0 0o3 - 0o2 / }", -2},
		{"set R = ^{ 0o0 0o7 - 0o2 mod }", 1},
		{"set R = ^{ 0o7 0o0 0o2 - mod }", -1},
	}

	for _, c := range cases {
		doc := compile(t, c.input)

		v, _ := doc.Get("R")
		if !v.Equal(NewInt(c.want)) {
			t.Errorf("%s: expected %d, got %v", c.input, c.want, v)
		}
	}
}

func TestCompile_ExpressionNonIntegerResult(t *testing.T) {
	// Without operators, any resolved value may remain on the stack.
	doc := compile(t, `set S = ^{ @"x" }`)

	v, _ := doc.Get("S")
	if !v.Equal(NewString("x")) {
		t.Errorf("expected \"x\", got %v", v)
	}
}

func TestCompile_Shadowing(t *testing.T) {
	doc := compile(t, "set A = 0o1 set B = 0o2 set A = 0o3")

	a, _ := doc.Get("A")
	if !a.Equal(NewInt(3)) {
		t.Errorf("expected A=3, got %v", a)
	}

	// The redeclared name takes the position of its final declaration.
	names := doc.Names()
	if len(names) != 2 || names[0] != "B" || names[1] != "A" {
		t.Errorf("expected order [B A], got %v", names)
	}
}

func TestCompile_UndefinedReference(t *testing.T) {
	err := compileErr(t, "set A = B")

	if !errors.Is(err, ErrUndefinedConstant) {
		t.Fatalf("expected ErrUndefinedConstant, got %v", err)
	}

	ee := &EvalError{}
	if !errors.As(err, &ee) {
		t.Fatalf("expected *EvalError, got %T", err)
	}

	if ee.Constant != "A" {
		t.Errorf("expected failing constant A, got %q", ee.Constant)
	}
}

func TestCompile_SelfReference(t *testing.T) {
	// A name is not bound until its own statement completes.
	err := compileErr(t, "set A = ^{ A 0o1 + }")

	if !errors.Is(err, ErrUndefinedConstant) {
		t.Fatalf("expected ErrUndefinedConstant, got %v", err)
	}
}

func TestCompile_ForwardReference(t *testing.T) {
	err := compileErr(t, "set A = B set B = 0o1")

	if !errors.Is(err, ErrUndefinedConstant) {
		t.Fatalf("expected ErrUndefinedConstant, got %v", err)
	}
}

func TestCompile_NonIntegerOperand(t *testing.T) {
	err := compileErr(t, `set A = ^{ @"x" 0o1 + }`)

	if !errors.Is(err, ErrIntegerOperands) {
		t.Fatalf("expected ErrIntegerOperands, got %v", err)
	}
}

func TestCompile_ListOperand(t *testing.T) {
	err := compileErr(t, `set A = (list 0o1) set B = ^{ A 0o1 + }`)

	if !errors.Is(err, ErrIntegerOperands) {
		t.Fatalf("expected ErrIntegerOperands, got %v", err)
	}
}

func TestCompile_NotEnoughOperands(t *testing.T) {
	err := compileErr(t, "set A = ^{ 0o1 + }")

	if !errors.Is(err, ErrNotEnoughOperands) {
		t.Fatalf("expected ErrNotEnoughOperands, got %v", err)
	}
}

func TestCompile_MalformedStack(t *testing.T) {
	for _, input := range []string{
		"set A = ^{ 0o1 0o2 }",
		"set A = ^{ }",
	} {
		err := compileErr(t, input)

		if !errors.Is(err, ErrMalformedStack) {
			t.Errorf("%q: expected ErrMalformedStack, got %v", input, err)
		}
	}
}

func TestCompile_DivisionByZero(t *testing.T) {
	for _, input := range []string{
		"set A = ^{ 0o1 0o0 / }",
		"set A = ^{ 0o1 0o0 mod }",
	} {
		err := compileErr(t, input)

		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q: expected ErrDivisionByZero, got %v", input, err)
		}
	}
}

func TestCompile_ReferencedListIsValue(t *testing.T) {
	doc := compile(t, `set A = (list 0o1 0o2) set B = (list A A)`)

	b, _ := doc.Get("B")

	inner := NewList(NewInt(1), NewInt(2))
	if !b.Equal(NewList(inner, inner)) {
		t.Errorf("expected nested lists, got %v", b)
	}
}

func TestFloorDivMod(t *testing.T) {
	cases := []struct {
		a, b, q, m int64
	}{
		{7, 2, 3, 1},
		{-3, 2, -2, 1},
		{3, -2, -2, -1},
		{-3, -2, 1, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
	}

	for _, c := range cases {
		if q := floorDiv(c.a, c.b); q != c.q {
			t.Errorf("floorDiv(%d, %d): expected %d, got %d", c.a, c.b, c.q, q)
		}

		if m := floorMod(c.a, c.b); m != c.m {
			t.Errorf("floorMod(%d, %d): expected %d, got %d", c.a, c.b, c.m, m)
		}
	}
}
