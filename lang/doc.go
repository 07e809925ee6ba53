// Package lang implements the compiler front-end for the setcomp constant
// manifest language. A manifest declares named constants whose values are
// strings, octal integers, ordered lists, references to previously declared
// constants, or postfix arithmetic expressions over integers.
//
// # Grammar
//
// Informal EBNF:
//
//	Document   → Statement* EOF
//	Statement  → "set" Identifier "=" Value
//	Value      → Array | String | Octal | Expression | NameRef
//	Array      → "(list" Value* ")"
//	Expression → "^" "{" (Value | Operator)* "}"
//	Operator   → "+" | "-" | "*" | "/" | "mod"
//	NameRef    → Identifier
//
// Lexical rules: whitespace is skipped; block comments are delimited by
// "%{" and "%}" and may span lines; string literals are written @"..."
// with no escape processing; integer literals are octal only, written
// 0o777 or 0O777; identifiers are one or more ASCII letters or
// underscores. The words "set" and "mod" are ordinary identifiers that
// the parser recognizes by grammar position.
//
// The grammar is resolvable with a single token of lookahead, so parsing
// is hand-written recursive descent with no backtracking.
//
// # Semantics
//
// Constants resolve in declaration order against a running table. A name
// reference is valid only if the name was declared by an earlier
// statement; forward references and self-references fail with an
// undefined-constant error. Redeclaring a name overwrites the previous
// binding and moves the name to the end of the document ordering.
//
// Expressions are postfix (Polish) form evaluated on a stack machine
// with integer-only arithmetic. Division and modulo use floor semantics:
// quotients round toward negative infinity and the sign of a remainder
// follows the divisor.
//
// # Example
//
//	%{ network settings %}
//	set retries = 0o3
//	set backoff = ^{ retries 0o2 * }
//	set hosts   = (list @"alpha" @"beta")
//	set all     = (list hosts retries)
//
// Compiling yields an ordered document mapping each constant name to its
// resolved value, ready for serialization:
//
//	doc, err := lang.CompileString(ctx, source)
package lang
