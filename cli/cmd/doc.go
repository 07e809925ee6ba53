// Package cmd implements the setcomp subcommands: compile, query, and
// repl.
package cmd
