// Package cli models the command tree that help output is rendered from.
//
// A tree is made of three kinds of symbols:
//   - Command: a named node owning ordered arguments, options and subcommands
//   - Option: a named switch with aliases and a value argument
//   - Argument: a positional value with an arity and an optional default
//
// Commands keep a back-reference to the command they were added to, so any
// node can walk to its root. Arguments carry no back-reference and may be
// shared by several commands.
//
// The package does not parse command lines. It only describes them.
package cli
