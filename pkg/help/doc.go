// Package help renders help text for a pkg/cli command tree.
//
// A Builder walks the target command and its ancestors and writes a fixed
// sequence of sections (description, usage, arguments, options, commands,
// additional arguments). Each section is made of a heading and a two-column
// table whose rows are produced by GetRow and laid out by WriteColumns:
//
//	Usage:
//	  tool build <target> [options]
//
//	Options:
//	  -o, --output <dir>  Where to write artifacts [default: ./dist]
//
// Both primitives are exported so custom sections registered through
// CustomizeLayout can reuse them. Per-symbol overrides are registered with
// CustomizeSymbol. Rendering never mutates the tree.
package help
