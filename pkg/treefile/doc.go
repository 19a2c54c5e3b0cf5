// Package treefile reads command tree definitions from YAML, TOML or XML
// files and builds the equivalent pkg/cli tree.
//
// A YAML definition looks like:
//
//	name: tool
//	root: true
//	description: Builds things
//	options:
//	  - name: --output
//	    aliases: [-o]
//	    help_name: dir
//	    default: ./dist
//	commands:
//	  - name: build
//	    arguments:
//	      - name: targets
//	        arity: zero_or_more
//
// An argument entry with "ref" reuses the argument of the same name declared
// on an ancestor command instead of creating a new one.
package treefile
