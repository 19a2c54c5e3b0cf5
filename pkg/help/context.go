package help

import (
	"io"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
)

// Context carries the state of a single Write call. Sections receive it and
// write to Output.
type Context struct {
	Builder *Builder
	Command *cli.Command
	Output  io.Writer
}
