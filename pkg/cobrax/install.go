package cobrax

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cmdhelp/pkg/help"
	"github.com/arthur-debert/cmdhelp/pkg/logging"
)

// BuilderFunc returns the builder to render c with.
type BuilderFunc func(c *cobra.Command) (*help.Builder, error)

// Install replaces the help and usage functions of root, and through
// inheritance those of every descendant, with ones rendering through b.
func Install(root *cobra.Command, b *help.Builder) {
	InstallFunc(root, func(*cobra.Command) (*help.Builder, error) { return b, nil })
}

// InstallFunc is Install with the builder resolved when help is shown, for
// builders that depend on parsed flags.
func InstallFunc(root *cobra.Command, builder BuilderFunc) {
	render := func(c *cobra.Command, w io.Writer) error {
		b, err := builder(c)
		if err != nil {
			return err
		}
		return Render(c, b, w)
	}

	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := render(c, c.OutOrStdout()); err != nil {
			logger := logging.GetLogger("cobrax")
			logger.Error().Err(err).Str("command", c.CommandPath()).Msg("Failed to render help")
			c.PrintErrln("Error:", err)
		}
	})
	root.SetUsageFunc(func(c *cobra.Command) error {
		return render(c, c.OutOrStderr())
	})
}

// Render writes the help of c, converting the tree c belongs to.
func Render(c *cobra.Command, b *help.Builder, w io.Writer) error {
	tree := Convert(c.Root())
	if err := tree.Customize(b); err != nil {
		return err
	}

	cmd, err := tree.Lookup(c)
	if err != nil {
		return err
	}
	return b.Write(cmd, w)
}
