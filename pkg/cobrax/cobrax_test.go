package cobrax_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/cobrax"
	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/help"
)

func noop(*cobra.Command, []string) {}

func newTool() *cobra.Command {
	root := &cobra.Command{
		Use:     "tool",
		Short:   "Builds things",
		Long:    "Tool builds and ships things.",
		Version: "1.0.0",
	}
	root.PersistentFlags().CountP("verbose", "v", "Print more")

	build := &cobra.Command{
		Use:     "build <target> [<extra>...]",
		Aliases: []string{"b"},
		Short:   "Build a target",
		Long:    "Build compiles the target.",
		Run:     noop,
	}
	build.Flags().StringP("output", "o", "./dist", "Write results to `dir`")
	build.Flags().String("mode", "", "Build mode")
	_ = build.MarkFlagRequired("mode")
	build.Flags().Bool("force", false, "Overwrite")
	build.Flags().StringSlice("tags", []string{"a", "b"}, "Tags")
	build.Flags().String("old", "", "Old switch")
	_ = build.Flags().MarkDeprecated("old", "use --mode")

	exec := &cobra.Command{
		Use:                "exec [args]",
		Short:              "Run a tool",
		DisableFlagParsing: true,
		Run:                noop,
	}
	secret := &cobra.Command{Use: "secret", Hidden: true, Run: noop}

	root.AddCommand(build, exec, secret)
	return root
}

func find(t *testing.T, root *cobra.Command, path ...string) *cobra.Command {
	t.Helper()

	c, _, err := root.Find(path)
	require.NoError(t, err)
	return c
}

func TestConvert(t *testing.T) {
	root := newTool()
	tree := cobrax.Convert(root)

	assert.Equal(t, "tool", tree.Root.Name())
	assert.Equal(t, "Tool builds and ships things.", tree.Root.Description)

	opts := tree.Root.Options()
	require.Len(t, opts, 3)
	assert.True(t, opts[0].IsHelp())
	assert.True(t, opts[1].IsVersion())
	assert.Equal(t, "--verbose", opts[2].Name())
	assert.Equal(t, []string{"-v"}, opts[2].Aliases())
	assert.True(t, opts[2].Recursive)
	assert.Equal(t, cli.ArityZero, opts[2].Value.Arity)

	build, err := tree.Lookup(find(t, root, "build"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, build.Aliases())

	args := build.Arguments()
	require.Len(t, args, 2)
	assert.Equal(t, "target", args[0].Name())
	assert.Equal(t, cli.ArityExactlyOne, args[0].Arity)
	assert.Equal(t, "extra", args[1].Name())
	assert.Equal(t, cli.ArityZeroOrMore, args[1].Arity)

	byName := make(map[string]*cli.Option)
	for _, o := range build.Options() {
		byName[o.Name()] = o
		assert.False(t, o.Recursive, o.Name())
	}
	require.Len(t, byName, 5)

	output := byName["--output"]
	assert.Equal(t, []string{"-o"}, output.Aliases())
	assert.Equal(t, "dir", output.Value.HelpName)
	assert.Equal(t, "Write results to dir", output.Description)
	assert.Equal(t, "./dist", output.Value.DefaultValue())

	assert.True(t, byName["--mode"].Required)
	assert.Empty(t, byName["--mode"].Value.HelpName)
	assert.False(t, byName["--mode"].Value.HasDefaultValue())

	assert.Equal(t, cli.ArityZero, byName["--force"].Value.Arity)
	assert.False(t, byName["--force"].Value.HasDefaultValue())

	assert.Equal(t, []string{"a", "b"}, byName["--tags"].Value.DefaultValue())
	assert.True(t, byName["--old"].Hidden)

	exec, err := tree.Lookup(find(t, root, "exec"))
	require.NoError(t, err)
	assert.False(t, exec.TreatUnmatchedTokensAsErrors)
	require.Len(t, exec.Arguments(), 1)
	assert.Equal(t, cli.ArityZeroOrOne, exec.Arguments()[0].Arity)

	secret, err := tree.Lookup(find(t, root, "secret"))
	require.NoError(t, err)
	assert.True(t, secret.Hidden)
}

func TestConvert_LookupForeignCommand(t *testing.T) {
	tree := cobrax.Convert(newTool())

	_, err := tree.Lookup(&cobra.Command{Use: "other"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandNotFound))
}

func TestInstall_HelpFlag(t *testing.T) {
	root := newTool()
	cobrax.Install(root, help.New(80))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"build", "--help"})
	require.NoError(t, root.Execute())

	got := out.String()
	assert.Contains(t, got, "Description:\n  Build compiles the target.\n")
	assert.Contains(t, got, "Usage:\n  tool build <target> [<extra>...] [options]\n")
	assert.Contains(t, got, "  -o, --output <dir>  Write results to dir [default: ./dist]\n")
	assert.Contains(t, got, "--mode (REQUIRED)")
	assert.Contains(t, got, "Tags [default: a|b]")
	assert.Contains(t, got, "-v, --verbose")
	assert.Contains(t, got, "-?, -h, --help")
	assert.NotContains(t, got, "--old")
}

func TestInstall_RootHelpUsesShortDescriptions(t *testing.T) {
	root := newTool()
	cobrax.Install(root, help.New(80))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	got := out.String()
	assert.Contains(t, got, "Tool builds and ships things.")
	assert.Contains(t, got, "build, b <target> <extra>")
	assert.Contains(t, got, "Build a target")
	assert.NotContains(t, got, "Build compiles the target.")
	assert.NotContains(t, got, "secret")
	assert.Contains(t, got, "tool [command] [options]")
}

func TestInstall_UsageFunc(t *testing.T) {
	root := newTool()
	cobrax.Install(root, help.New(80))

	build := find(t, root, "build")
	var out bytes.Buffer
	build.SetOut(&out)
	require.NoError(t, build.Usage())

	assert.Contains(t, out.String(), "tool build <target> [<extra>...] [options]")
}

func TestRender_HiddenCommandWritesNothing(t *testing.T) {
	root := newTool()

	var out bytes.Buffer
	require.NoError(t, cobrax.Render(find(t, root, "secret"), help.New(80), &out))
	assert.Empty(t, out.String())
}

func TestInstallFunc_BuilderError(t *testing.T) {
	root := newTool()
	cobrax.InstallFunc(root, func(*cobra.Command) (*help.Builder, error) {
		return nil, errors.New(errors.ErrConfigParse, "bad config")
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "bad config")
	assert.NotContains(t, out.String(), "Usage:")
}
