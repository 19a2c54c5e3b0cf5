package cli

import (
	"testing"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAncestors(t *testing.T) {
	root := NewCommand("root", "")
	outer := NewCommand("outer", "")
	inner := NewCommand("inner", "")
	root.AddCommand(outer)
	outer.AddCommand(inner)

	chain := inner.Ancestors()
	require.Len(t, chain, 3)
	assert.Same(t, root, chain[0])
	assert.Same(t, outer, chain[1])
	assert.Same(t, inner, chain[2])

	assert.Same(t, root, inner.Root())
	assert.Same(t, outer, inner.Parent())
	assert.Nil(t, root.Parent())
	assert.Equal(t, []*Command{root}, root.Ancestors())
}

func TestAddCommandMovesChild(t *testing.T) {
	a := NewCommand("a", "")
	b := NewCommand("b", "")
	child := NewCommand("child", "")

	a.AddCommand(child)
	b.AddCommand(child)

	assert.Empty(t, a.Subcommands())
	assert.Equal(t, []*Command{child}, b.Subcommands())
	assert.Same(t, b, child.Parent())
}

func TestAddCommandIgnoresAncestors(t *testing.T) {
	root := NewCommand("root", "")
	child := NewCommand("child", "")
	grandchild := NewCommand("grandchild", "")
	root.AddCommand(child)
	child.AddCommand(grandchild)

	grandchild.AddCommand(root, child, grandchild)
	child.AddCommand(child)

	assert.Empty(t, grandchild.Subcommands())
	assert.Equal(t, []*Command{grandchild}, child.Subcommands())
	assert.Nil(t, root.Parent())
	assert.Equal(t, []*Command{root, child, grandchild}, grandchild.Ancestors())
	assert.Same(t, root, grandchild.Root())
}

func TestSharedArgument(t *testing.T) {
	shared := NewArgument("shared")
	outer := NewCommand("outer", "").AddArgument(shared)
	inner := NewCommand("inner", "").AddArgument(shared)
	outer.AddCommand(inner)

	assert.Same(t, outer.Arguments()[0], inner.Arguments()[0])
}

func TestFind(t *testing.T) {
	root := NewCommand("tool", "")
	remote := NewCommand("remote", "").AddAlias("r")
	add := NewCommand("add", "")
	root.AddCommand(remote)
	remote.AddCommand(add)

	t.Run("by_name", func(t *testing.T) {
		got, err := root.Find("remote", "add")
		require.NoError(t, err)
		assert.Same(t, add, got)
	})

	t.Run("by_alias", func(t *testing.T) {
		got, err := root.Find("r", "add")
		require.NoError(t, err)
		assert.Same(t, add, got)
	})

	t.Run("empty_path_is_self", func(t *testing.T) {
		got, err := root.Find()
		require.NoError(t, err)
		assert.Same(t, root, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := root.Find("remote", "rm")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandNotFound))
	})
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand("does things")

	assert.Equal(t, ExecutableName(), root.Name())
	assert.True(t, root.TreatUnmatchedTokensAsErrors)
	require.Len(t, root.Options(), 2)
	assert.True(t, root.Options()[0].IsHelp())
	assert.True(t, root.Options()[0].Recursive)
	assert.True(t, root.Options()[1].IsVersion())
}

func TestOptionValue(t *testing.T) {
	opt := NewOption("--verbosity", "-v")
	assert.Equal(t, ArityExactlyOne, opt.Value.Arity)
	assert.True(t, opt.Value.IsOptionValue())
	assert.Equal(t, "--verbosity", opt.Value.Name())
	assert.Equal(t, []string{"--verbosity", "-v"}, opt.Names())

	flag := NewFlag("--all")
	assert.Equal(t, ArityZero, flag.Value.Arity)

	arg := NewArgument("src")
	assert.False(t, arg.IsOptionValue())
	assert.False(t, arg.HasDefaultValue())
	arg.SetDefault("x")
	require.True(t, arg.HasDefaultValue())
	assert.Equal(t, "x", arg.DefaultValue())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "command", NewCommand("c", "").Kind().String())
	assert.Equal(t, "option", NewOption("-o").Kind().String())
	assert.Equal(t, "argument", NewArgument("a").Kind().String())
	assert.Equal(t, "unknown", Kind(42).String())
}
