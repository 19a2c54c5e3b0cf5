package treefile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/help"
	"github.com/arthur-debert/cmdhelp/pkg/treefile"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFormatsBuildTheSameTree(t *testing.T) {
	for _, file := range []string{"tool.yaml", "tool.toml", "tool.xml"} {
		t.Run(file, func(t *testing.T) {
			root, err := treefile.Load(filepath.Join("testdata", file))
			require.NoError(t, err)

			assert.Equal(t, "tool", root.Name())
			assert.Equal(t, "Builds and ships things", root.Description)

			// help and version come first, then declared options
			opts := root.Options()
			require.Len(t, opts, 3)
			assert.True(t, opts[0].IsHelp())
			assert.True(t, opts[1].IsVersion())
			assert.Equal(t, "--verbose", opts[2].Name())
			assert.Equal(t, []string{"-v"}, opts[2].Aliases())
			assert.True(t, opts[2].Recursive)
			assert.Equal(t, cli.ArityZero, opts[2].Value.Arity)

			require.Len(t, root.Arguments(), 1)
			workspace := root.Arguments()[0]
			assert.Equal(t, "workspace", workspace.Name())
			assert.Equal(t, "Workspace directory", workspace.Description)
			assert.Equal(t, cli.ArityZeroOrOne, workspace.Arity)
			assert.Equal(t, ".", workspace.DefaultValue())

			build, err := root.Find("build")
			require.NoError(t, err)
			assert.Equal(t, []string{"b"}, build.Aliases())
			require.Len(t, build.Arguments(), 2)
			assert.Same(t, workspace, build.Arguments()[0])
			assert.Equal(t, cli.ArityZeroOrMore, build.Arguments()[1].Arity)

			output := build.Options()[0]
			assert.Equal(t, "dir", output.Value.HelpName)
			assert.Equal(t, "./dist", output.Value.DefaultValue())

			mode := build.Options()[1]
			assert.True(t, mode.Required)
			assert.Equal(t, []string{"debug", "release"}, mode.Value.Choices)

			exec, err := root.Find("exec")
			require.NoError(t, err)
			assert.False(t, exec.TreatUnmatchedTokensAsErrors)
			assert.True(t, build.TreatUnmatchedTokensAsErrors)

			internal, err := root.Find("internal")
			require.NoError(t, err)
			assert.True(t, internal.Hidden)
		})
	}
}

func TestLoad_RendersThroughBuilder(t *testing.T) {
	root, err := treefile.Load(filepath.Join("testdata", "tool.yaml"))
	require.NoError(t, err)
	build, err := root.Find("build")
	require.NoError(t, err)

	out, err := help.New(200).Render(build)
	require.NoError(t, err)

	assert.Contains(t, out, "tool [<workspace>] build [<workspace> [<targets>...]] [options]")
	assert.Contains(t, out, "Workspace directory [default: .]")
	assert.Contains(t, out, "What to build [default: app|lib]")
	assert.Contains(t, out, "-o, --output <dir>")
	assert.Contains(t, out, "Output directory [default: ./dist]")
	assert.Contains(t, out, "--mode <debug|release> (REQUIRED)")
	// recursive options of the root are listed for the subcommand
	assert.Contains(t, out, "-v, --verbose")
	assert.Equal(t, 1, strings.Count(out, "<workspace>  "))
}

func TestParse_NamelessRootUsesExecutableName(t *testing.T) {
	root, err := treefile.Parse([]byte("root: true\ndescription: d\n"), treefile.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, cli.ExecutableName(), root.Name())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format treefile.Format
		code   errors.ErrorCode
	}{
		{
			name:   "unknown YAML field",
			data:   "name: tool\ncolour: red\n",
			format: treefile.FormatYAML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "unknown TOML field",
			data:   "name = \"tool\"\ncolour = \"red\"\n",
			format: treefile.FormatTOML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "bad arity",
			data:   "name: tool\narguments:\n  - name: x\n    arity: lots\n",
			format: treefile.FormatYAML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "nameless subcommand",
			data:   "name: tool\ncommands:\n  - description: nothing\n",
			format: treefile.FormatYAML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "nameless option",
			data:   "name: tool\noptions:\n  - description: nothing\n",
			format: treefile.FormatYAML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "ref to a sibling argument",
			data:   "name: tool\ncommands:\n  - name: a\n    arguments: [{name: x}]\n  - name: b\n    arguments: [{ref: x}]\n",
			format: treefile.FormatYAML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "XML root element",
			data:   `<tool name="tool"/>`,
			format: treefile.FormatXML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "XML boolean",
			data:   `<command name="tool" hidden="sometimes"/>`,
			format: treefile.FormatXML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "XML unexpected element",
			data:   `<command name="tool"><flag name="x"/></command>`,
			format: treefile.FormatXML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "malformed XML",
			data:   `<command name="tool">`,
			format: treefile.FormatXML,
			code:   errors.ErrTreeParse,
		},
		{
			name:   "unknown format",
			data:   "{}",
			format: treefile.Format("json"),
			code:   errors.ErrTreeLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := treefile.Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParse_ErrorNamesTheCommand(t *testing.T) {
	data := "name: tool\ncommands:\n  - name: build\n    arguments:\n      - ref: missing\n"

	_, err := treefile.Parse([]byte(data), treefile.FormatYAML)
	require.Error(t, err)
	assert.Equal(t, "tool build", errors.GetErrorDetails(err)["command"])
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := treefile.Load(writeFile(t, "tool.json", "{}"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrTreeLoad))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := treefile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrTreeLoad))
	})

	t.Run("parse error carries the path", func(t *testing.T) {
		path := writeFile(t, "tool.yml", "name: [unclosed\n")
		_, err := treefile.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTreeParse))
		assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	})
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]treefile.Format{
		"a.yaml": treefile.FormatYAML,
		"a.YML":  treefile.FormatYAML,
		"a.toml": treefile.FormatTOML,
		"a.xml":  treefile.FormatXML,
	} {
		got, err := treefile.FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}
