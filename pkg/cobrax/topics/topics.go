// Package topics adds file-based help topics to a cobra application rendered
// through the help engine. Topics are listed in a section of the root
// command's help and read with "help <topic>".
package topics

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/help"
	"github.com/arthur-debert/cmdhelp/pkg/locale"
	"github.com/arthur-debert/cmdhelp/pkg/logging"
)

// SectionName is the name of the section listing topics.
const SectionName = "topics"

// Files named option-<flag> are also found by the flag name.
const optionPrefix = "option-"

// Manager holds the topics found in a directory.
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is one help file.
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Format is the file extension, used to pick a rendering.
func (t *Topic) Format() string {
	return filepath.Ext(t.FilePath)
}

// Summary is the first non-blank line of the content, without markdown
// heading marks.
func (t *Topic) Summary() string {
	for _, line := range strings.Split(t.Content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		if line != "" {
			return line
		}
	}
	return ""
}

// Options configures a Manager.
type Options struct {
	// Extensions considered topics. Defaults to .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to an unwrapped PlainRenderer.
	Renderer Renderer
}

// New creates a Manager with no topics. Call Scan to load them.
func New(opts Options) *Manager {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}
	return m
}

// Scan replaces the topics with every topic file below dir. An empty or
// missing dir yields no topics.
func (m *Manager) Scan(dir string) error {
	logger := logging.GetLogger("topics")

	m.topics = make(map[string]*Topic)
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Debug().Str("dir", dir).Msg("Topics directory does not exist")
		return nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if !slices.Contains(m.extensions, ext) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{Name: name, FilePath: path, Content: string(content)}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrTopicLoad, "failed to scan topics in %s", dir).
			WithDetail("dir", dir)
	}

	logger.Debug().Str("dir", dir).Int("count", len(m.topics)).Msg("Scanned help topics")
	return nil
}

// Get finds a topic by name. Flag spellings ("--dry-run") also match a file
// named option-dry-run.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics[optionPrefix+name]
	return topic, ok
}

// Names returns the topic names in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render returns the topic content formatted by the renderer.
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Format())
}

// Section lists the topics in the root command's help. Option topics are
// shown under their flag spelling.
func (m *Manager) Section() help.Section {
	return help.Section{
		Name:    SectionName,
		Summary: "Help topics, listed for the root command",
		Write:   m.writeSection,
	}
}

func (m *Manager) writeSection(ctx *help.Context) (bool, error) {
	if ctx.Command.Parent() != nil || len(m.topics) == 0 {
		return false, nil
	}

	names := m.Names()
	rows := make([]help.Row, 0, len(names))
	for _, name := range names {
		label := name
		if flag, ok := strings.CutPrefix(name, optionPrefix); ok {
			label = "--" + flag
		}
		rows = append(rows, help.NewRow(label, m.topics[name].Summary()))
	}

	b := ctx.Builder
	if err := b.WriteHeading(ctx, b.Catalog().Text(locale.TopicsTitle), ""); err != nil {
		return false, err
	}
	if err := b.WriteColumns(rows, ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Install makes "help [command|topic]" the help command of root. Commands are
// shown through their help function, so install the engine's first.
func (m *Manager) Install(root *cobra.Command) {
	helpCmd := &cobra.Command{
		Use:   "help [command|topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + root.Name() + ` help [path to command or topic] for full details.`,
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var completions []string
			for _, sub := range root.Commands() {
				if sub.IsAvailableCommand() {
					completions = append(completions, sub.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 1 {
				if topic, ok := m.Get(args[0]); ok {
					_, err := fmt.Fprint(c.OutOrStdout(), m.Render(topic))
					return err
				}
			}

			target, _, err := root.Find(args)
			if err != nil || target == nil || (len(args) > 0 && target == root) {
				return errors.Newf(errors.ErrCommandNotFound, "unknown help topic %q", strings.Join(args, " ")).
					WithDetail("path", strings.Join(args, " "))
			}
			target.InitDefaultHelpFlag()
			target.InitDefaultVersionFlag()
			return target.Help()
		},
	}
	root.SetHelpCommand(helpCmd)
}

// AddTo appends the topics section to the layout of b.
func (m *Manager) AddTo(b *help.Builder, sections []help.Section) error {
	return b.CustomizeLayout(help.Layout(append(slices.Clone(sections), m.Section())))
}
