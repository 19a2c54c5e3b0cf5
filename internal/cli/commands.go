package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cmdhelp/internal/version"
	"github.com/arthur-debert/cmdhelp/pkg/cobrax"
	"github.com/arthur-debert/cmdhelp/pkg/cobrax/topics"
	"github.com/arthur-debert/cmdhelp/pkg/config"
	"github.com/arthur-debert/cmdhelp/pkg/help"
	"github.com/arthur-debert/cmdhelp/pkg/logging"
	"github.com/arthur-debert/cmdhelp/pkg/treefile"
)

// app is the state shared by the commands of one invocation.
type app struct {
	verbosity  int
	configPath string

	cfg      *config.Config
	builder  *help.Builder
	topics   *topics.Manager
	renderer *topics.GlamourRenderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{renderer: topics.NewGlamourRenderer(0)}
	a.topics = topics.New(topics.Options{Renderer: a.renderer})

	rootCmd := &cobra.Command{
		Use:   "cmdhelp",
		Short: "Render command line help from command tree definitions",
		Long: `cmdhelp renders the help text of command line programs. Command trees are
read from YAML, TOML or XML definition files and rendered with the same
layout engine that produces this help.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.prepare(); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Read settings from `file` instead of the default config search")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(a.newRenderCmd())
	rootCmd.AddCommand(a.newSectionsCmd())

	// Our own help goes through the engine. The builder depends on --config,
	// so it is resolved when help is shown.
	cobrax.InstallFunc(rootCmd, func(*cobra.Command) (*help.Builder, error) {
		if err := a.prepare(); err != nil {
			return nil, err
		}
		return a.builder, nil
	})
	a.topics.Install(rootCmd)

	// Registered up front so "--help" is known as a boolean while the
	// command path is still being resolved.
	rootCmd.InitDefaultHelpFlag()

	return rootCmd
}

// prepare sets up logging, loads the configuration and the help topics, and
// builds the help builder for cmdhelp's own help. It runs once.
func (a *app) prepare() error {
	if a.builder != nil {
		return nil
	}
	logging.SetupLogger(a.verbosity)

	cfg, err := config.Load(a.configPath, nil)
	if err != nil {
		return err
	}

	b, sections, err := newBuilder(cfg)
	if err != nil {
		return err
	}

	a.renderer.Width = cfg.MaxWidth
	a.renderer.Plain.Width = cfg.MaxWidth
	if err := a.topics.Scan(cfg.TopicsDir); err != nil {
		return err
	}
	if err := a.topics.AddTo(b, sections); err != nil {
		return err
	}

	a.cfg, a.builder = cfg, b
	return nil
}

// newBuilder creates a help builder for cfg laid out with the configured
// sections, which it also returns.
func newBuilder(cfg *config.Config) (*help.Builder, []help.Section, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, nil, err
	}
	sections, err := help.SectionsByName(cfg.Layout...)
	if err != nil {
		return nil, nil, err
	}

	b := help.New(cfg.MaxWidth,
		help.WithCatalog(catalog),
		help.WithLogger(logging.GetLogger("help")),
	)
	if err := b.CustomizeLayout(help.Layout(sections)); err != nil {
		return nil, nil, err
	}
	return b, sections, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cmdhelp version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func (a *app) newRenderCmd() *cobra.Command {
	var (
		width  int
		layout []string
	)

	cmd := &cobra.Command{
		Use:   "render <definition-file> [<command>...]",
		Short: "Render help for a command from a definition file",
		Long: `Render loads a command tree from a YAML, TOML or XML definition file and
prints the help of the command at the given path. Without a path the root
command's help is printed.`,
		Example: `  # Help of the root command
  cmdhelp render tool.yaml

  # Help of "tool remote add", 60 columns wide
  cmdhelp render tool.yaml remote add --width 60

  # Only the usage and options sections
  cmdhelp render tool.toml --layout usage,options`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("render")
			defer logging.LogOperationStart(logger, "render")()

			root, err := treefile.Load(args[0])
			if err != nil {
				return err
			}
			target, err := root.Find(args[1:]...)
			if err != nil {
				return err
			}

			cfg := a.cfg
			overrides := make(map[string]interface{})
			if cmd.Flags().Changed("width") {
				overrides["max_width"] = width
			}
			if cmd.Flags().Changed("layout") {
				overrides["layout"] = layout
			}
			if len(overrides) > 0 {
				if cfg, err = config.Load(a.configPath, overrides); err != nil {
					return err
				}
			}

			b, _, err := newBuilder(cfg)
			if err != nil {
				return err
			}

			logger.Info().
				Str("file", args[0]).
				Str("command", target.Name()).
				Int("width", cfg.MaxWidth).
				Msg("Rendering help")
			return b.Write(target, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Wrap output at `columns` instead of the configured width (0 disables wrapping)")
	cmd.Flags().StringSliceVarP(&layout, "layout", "l", nil, "Render only the given `sections`, in order")
	return cmd
}

func (a *app) newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the help sections that can be used in a layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := append(help.DefaultSections(), a.topics.Section())

			rows := make([]help.Row, 0, len(sections))
			for _, s := range sections {
				rows = append(rows, help.NewRow(s.Name, s.Summary))
			}

			b := a.builder
			return b.WriteColumns(rows, &help.Context{Builder: b, Output: cmd.OutOrStdout()})
		},
	}
}
