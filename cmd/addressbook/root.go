package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/addressbook/internal/archive"
	"github.com/jask/addressbook/internal/command"
	"github.com/jask/addressbook/internal/tui"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "addressbook",
	Short: "Terminal address book with emergency contacts and archive snapshots",
	Long: `addressbook keeps persons and their emergency contacts in a local sqlite
database. Without a subcommand it opens the interactive view; press ':' there
to run commands such as "archive", "listArchives" or "deleteArchive FILE".

Configuration is read from $ADDRESSBOOK_CONFIG or ~/.config/addressbook/config.toml,
and every key can be overridden with ADDRESSBOOK_<SECTION>_<KEY>.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			_ = os.Setenv("ADDRESSBOOK_CONFIG", configPath)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

var runCmd = &cobra.Command{
	Use:   "run COMMAND [ARG]",
	Short: "Execute one address book command and print its result",
	Example: `  addressbook run listArchives
  addressbook run deleteArchive addressbook-20241023_114324-example.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLine(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(configCmd)
}

func runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.Close()
	ctx, cancel := context.WithCancel(e.withLogger(ctx))
	defer cancel()

	watcher, err := archive.NewWatcher(e.cfg.Archive.Dir)
	if err != nil {
		// the pane still refreshes after commands
		e.logger.Warn("archive watcher disabled", "err", err)
		watcher = nil
	} else {
		watcher.Start(ctx)
		defer func() {
			if err := watcher.Stop(); err != nil {
				e.logger.Error("stop archive watcher", "err", err)
			}
		}()
	}

	p := tea.NewProgram(tui.New(ctx, e.model, command.DefaultRegistry(), watcher), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// runLine parses and executes one command line outside the TUI.
func runLine(cmd *cobra.Command, line string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := command.DefaultRegistry().Parse(line)
	if err != nil {
		return err
	}
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	res, err := parsed.Execute(e.withLogger(ctx), e.model)
	if err != nil {
		return err
	}
	if res.ShowHelp {
		fmt.Fprintln(cmd.OutOrStdout(), command.DefaultRegistry().Help())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Feedback)
	return nil
}
