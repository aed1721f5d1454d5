package main

import (
	"fmt"
	"os"

	"github.com/aretw0/paramlink/internal/cli"
	"github.com/aretw0/paramlink/internal/logging"
	"github.com/aretw0/paramlink/internal/presentation/tui"
	"github.com/aretw0/paramlink/pkg/adapters/memory"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Edit a control interactively",
	Long: `Mounts a control on the scene and edits it. A terminal gets the full-screen
interface; piped input gets a line-oriented command loop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		plain, _ := cmd.Flags().GetBool("plain")

		if plain || !term.IsTerminal(int(os.Stdin.Fd())) {
			s, err := cli.NewSession(ctx, cfg, cli.Presenter{
				Widgets: memory.NewWidgetFactory(),
				Errors:  logging.NewErrorSink(logger),
			}, logger)
			if err != nil {
				return err
			}
			defer s.Close()
			return cli.RunREPL(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout())
		}

		canvas := tui.NewCanvas()
		sink := &tui.StatusSink{}
		// Logs would tear the full-screen view.
		s, err := cli.NewSession(ctx, cfg, cli.Presenter{Widgets: canvas, Errors: sink}, logging.NewNop())
		if err != nil {
			return err
		}
		defer s.Close()

		tui.PrintBanner(cmd.OutOrStdout())
		if _, err := tea.NewProgram(tui.NewModel(s.Control, canvas, sink), tea.WithContext(ctx)).Run(); err != nil {
			return fmt.Errorf("interface error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("plain", false, "Use the line-oriented command loop even on a terminal")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
