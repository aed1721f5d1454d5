package main

import (
	"fmt"

	"github.com/aretw0/paramlink/internal/cli"
	"github.com/aretw0/paramlink/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Describe the objects and parameters of the scene",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fixture, err := cli.LoadScene(cfg)
		if err != nil {
			return err
		}
		host := fixture.Build()

		title := "Demo scene"
		if cfg.Scene != "" {
			title = cfg.Scene
		}
		md := tui.InspectMarkdown(title, host.Registry)

		raw, _ := cmd.Flags().GetBool("raw")
		if raw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("raw", false, "Print markdown without rendering")
}
