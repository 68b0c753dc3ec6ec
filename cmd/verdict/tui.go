package main

import (
	"fmt"

	"github.com/Veraticus/verdict/internal/tui"
	"github.com/Veraticus/verdict/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "tui",
		Short:       "Start the interactive classifier",
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE:        runTUI,
	}
	addTUIFlags(cmd)
	return cmd
}

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().Bool("record", false, "record every frame to a temporary directory for debugging")
	cmd.Flags().Bool("no-alt-screen", false, "render inline instead of taking over the terminal")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	themeName, _ := cmd.Flags().GetString("theme")
	record, _ := cmd.Flags().GetBool("record")
	noAltScreen, _ := cmd.Flags().GetBool("no-alt-screen")
	if !cmd.Flags().Changed("theme") && viper.IsSet("tui.theme") {
		themeName = viper.GetString("tui.theme")
	}

	client, err := newClassifierClient()
	if err != nil {
		return err
	}

	if err := tui.Run(cmd.Context(),
		tui.WithClassifier(client),
		tui.WithTheme(themes.GetTheme(themeName)),
		tui.WithRecording(record),
		tui.WithAltScreen(!noAltScreen),
	); err != nil {
		return fmt.Errorf("interactive classifier failed: %w", err)
	}
	return nil
}
