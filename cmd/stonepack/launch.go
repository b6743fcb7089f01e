package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DCX-dev/stonepack/internal/launcher"
	"github.com/DCX-dev/stonepack/internal/output"
)

func NewLaunchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Resolve the game's entry script and start it",
		Long: `Launch starts the game, resolving the entry script relative to the
packaged bundle's extraction root when running frozen, or relative to the
launcher's own directory when running from source.`,
		Args: cobra.NoArgs,
		RunE: runLaunch,
	}

	return cmd
}

func runLaunch(cmd *cobra.Command, args []string) error {
	l := launcher.NewLauncher(python, output.DefaultLogger, nil, nil)

	if code := l.ResolveAndLaunch(cmd.Context()); code != 0 {
		return fmt.Errorf("launch failed")
	}
	return nil
}
