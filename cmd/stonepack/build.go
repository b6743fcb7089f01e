package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DCX-dev/stonepack/internal/output"
	"github.com/DCX-dev/stonepack/internal/packager"
	"github.com/DCX-dev/stonepack/internal/platform"
)

func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [mac|windows]",
		Short: "Build game executables with PyInstaller",
		Long: `Build packages the game into a standalone executable.

Without an argument, all platforms are built in order (mac, windows),
cleaning the transient build/, dist/ and *.spec state between platforms.
With a platform argument, only that platform is built.

Note that a real Windows executable must be built on Windows; use the
GitHub Actions workflow (see 'stonepack fetch') for true Windows builds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := output.DefaultLogger
	builder := packager.NewBuilder(projectRoot, python, logger, nil)
	orch := packager.NewOrchestrator(projectRoot, logger, builder)

	if len(args) == 1 {
		target, err := platform.Parse(args[0])
		if err != nil {
			_ = cmd.Usage()
			return err
		}
		if !orch.Build(cmd.Context(), target) {
			return fmt.Errorf("build failed for %s", target)
		}
		return nil
	}

	ok, err := orch.BuildAll(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("one or more platform builds failed")
	}
	return nil
}
