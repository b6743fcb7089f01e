package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DCX-dev/stonepack/internal/inspect"
	"github.com/DCX-dev/stonepack/internal/output"
)

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path ...]",
		Short: "Check that executables match their target platform",
		Long: `Check inspects executable files and reports their binary format.

Without arguments, the per-platform release layout (releases/mac,
releases/windows) and leftover builds in dist/ are scanned. A macOS binary
wearing a .exe extension is flagged as unusable: it will not run on the
Windows computers its name promises.`,
		RunE: runCheck,
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := output.DefaultLogger
	inspector := inspect.NewInspector(logger, nil)

	logger.Bold("Executable Platform Checker")

	candidates := args
	if len(candidates) == 0 {
		candidates = inspect.DefaultCandidates(projectRoot)
		if len(candidates) == 0 {
			logger.Warn("No executables found under releases/ or dist/")
		}
	}

	allOK := true
	for _, path := range candidates {
		if _, ok := inspector.Inspect(path); !ok {
			allOK = false
		}
	}

	logger.Println("")
	logger.Info("TIP: Real Windows executables MUST be built on Windows!")
	logger.Info("Use GitHub Actions to build true Windows 10/11 executables.")

	if !allOK {
		return fmt.Errorf("one or more executables failed the platform check")
	}
	return nil
}
