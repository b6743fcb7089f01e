package packager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/DCX-dev/stonepack/internal/output"
	"github.com/DCX-dev/stonepack/internal/paths"
	"github.com/DCX-dev/stonepack/internal/platform"
)

const banner = "============================================================"

// Result records the outcome of one platform's build attempt. Only the
// last attempt per platform within a run is kept.
type Result struct {
	Target  platform.Target
	Success bool
}

// Orchestrator drives the Builder across the full platform set, cleaning
// transient packager state between platforms.
type Orchestrator struct {
	projectRoot string
	logger      output.LoggerInterface
	builder     *Builder
}

// NewOrchestrator creates an Orchestrator around the given Builder.
func NewOrchestrator(projectRoot string, logger output.LoggerInterface, builder *Builder) *Orchestrator {
	if logger == nil {
		logger = output.DefaultLogger
	}
	return &Orchestrator{
		projectRoot: projectRoot,
		logger:      logger,
		builder:     builder,
	}
}

// Clean removes the transient build/, dist/ directories and any generated
// PyInstaller spec files from a previous run. Stale artifacts from one
// platform must never bleed into the next build.
func (o *Orchestrator) Clean() error {
	for _, dir := range []string{paths.BuildPath(o.projectRoot), paths.DistPath(o.projectRoot)} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}

	specs, err := paths.SpecFiles(o.projectRoot)
	if err != nil {
		return fmt.Errorf("failed to list spec files: %w", err)
	}
	for _, spec := range specs {
		if err := os.Remove(spec); err != nil {
			return fmt.Errorf("failed to remove %s: %w", spec, err)
		}
	}
	return nil
}

// BuildAll builds every supported platform in order and prints a summary.
//
// A single platform's failure is recorded and the run continues; the
// aggregate is true only if every platform built. Cleanup errors are the
// one fatal condition: a corrupted working directory would invalidate all
// remaining builds, so they propagate.
func (o *Orchestrator) BuildAll(ctx context.Context) (bool, error) {
	o.logger.Bold(banner)
	o.logger.Bold("Building Order of the Stone for ALL platforms")
	o.logger.Bold(banner)

	var results []Result
	for _, target := range platform.All() {
		o.logger.Println("")
		o.logger.Bold(banner)
		o.logger.Bold("Building for %s...", strings.ToUpper(target.Name()))
		o.logger.Bold(banner)
		o.logger.Println("")

		if err := o.Clean(); err != nil {
			return false, err
		}

		results = append(results, Result{
			Target:  target,
			Success: o.builder.Build(ctx, target),
		})
	}

	o.printSummary(results)

	ok := true
	for _, r := range results {
		ok = ok && r.Success
	}
	return ok, nil
}

// Build builds a single platform without the pre-clean loop, for callers
// that target one platform explicitly.
func (o *Orchestrator) Build(ctx context.Context, target platform.Target) bool {
	return o.builder.Build(ctx, target)
}

func (o *Orchestrator) printSummary(results []Result) {
	o.logger.Println("")
	o.logger.Bold(banner)
	o.logger.Bold("BUILD SUMMARY")
	o.logger.Bold(banner)

	for _, r := range results {
		status := "[FAILED]"
		if r.Success {
			status = "[SUCCESS]"
		}
		o.logger.Info("%s: %s", strings.ToUpper(r.Target.Name()), status)
	}

	o.logger.Println("")
	o.logger.Info("Executables are in the '%s/' directory", paths.ReleasesDir)
	o.logger.Bold(banner)
}
