package packager

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DCX-dev/stonepack/internal/output"
	"github.com/DCX-dev/stonepack/internal/paths"
	"github.com/DCX-dev/stonepack/internal/platform"
)

// DefaultPython is the interpreter used to invoke PyInstaller when no
// override is configured.
const DefaultPython = "python3"

// Builder runs a single packaging invocation per target and relocates the
// produced binary into the per-platform release directory.
type Builder struct {
	projectRoot string
	python      string
	logger      output.LoggerInterface
	exec        Executor
}

// NewBuilder creates a Builder. A nil executor falls back to a real
// subprocess runner streaming into the logger's writers.
func NewBuilder(projectRoot, python string, logger output.LoggerInterface, exec Executor) *Builder {
	if logger == nil {
		logger = output.DefaultLogger
	}
	if python == "" {
		python = DefaultPython
	}
	if exec == nil {
		exec = NewOSExecutor(logger.Writer(), logger.ErrWriter())
	}
	return &Builder{
		projectRoot: projectRoot,
		python:      python,
		logger:      logger,
		exec:        exec,
	}
}

// Build packages the game for one target.
//
// It returns true only if the preconditions held, PyInstaller exited zero,
// the expected binary showed up in dist/, and the copy into releases/
// succeeded. Every failure is reported through the logger and degrades to
// false; nothing here panics or escalates.
func (b *Builder) Build(ctx context.Context, target platform.Target) bool {
	entryScript := paths.EntryScriptPath(b.projectRoot)
	if !paths.IsFile(entryScript) {
		b.logger.Error("Main script not found: %s", entryScript)
		return false
	}

	assetsDir := paths.AssetsPath(b.projectRoot)
	if !paths.IsDir(assetsDir) {
		b.logger.Error("Assets directory not found: %s", assetsDir)
		return false
	}

	b.logger.Info("Building Order of the Stone executable for %s...", strings.ToUpper(target.Name()))
	b.logger.Info("Main script: %s", entryScript)
	b.logger.Info("Assets: %s", assetsDir)
	b.logger.Info("Damage sounds: %s", paths.DamagePath(b.projectRoot))
	b.logger.Info("Music: %s", paths.MusicPath(b.projectRoot))

	req := NewRequest(b.projectRoot, target)
	b.logger.Debug("Packager request: %s", req.Summary())

	b.logger.Info("Running PyInstaller...")
	args := append([]string{"-m", "PyInstaller"}, req.Args()...)
	if err := b.exec.Run(ctx, b.python, args...); err != nil {
		b.logger.Error("Build error: %v", err)
		return false
	}

	b.logger.Success("Build successful for %s!", strings.ToUpper(target.Name()))

	// A zero exit alone is not trusted: the binary must actually be there.
	distBinary := paths.DistBinaryPath(b.projectRoot, req.ExecutableName)
	if !paths.IsFile(distBinary) {
		b.logger.Error("Executable not found in %s/", paths.DistDir)
		return false
	}

	releaseDir := paths.ReleasePath(b.projectRoot, target.ReleaseDir())
	if err := paths.EnsureDir(releaseDir); err != nil {
		b.logger.Error("Failed to create release directory %s: %v", releaseDir, err)
		return false
	}

	released := paths.ReleaseBinaryPath(b.projectRoot, target.ReleaseDir(), req.ExecutableName)
	if err := copyPreserving(distBinary, released); err != nil {
		b.logger.Error("Failed to copy executable to %s: %v", released, err)
		return false
	}

	b.logger.Success("Executable created: %s", released)
	b.logger.Success("%s executable is ready!", strings.ToUpper(target.Name()))
	return true
}

// copyPreserving copies src to dst, keeping the file mode and modification
// time. The dist/ original stays in place; releases/ receives a copy.
func copyPreserving(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy failed: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
