// Package launcher resolves the game's entry script, whether the process
// runs from a packaged bundle or from source, and delegates execution to
// the game runtime.
package launcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/DCX-dev/stonepack/internal/output"
	"github.com/DCX-dev/stonepack/internal/packager"
	"github.com/DCX-dev/stonepack/internal/paths"
)

// Environment signals supplied by the packaging runtime.
const (
	// FrozenEnv is set when the process runs from a packaged bundle.
	FrozenEnv = "STONEPACK_FROZEN"

	// BundleDirEnv holds the bundle's temporary extraction root when
	// FrozenEnv is set.
	BundleDirEnv = "STONEPACK_BUNDLE_DIR"

	// PythonPathEnv is the module-discovery path of the delegated runtime.
	PythonPathEnv = "PYTHONPATH"
)

// Launcher locates the game's entry script and hands control to it.
type Launcher struct {
	python string
	logger output.LoggerInterface
	env    Environ
	exec   packager.Executor
}

// NewLauncher creates a Launcher. Nil collaborators fall back to the real
// environment, default logger, and a real subprocess runner.
func NewLauncher(python string, logger output.LoggerInterface, env Environ, exec packager.Executor) *Launcher {
	if logger == nil {
		logger = output.DefaultLogger
	}
	if python == "" {
		python = packager.DefaultPython
	}
	if env == nil {
		env = OSEnviron{}
	}
	if exec == nil {
		exec = packager.NewOSExecutor(logger.Writer(), logger.ErrWriter())
	}
	return &Launcher{
		python: python,
		logger: logger,
		env:    env,
		exec:   exec,
	}
}

// Frozen reports whether the process runs from a packaged bundle.
func (l *Launcher) Frozen() bool {
	v, ok := l.env.LookupEnv(FrozenEnv)
	return ok && v != "" && v != "0"
}

// EntryScriptPath computes the absolute path of the game's entry script:
// a fixed relative join from the bundle's extraction root when frozen,
// or from the launcher's own directory when running from source. The
// current working directory never participates.
func (l *Launcher) EntryScriptPath() (string, error) {
	var base string
	if l.Frozen() {
		base, _ = l.env.LookupEnv(BundleDirEnv)
	} else {
		exe, err := l.env.ExecutablePath()
		if err != nil {
			return "", err
		}
		base = filepath.Dir(exe)
	}
	return filepath.Join(base, paths.EntryScriptRel()), nil
}

// ResolveAndLaunch resolves the entry script, registers its directory for
// module discovery, moves the working directory there so the game's own
// relative asset lookups resolve, and delegates to the game runtime.
//
// Every failure is reported with a user-facing message and converted to a
// nonzero exit code; nothing crosses this boundary as a crash.
func (l *Launcher) ResolveAndLaunch(ctx context.Context) int {
	l.logger.Bold("Order of the Stone - Demo Launcher")
	l.logger.Bold("=====================================")
	l.logger.Info("Starting your adventure...")

	script, err := l.EntryScriptPath()
	if err != nil {
		l.logger.Error("Failed to resolve game script: %v", err)
		return 1
	}

	if !paths.IsFile(script) {
		l.logger.Error("Game script not found at %s", script)
		l.logger.Info("Please ensure all game files are included in the distribution.")
		return 1
	}

	gameDir := filepath.Dir(script)
	if err := l.registerModuleDir(gameDir); err != nil {
		l.logger.Error("Failed to register game directory: %v", err)
		return 1
	}
	if err := l.env.Chdir(gameDir); err != nil {
		l.logger.Error("Failed to enter game directory: %v", err)
		return 1
	}

	l.logger.Info("Loading game modules...")
	if err := l.exec.Run(ctx, l.python, script); err != nil {
		l.logger.Error("Game error: %v", err)
		l.logger.Info("Please check the game files and try again.")
		return 1
	}

	l.logger.Success("Enjoy your adventure!")
	return 0
}

// registerModuleDir prepends dir to the delegated runtime's module search
// path, skipping the update if it is already listed.
func (l *Launcher) registerModuleDir(dir string) error {
	existing, _ := l.env.LookupEnv(PythonPathEnv)
	if existing == "" {
		return l.env.Setenv(PythonPathEnv, dir)
	}
	for _, p := range strings.Split(existing, string(os.PathListSeparator)) {
		if p == dir {
			return nil
		}
	}
	return l.env.Setenv(PythonPathEnv, dir+string(os.PathListSeparator)+existing)
}
