package packager

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DCX-dev/stonepack/internal/output"
	"github.com/DCX-dev/stonepack/internal/paths"
	"github.com/DCX-dev/stonepack/internal/platform"
)

// spyExecutor records invocations and runs an optional callback instead of
// spawning a real subprocess.
type spyExecutor struct {
	calls    int
	lastName string
	lastArgs []string
	run      func(ctx context.Context, name string, args ...string) error
}

func (s *spyExecutor) Run(ctx context.Context, name string, args ...string) error {
	s.calls++
	s.lastName = name
	s.lastArgs = args
	if s.run != nil {
		return s.run(ctx, name, args...)
	}
	return nil
}

// newProjectTree lays out the minimum game tree a build expects.
func newProjectTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	entry := paths.EntryScriptPath(root)
	require.NoError(t, paths.EnsureDir(filepath.Dir(entry)))
	require.NoError(t, os.WriteFile(entry, []byte("print('game')\n"), 0644))
	require.NoError(t, paths.EnsureDir(paths.DamagePath(root)))

	return root
}

// newTestLogger returns a quiet logger capturing output for assertions.
func newTestLogger() (*output.Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	logger := output.NewLogger()
	logger.SetNoColor(true)
	logger.SetWriters(&out, &errOut)
	return logger, &out, &errOut
}

func TestBuildMissingEntryScriptSpawnsNothing(t *testing.T) {
	root := t.TempDir() // no game tree at all
	logger, _, errOut := newTestLogger()
	spy := &spyExecutor{}

	builder := NewBuilder(root, "python3", logger, spy)

	for _, target := range platform.All() {
		ok := builder.Build(context.Background(), target)

		assert.False(t, ok, "build must fail for %s", target)
		assert.Equal(t, 0, spy.calls, "no subprocess may be spawned for %s", target)
		assert.Contains(t, errOut.String(), paths.EntryScriptPath(root))
		assert.False(t, paths.Exists(paths.ReleasePath(root, target.ReleaseDir())),
			"no release directory may be created for %s", target)
	}
}

func TestBuildSubprocessFailureIsReportedNotEscalated(t *testing.T) {
	root := newProjectTree(t)
	logger, _, errOut := newTestLogger()
	spy := &spyExecutor{
		run: func(ctx context.Context, name string, args ...string) error {
			return fmt.Errorf("exit status 1")
		},
	}

	builder := NewBuilder(root, "python3", logger, spy)

	assert.False(t, builder.Build(context.Background(), platform.Windows))
	assert.Equal(t, 1, spy.calls)
	assert.Contains(t, errOut.String(), "Build error")
}

func TestBuildZeroExitWithoutBinaryFails(t *testing.T) {
	root := newProjectTree(t)
	logger, _, errOut := newTestLogger()
	spy := &spyExecutor{} // exits zero but produces nothing

	builder := NewBuilder(root, "python3", logger, spy)

	assert.False(t, builder.Build(context.Background(), platform.Mac))
	assert.Contains(t, errOut.String(), "not found in dist/")
}

func TestBuildSuccessCopiesIntoReleaseLayout(t *testing.T) {
	root := newProjectTree(t)
	logger, _, _ := newTestLogger()

	spy := &spyExecutor{
		run: func(ctx context.Context, name string, args ...string) error {
			// Simulate PyInstaller dropping the binary in dist/.
			dist := paths.DistPath(root)
			if err := paths.EnsureDir(dist); err != nil {
				return err
			}
			return os.WriteFile(filepath.Join(dist, "Order_of_the_Stone.exe"), []byte("MZ"), 0755)
		},
	}

	builder := NewBuilder(root, "python3", logger, spy)

	require.True(t, builder.Build(context.Background(), platform.Windows))

	// Invocation shape: python -m PyInstaller ... <entry script>
	assert.Equal(t, "python3", spy.lastName)
	require.GreaterOrEqual(t, len(spy.lastArgs), 3)
	assert.Equal(t, []string{"-m", "PyInstaller"}, spy.lastArgs[:2])
	assert.Equal(t, paths.EntryScriptPath(root), spy.lastArgs[len(spy.lastArgs)-1])

	// The dist original stays; releases/ receives a copy with mode kept.
	released := paths.ReleaseBinaryPath(root, "windows", "Order_of_the_Stone.exe")
	require.True(t, paths.IsFile(released))
	require.True(t, paths.IsFile(paths.DistBinaryPath(root, "Order_of_the_Stone.exe")))

	info, err := os.Stat(released)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}
