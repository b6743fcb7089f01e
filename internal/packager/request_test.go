package packager

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DCX-dev/stonepack/internal/paths"
	"github.com/DCX-dev/stonepack/internal/platform"
)

func TestNewRequestExecutableNames(t *testing.T) {
	tests := []struct {
		name    string
		target  platform.Target
		wantExe string
	}{
		{name: "mac has no suffix", target: platform.Mac, wantExe: "Order_of_the_Stone"},
		{name: "windows carries .exe", target: platform.Windows, wantExe: "Order_of_the_Stone.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest("/project", tt.target)
			assert.Equal(t, tt.wantExe, req.ExecutableName)
			assert.Equal(t, tt.target, req.Target)
		})
	}
}

func TestRequestArgsShape(t *testing.T) {
	req := NewRequest("/project", platform.Windows)
	args := req.Args()

	require.NotEmpty(t, args)

	// Bundling mode flags come first, entry script is the final positional.
	assert.Equal(t, "--onefile", args[0])
	assert.Equal(t, "--windowed", args[1])
	assert.Equal(t, paths.EntryScriptPath("/project"), args[len(args)-1])

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "--name Order_of_the_Stone.exe")
	assert.Contains(t, joined, "--paths "+paths.ModulesPath("/project"))
	assert.Contains(t, joined, "--exclude-module pygame.sndarray")
	assert.Contains(t, joined, "--exclude-module numpy")
	assert.Contains(t, joined, "--hidden-import ui.modern_ui")
	assert.Contains(t, joined, "--hidden-import managers.coins_manager")
}

func TestRequestDataPairsUseHostSeparator(t *testing.T) {
	req := NewRequest("/project", platform.Mac)
	args := req.Args()

	sep := string(os.PathListSeparator)
	var pairs []string
	for i, a := range args {
		if a == "--add-data" {
			pairs = append(pairs, args[i+1])
		}
	}

	require.Len(t, pairs, 5)
	assert.Equal(t, paths.AssetsPath("/project")+sep+"assets", pairs[0])
	assert.Equal(t, paths.DamagePath("/project")+sep+"damage", pairs[1])
	for _, p := range pairs {
		assert.Contains(t, p, sep)
	}
}
