package packager

import (
	"os"
	"strconv"

	"github.com/DCX-dev/stonepack/internal/paths"
	"github.com/DCX-dev/stonepack/internal/platform"
)

// DataPair maps a source tree to its destination name inside the bundle.
type DataPair struct {
	Source string
	Dest   string
}

// Request describes one PyInstaller invocation for a single target.
// It is assembled fresh per build and never persisted.
type Request struct {
	Target         platform.Target
	ExecutableName string
	EntryScript    string
	SearchPaths    []string
	DataPairs      []DataPair
	HiddenImports  []string
	Excludes       []string
}

// hiddenImports lists the game modules PyInstaller cannot discover by
// static analysis of the entry script.
var hiddenImports = []string{
	"ui.modern_ui",
	"ui.world_ui",
	"ui.multiplayer_ui",
	"system.world_system",
	"system.chest_system",
	"system.chat_system",
	"managers.character_manager",
	"managers.coins_manager",
}

// excludedModules lists third-party modules excluded from the bundle.
// pygame.sndarray drags in numpy, which is unused and known to cause
// bundling conflicts.
var excludedModules = []string{
	"pygame.sndarray",
	"numpy",
}

// NewRequest assembles the invocation descriptor for the given target.
func NewRequest(projectRoot string, target platform.Target) Request {
	modules := paths.ModulesPath(projectRoot)

	return Request{
		Target:         target,
		ExecutableName: target.ExecutableName(),
		EntryScript:    paths.EntryScriptPath(projectRoot),
		SearchPaths:    []string{modules},
		DataPairs: []DataPair{
			{Source: paths.AssetsPath(projectRoot), Dest: paths.AssetsDir},
			{Source: paths.DamagePath(projectRoot), Dest: paths.DamageDir},
			{Source: paths.UIPath(projectRoot), Dest: paths.UIDir},
			{Source: paths.SystemPath(projectRoot), Dest: paths.SystemDir},
			{Source: paths.ManagersPath(projectRoot), Dest: paths.ManagersDir},
		},
		HiddenImports: hiddenImports,
		Excludes:      excludedModules,
	}
}

// Args renders the PyInstaller argument list. The data-pair separator is
// the host's path-list separator, matching what PyInstaller expects on
// each OS. The entry script is the final positional argument.
func (r Request) Args() []string {
	sep := string(os.PathListSeparator)

	args := []string{
		"--onefile",
		"--windowed",
		"--name", r.ExecutableName,
	}
	for _, p := range r.SearchPaths {
		args = append(args, "--paths", p)
	}
	for _, d := range r.DataPairs {
		args = append(args, "--add-data", d.Source+sep+d.Dest)
	}
	for _, m := range r.HiddenImports {
		args = append(args, "--hidden-import", m)
	}
	for _, m := range r.Excludes {
		args = append(args, "--exclude-module", m)
	}
	return append(args, r.EntryScript)
}

// Summary returns a short description for log output.
func (r Request) Summary() string {
	return r.ExecutableName + " (" + r.Target.Name() + ", " +
		strconv.Itoa(len(r.DataPairs)) + " data trees, " +
		strconv.Itoa(len(r.HiddenImports)) + " hidden imports)"
}
