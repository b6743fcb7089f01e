// Package paths provides centralized path management for the Order of the
// Stone project tree.
package paths

import (
	"os"
	"path/filepath"
)

// Directory constants relative to the project root.
const (
	GameDir     = "Order of the stone"
	BuildDir    = "build"
	DistDir     = "dist"
	ReleasesDir = "releases"
)

// Components of the game tree under GameDir.
const (
	AssetsDir  = "assets"
	DamageDir  = "damage"
	MusicDir   = "music"
	ModulesDir = "com/dreamcrusherx/Order of the stone"
)

// Game module subdirectories bundled as data and resolved dynamically at
// runtime, so PyInstaller needs them declared explicitly.
const (
	UIDir       = "ui"
	SystemDir   = "system"
	ManagersDir = "managers"
)

// EntryScript is the game's entry module file name.
const EntryScript = "order_of_the_stone.py"

// SpecGlob matches PyInstaller-generated build spec files.
const SpecGlob = "*.spec"

// GamePath returns the root of the game tree.
func GamePath(projectRoot string) string {
	return filepath.Join(projectRoot, GameDir)
}

// AssetsPath returns the primary asset tree.
func AssetsPath(projectRoot string) string {
	return filepath.Join(GamePath(projectRoot), AssetsDir)
}

// DamagePath returns the damage sound asset tree.
func DamagePath(projectRoot string) string {
	return filepath.Join(GamePath(projectRoot), DamageDir)
}

// MusicPath returns the music asset tree.
func MusicPath(projectRoot string) string {
	return filepath.Join(AssetsPath(projectRoot), MusicDir)
}

// ModulesPath returns the game modules directory added to the packager's
// module search path.
func ModulesPath(projectRoot string) string {
	return filepath.Join(AssetsPath(projectRoot), filepath.FromSlash(ModulesDir))
}

// UIPath returns the ui module directory.
func UIPath(projectRoot string) string {
	return filepath.Join(ModulesPath(projectRoot), UIDir)
}

// SystemPath returns the system module directory.
func SystemPath(projectRoot string) string {
	return filepath.Join(ModulesPath(projectRoot), SystemDir)
}

// ManagersPath returns the managers module directory.
func ManagersPath(projectRoot string) string {
	return filepath.Join(ModulesPath(projectRoot), ManagersDir)
}

// EntryScriptPath returns the game's entry script.
func EntryScriptPath(projectRoot string) string {
	return filepath.Join(ModulesPath(projectRoot), "main_script", EntryScript)
}

// EntryScriptRel returns the entry script path relative to a bundle or
// source root, used by the launcher.
func EntryScriptRel() string {
	return filepath.Join(GameDir, AssetsDir, filepath.FromSlash(ModulesDir), "main_script", EntryScript)
}

// BuildPath returns the packager's transient build directory.
func BuildPath(projectRoot string) string {
	return filepath.Join(projectRoot, BuildDir)
}

// DistPath returns the packager's default output directory.
func DistPath(projectRoot string) string {
	return filepath.Join(projectRoot, DistDir)
}

// DistBinaryPath returns where the packager places the named executable.
func DistBinaryPath(projectRoot, exeName string) string {
	return filepath.Join(DistPath(projectRoot), exeName)
}

// ReleasePath returns the per-platform release directory.
func ReleasePath(projectRoot, platformDir string) string {
	return filepath.Join(projectRoot, ReleasesDir, platformDir)
}

// ReleaseBinaryPath returns the final location of a released executable.
func ReleaseBinaryPath(projectRoot, platformDir, exeName string) string {
	return filepath.Join(ReleasePath(projectRoot, platformDir), exeName)
}

// SpecFiles returns the PyInstaller spec files present in the project root.
func SpecFiles(projectRoot string) ([]string, error) {
	return filepath.Glob(filepath.Join(projectRoot, SpecGlob))
}

// Path existence helpers

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
