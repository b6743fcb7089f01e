// Package inspect classifies executable files by binary format and flags
// artifacts that will not run on the platform their name implies.
package inspect

import (
	"path/filepath"
	"strings"

	"github.com/DCX-dev/stonepack/internal/output"
	"github.com/DCX-dev/stonepack/internal/paths"
	"github.com/DCX-dev/stonepack/internal/platform"
)

// Platform labels derived from a file's type description.
const (
	PlatformMac     = "macOS"
	PlatformWindows = "Windows"
	PlatformLinux   = "Linux"
	PlatformUnknown = "Unknown"
)

// Report holds the outcome of inspecting a single file.
type Report struct {
	Path        string
	Description string
	Platform    string
	Mismatch    bool
}

// Inspector checks candidate executables against their apparent target
// platform.
type Inspector struct {
	logger   output.LoggerInterface
	describe Describer
}

// NewInspector creates an Inspector. A nil describer uses real file-header
// detection; tests inject canned descriptions instead.
func NewInspector(logger output.LoggerInterface, describe Describer) *Inspector {
	if logger == nil {
		logger = output.DefaultLogger
	}
	if describe == nil {
		describe = DescribeFile
	}
	return &Inspector{logger: logger, describe: describe}
}

// Inspect reports a file's binary format and whether it is usable for the
// platform its name implies. Missing or unreadable files are reported, not
// raised.
func (i *Inspector) Inspect(path string) (Report, bool) {
	report := Report{Path: path}

	if !paths.Exists(path) {
		i.logger.Error("File not found: %s", path)
		return report, false
	}

	desc, err := i.describe(path)
	if err != nil {
		i.logger.Error("Error checking file: %v", err)
		return report, false
	}
	report.Description = desc
	report.Platform = classify(desc)

	i.logger.Println("")
	i.logger.Info("Checking: %s", filepath.Base(path))
	i.logger.Info("Full path: %s", path)
	i.logger.Info("Type: %s", desc)
	i.logger.Info("Platform: %s", report.Platform)

	switch report.Platform {
	case PlatformMac:
		if strings.HasSuffix(path, platform.WindowsExeSuffix) {
			report.Mismatch = true
			i.logger.Warn("This has %s extension but is NOT a Windows executable!", platform.WindowsExeSuffix)
			i.logger.Warn("It will NOT work on Windows computers!")
			return report, false
		}
	case PlatformWindows:
		i.logger.Success("This is a real Windows executable - will work on Windows 10/11!")
	}

	return report, true
}

// classify maps a type description to a platform label, first match wins.
func classify(desc string) string {
	switch {
	case strings.Contains(desc, "Mach-O"):
		return PlatformMac
	case strings.Contains(desc, "PE32") || strings.Contains(desc, "PE executable"):
		return PlatformWindows
	case strings.Contains(desc, "ELF"):
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}

// DefaultCandidates returns the executables a bare `check` invocation
// scans: the per-platform release layout plus any leftover builds in dist/.
func DefaultCandidates(projectRoot string) []string {
	var candidates []string

	for _, target := range platform.All() {
		p := paths.ReleaseBinaryPath(projectRoot, target.ReleaseDir(), target.ExecutableName())
		if paths.IsFile(p) {
			candidates = append(candidates, p)
		}
	}

	matches, err := filepath.Glob(filepath.Join(paths.DistPath(projectRoot), platform.ExecutableBaseName+"*"))
	if err != nil {
		return candidates
	}
	for _, m := range matches {
		if paths.IsFile(m) && !strings.HasSuffix(m, ".app") {
			candidates = append(candidates, m)
		}
	}
	return candidates
}
