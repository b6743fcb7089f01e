// Package platform enumerates the build targets supported by the packaging
// pipeline.
package platform

import "fmt"

// Target identifies one packaging target. The zero value is invalid.
type Target int

const (
	// Mac targets macOS desktop builds.
	Mac Target = iota + 1
	// Windows targets Windows desktop builds.
	Windows
)

// ExecutableBaseName is the platform-independent executable name.
const ExecutableBaseName = "Order_of_the_Stone"

// WindowsExeSuffix is the Windows executable file extension.
const WindowsExeSuffix = ".exe"

// All returns the fixed platform set in build order.
func All() []Target {
	return []Target{Mac, Windows}
}

// Parse maps a CLI platform literal to a Target.
func Parse(name string) (Target, error) {
	switch name {
	case "mac":
		return Mac, nil
	case "windows":
		return Windows, nil
	default:
		return 0, fmt.Errorf("unknown platform: %s (expected mac or windows)", name)
	}
}

// Name returns the CLI literal and release subdirectory name.
func (t Target) Name() string {
	switch t {
	case Mac:
		return "mac"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// ExecutableName returns the output executable name for the target.
// Windows builds carry the .exe suffix, everything else is bare.
func (t Target) ExecutableName() string {
	if t == Windows {
		return ExecutableBaseName + WindowsExeSuffix
	}
	return ExecutableBaseName
}

// ReleaseDir returns the per-platform subdirectory under releases/.
func (t Target) ReleaseDir() string {
	return t.Name()
}

func (t Target) String() string {
	return t.Name()
}
