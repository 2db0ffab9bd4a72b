package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Tagline is used in help text
const Tagline = "Shelves of things you can drag, drop, cut and paste from the terminal"

// Set with -ldflags "-X github.com/renato0307/stow/internal/version.Version=..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
	Version   = "dev"
)

func init() {
	// go install builds carry the module version instead of ldflags
	if Version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}

// Info is the line printed by --version
func Info() string {
	return fmt.Sprintf("stow %s (commit: %s, built: %s, go: %s)", Version, Commit, Date, GoVersion)
}
