package ui

import (
	"fmt"

	"github.com/renato0307/stow/internal/theme"
	"github.com/renato0307/stow/internal/version"
)

// VersionInfo holds version information for display in UI headers.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = VersionInfo{
	Commit:    version.Commit,
	Date:      version.Date,
	GoVersion: version.GoVersion,
	Tagline:   version.Tagline,
	Version:   version.Version,
}

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// appNameLine renders the app name, with build details in dev mode.
func appNameLine(devMode bool) string {
	line := theme.AppNameStyle.Render("Stow")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}
	return line
}

// renderHeader renders the app name and tagline, plus subtitle when set.
// Only Dialog and the full screen views should call it.
func renderHeader(devMode bool, subtitle string) string {
	result := appNameLine(devMode) + "\n"
	result += theme.TaglineStyle.Render(versionInfo.Tagline)
	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	result += "\n"
	return result
}
