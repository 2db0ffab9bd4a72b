package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/stow/internal/theme"
)

// dimBackground strips styling from background, dims it and pads it to
// width by height.
func dimBackground(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		dimmed := theme.DimmedStyle.Render(ansi.Strip(lines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// bottomAnchoredOverlay renders overlay over the last overlayHeight lines of
// a dimmed background.
func bottomAnchoredOverlay(background, overlay string, width, height, overlayHeight int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := height - overlayHeight
	if startY < 0 {
		startY = 0
	}

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}
	return strings.Join(bgLines, "\n")
}
