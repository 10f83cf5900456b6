package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorGreen  = lipgloss.Color("35")  // section headings
	colorYellow = lipgloss.Color("220") // vertex values
	colorCyan   = lipgloss.Color("36")  // neighbor lists
	colorRed    = lipgloss.Color("167") // errors
	colorWhite  = lipgloss.Color("255") // values
	colorDim    = lipgloss.Color("240") // muted text
)

// Styles for the traversal and listing output.
var (
	styleHeading  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleVertex   = lipgloss.NewStyle().Foreground(colorYellow)
	styleNeighbor = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// printHeading prints a bold section heading.
func printHeading(format string, args ...any) {
	fmt.Println(styleHeading.Render(fmt.Sprintf(format, args...)))
}

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printStats prints graph statistics on a single line.
func printStats(vertexCount, edgeCount int) {
	line := "  " + styleDim.Render(fmt.Sprintf("%d vertices", vertexCount)) +
		styleDim.Render(" · ") +
		styleDim.Render(fmt.Sprintf("%d edges", edgeCount))
	fmt.Println(line)
}

// printCacheStatus reports whether an export came from the cache.
func printCacheStatus(cached bool) {
	status := iconFresh
	if cached {
		status = iconCached
	}
	fmt.Println("  " + styleDim.Render(status))
}
