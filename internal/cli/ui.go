package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - minimal verdicts
	colorYellow = lipgloss.Color("220") // Amber - warnings, inconclusive runs
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleMinimal for minimal verdicts.
	StyleMinimal = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleNotMinimal for non-minimal verdicts.
	StyleNotMinimal = lipgloss.NewStyle().Foreground(colorGray)

	// StyleWarning for inconclusive verdicts and warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Verdict Output
// =============================================================================

// verdictStyle picks the display style for a minimality verdict.
func verdictStyle(isMinimal bool, inconclusive bool) lipgloss.Style {
	switch {
	case inconclusive:
		return StyleWarning
	case isMinimal:
		return StyleMinimal
	default:
		return StyleNotMinimal
	}
}

// printVerdict prints one graph's verdict line.
func printVerdict(index int, outcome string, isMinimal, inconclusive, cached bool) {
	verdict := "not minimal"
	if isMinimal {
		verdict = "minimal"
	}
	if inconclusive {
		verdict = "inconclusive"
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}

	fmt.Printf("  %s %s %s %s\n",
		StyleDim.Render(fmt.Sprintf("#%d", index)),
		verdictStyle(isMinimal, inconclusive).Render(verdict),
		StyleDim.Render("("+outcome+")"),
		statusStyle.Render(status))
}

// printCorpusStats prints corpus summary counts on a single line.
func printCorpusStats(total, minimal, inconclusive int) {
	line := "  " + StyleDim.Render(fmt.Sprintf("%d graphs", total))
	line += StyleDim.Render(" · ") + StyleMinimal.Render(fmt.Sprintf("%d minimal", minimal))
	line += StyleDim.Render(" · ") + StyleNotMinimal.Render(fmt.Sprintf("%d not minimal", total-minimal-inconclusive))
	if inconclusive > 0 {
		line += StyleDim.Render(" · ") + StyleWarning.Render(fmt.Sprintf("%d inconclusive", inconclusive))
	}
	fmt.Println(line)
}
