package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stackplan/pkg/errors"
	"github.com/matzehuels/stackplan/pkg/pipeline"
	"github.com/matzehuels/stackplan/pkg/plan"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorBlue  = lipgloss.Color("75")  // Light blue - commands
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
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
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	stylePackage = lipgloss.NewStyle().Foreground(colorGreen)
	stylePhase   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).PaddingRight(1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// FormatError renders err for the terminal without its code prefix.
func FormatError(err error) string {
	return styleIconError.Render(iconError) + " " + errors.UserMessage(err)
}

// =============================================================================
// Plan Rendering
// =============================================================================

// renderPlan formats a pipeline result as a titled phase table.
func renderPlan(r *pipeline.Result) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(r.Provider))
	b.WriteString(" " + StyleDim.Render(r.Source) + "\n")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Phase", "Details")

	for _, p := range r.Plan.Phases {
		t.Row(stylePhase.Render(p.Name), phaseDetails(p))
	}
	if r.Plan.Start != nil {
		t.Row(stylePhase.Render("start"), styleCommand.Render(r.Plan.Start.Cmd))
	}

	b.WriteString(t.String())
	b.WriteString("\n")
	if digest, err := r.Plan.Digest(); err == nil {
		b.WriteString(StyleDim.Render("digest "+digest) + "\n")
	}
	return b.String()
}

// phaseDetails lists packages (with the pinned archive) followed by commands,
// one per line.
func phaseDetails(p *plan.Phase) string {
	var lines []string
	if len(p.NixPkgs) > 0 {
		pkgs := make([]string, len(p.NixPkgs))
		for i, pkg := range p.NixPkgs {
			pkgs[i] = pkg.String()
		}
		line := stylePackage.Render(strings.Join(pkgs, ", "))
		if p.NixpkgsArchive != "" {
			line += " " + StyleDim.Render("(nixpkgs "+shortRev(p.NixpkgsArchive)+")")
		}
		lines = append(lines, line)
	}
	for _, cmd := range p.Cmds {
		lines = append(lines, styleCommand.Render(cmd))
	}
	return strings.Join(lines, "\n")
}

func shortRev(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
