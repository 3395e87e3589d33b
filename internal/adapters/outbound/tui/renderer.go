package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	codeStyle     = lipgloss.NewStyle().Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats a validation result for terminal output.
func RenderResult(result *domain.ValidationResult) string {
	var b strings.Builder

	title := headerStyle.Render("praetorian")
	subtitle := dimStyle.Render("Configuration Guardian")
	verdict := passStyle.Bold(true).Render("PASSED")
	if !result.Success {
		verdict = failStyle.Bold(true).Render("FAILED")
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	total := len(result.Errors) + len(result.Warnings) + len(result.Info)
	if total == 0 {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n")
	} else {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Findings"))
		b.WriteString("  ")
		if n := len(result.Errors); n > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", n)))
			b.WriteString("  ")
		}
		if n := len(result.Warnings); n > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", n)))
			b.WriteString("  ")
		}
		if n := len(result.Info); n > 0 {
			b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", n)))
		}
		b.WriteString("\n\n")

		for _, f := range result.Errors {
			renderFinding(&b, f, errorTagStyle.Render("error"))
		}
		for _, f := range result.Warnings {
			renderFinding(&b, f, warnTagStyle.Render("warn "))
		}
		for _, f := range result.Info {
			renderFinding(&b, f, infoTagStyle.Render("info "))
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	b.WriteString("  " + dimStyle.Render(metadataLine(result.Metadata)))
	b.WriteString("\n")
	return b.String()
}

func renderFinding(b *strings.Builder, f domain.Finding, tag string) {
	location := f.File
	if f.Path != "" {
		if location != "" {
			location += "  "
		}
		location += f.Path
	}

	fmt.Fprintf(b, "    %s %s", tag, codeStyle.Render(f.Code))
	if location != "" {
		fmt.Fprintf(b, "  %s", fileStyle.Render(location))
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(f.Message))
}

func metadataLine(m domain.ResultMetadata) string {
	parts := []string{}
	if m.FilesCompared > 0 {
		parts = append(parts, fmt.Sprintf("%d files", m.FilesCompared))
	}
	if m.TotalKeys > 0 {
		parts = append(parts, fmt.Sprintf("%d keys", m.TotalKeys))
	}
	if m.RulesEvaluated > 0 {
		parts = append(parts, fmt.Sprintf("%d rules", m.RulesEvaluated))
	}
	parts = append(parts, fmt.Sprintf("%dms", m.DurationMS))
	return strings.Join(parts, "  ·  ")
}
