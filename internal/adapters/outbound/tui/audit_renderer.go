package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// RenderAudit formats an audit report: the scored header box, the
// summary counters and then the findings of the underlying run.
func RenderAudit(report *domain.AuditReport) string {
	var b strings.Builder

	title := headerStyle.Render("praetorian")
	subtitle := dimStyle.Render("Configuration Audit")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(report.Grade)).
		Render(fmt.Sprintf("%d / 100", report.Score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(report.Grade)).
		Render(report.Grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	b.WriteString("  " + dimStyle.Render("audit "+report.ID))
	b.WriteString("\n")
	if report.CommitHash != "" {
		commit := report.CommitHash
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line := "  " + dimStyle.Render("commit "+commit)
		if report.Dirty {
			line += "  " + warnTagStyle.Render("dirty")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	s := report.Summary
	fmt.Fprintf(&b, "  %s  %s\n",
		titleStyle.Render("Summary"),
		dimStyle.Render(fmt.Sprintf("%d rules evaluated, %d failed", s.RulesEvaluated, s.RulesFailed)))
	fmt.Fprintf(&b, "    errors %d (security %d)  warnings %d  info %d\n",
		s.Errors, s.SecurityErrors, s.Warnings, s.Info)
	b.WriteString("\n")

	if report.Result != nil {
		b.WriteString(RenderResult(report.Result))
	}
	return b.String()
}

// RenderHealth formats workspace readiness checks.
func RenderHealth(report *domain.HealthReport) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Workspace Health") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, c := range report.Checks {
		icon := passStyle.Render("●")
		if !c.Passed {
			icon = failStyle.Render("●")
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", icon, padRight(c.Name, 10), dimStyle.Render(c.Message))
	}

	b.WriteString("\n")
	if report.Healthy {
		b.WriteString("  " + passStyle.Render("Workspace is ready.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render("Workspace needs attention.") + "\n")
	}
	return b.String()
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
