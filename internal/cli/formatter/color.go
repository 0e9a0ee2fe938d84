package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleRedBold    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStatusStyle returns the bar color for a phase status.
func PhaseStatusStyle(s domain.PhaseStatus) lipgloss.Style {
	switch s {
	case domain.PhaseCompleted:
		return StyleGreen
	case domain.PhaseInProgress:
		return StyleBlue
	case domain.PhaseOnHold:
		return StyleYellow
	case domain.PhaseCancelled:
		return StyleDim
	default:
		return StyleFg
	}
}

// PhaseStatusPill returns a colored status indicator such as "● In Progress".
func PhaseStatusPill(s domain.PhaseStatus) string {
	switch s {
	case domain.PhaseCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.PhaseInProgress:
		return StyleBlue.Render("● In Progress")
	case domain.PhaseOnHold:
		return StyleYellow.Render("○ On Hold")
	case domain.PhaseCancelled:
		return StyleDim.Render("✖ Cancelled")
	case domain.PhasePlanned:
		return StyleFg.Render("○ Planned")
	default:
		return StyleDim.Render(string(s))
	}
}

// ProjectStatusPill returns a colored status indicator for a project.
func ProjectStatusPill(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectPlanning:
		return StyleBlue.Render("○ Planning")
	case domain.ProjectOnHold:
		return StyleYellow.Render("○ On Hold")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(s))
	}
}

// PriorityBadge colors High and Critical priorities.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRedBold.Render(string(p))
	case domain.PriorityHigh:
		return StyleYellow.Render(string(p))
	case domain.PriorityLow:
		return StyleDim.Render(string(p))
	default:
		return StyleFg.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
