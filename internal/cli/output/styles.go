package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/autolint/pkg/core"
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
}

// NewStyles builds styles bound to a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: r.NewStyle().Bold(true).Underline(true),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Path:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		Added:   r.NewStyle().Foreground(lipgloss.Color("10")),
		Removed: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Severity returns the style for a finding severity.
func (s *Styles) Severity(sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return s.Error
	case core.SeverityWarn:
		return s.Warning
	case core.SeverityInfo:
		return s.Info
	default:
		return s.Muted
	}
}

// SeverityLabel renders a fixed-width severity label.
func (s *Styles) SeverityLabel(sev core.Severity) string {
	label := sev.String()
	for len(label) < 5 {
		label += " "
	}
	return s.Severity(sev).Render(label)
}
