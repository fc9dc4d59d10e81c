package result

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	columnHead lipgloss.Style
	row        lipgloss.Style
	rowAlt     lipgloss.Style
	footer     lipgloss.Style
	sgpa       lipgloss.Style
	standing   lipgloss.Style
	empty      lipgloss.Style
	bandA      lipgloss.Style
	bandB      lipgloss.Style
	bandC      lipgloss.Style
	bandD      lipgloss.Style
	bandF      lipgloss.Style
	bandNone   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		columnHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		row:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		rowAlt:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		footer:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		sgpa:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		standing:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:      lipgloss.NewStyle().Faint(true),
		bandA:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		bandB:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		bandC:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		bandD:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		bandF:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		bandNone:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

func (s styles) gradeStyle(band domain.GradeBand) lipgloss.Style {
	switch band {
	case domain.BandA:
		return s.bandA
	case domain.BandB:
		return s.bandB
	case domain.BandC:
		return s.bandC
	case domain.BandD:
		return s.bandD
	case domain.BandF:
		return s.bandF
	default:
		return s.bandNone
	}
}
