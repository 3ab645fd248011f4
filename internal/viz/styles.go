package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/chamber/internal/particle"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	formStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// strokeStyle picks the lipgloss style for one draw op.
func (t Theme) strokeStyle(class particle.Class, charge int, dim bool) lipgloss.Style {
	color := t.Neutral
	if charge != 0 {
		switch class {
		case particle.Baryon:
			color = t.Baryon
		case particle.Meson:
			color = t.Meson
		case particle.Lepton:
			color = t.Lepton
		case particle.Boson:
			color = t.Boson
		}
	}
	s := lipgloss.NewStyle().Foreground(color)
	if dim {
		s = s.Faint(true)
	}
	return s
}

func (t Theme) labelStyle(hovered bool) lipgloss.Style {
	if hovered {
		return lipgloss.NewStyle().Foreground(t.Hover).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.Label).Bold(true)
}
