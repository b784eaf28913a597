package status

import "github.com/charmbracelet/lipgloss"

// Styles is shared with the live countdown so both views look alike.
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Task       lipgloss.Style
	Detail     lipgloss.Style
	Warning    lipgloss.Style
	Section    lipgloss.Style
	Empty      lipgloss.Style
	Clock      lipgloss.Style
	Meta       lipgloss.Style
	Completed  lipgloss.Style
	Stopped    lipgloss.Style
	BarBracket lipgloss.Style
	BarFill    lipgloss.Style
	BarEmpty   lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Task:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Section:    lipgloss.NewStyle().MarginTop(1),
		Empty:      lipgloss.NewStyle().Faint(true),
		Clock:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Completed:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Stopped:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		BarBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		BarFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		BarEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
