package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E06C75"))
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	sidebarStyle       = lipgloss.NewStyle().Width(24).PaddingRight(2)
	sectionStyle       = lipgloss.NewStyle()
	activeSectionStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	selectedRowStyle   = lipgloss.NewStyle().Bold(true)
	pendingRowStyle    = lipgloss.NewStyle().Faint(true)
	cardStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Width(26).Height(4).Padding(0, 1)
	fieldLabelStyle    = lipgloss.NewStyle().Width(9)
)

// accent renders s in the note color. Notes without a color keep the
// terminal default.
func accent(color, s string) string {
	if color == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}
