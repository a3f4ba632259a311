package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	statsBoxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	selectedStyle   = lipgloss.NewStyle().Bold(true)

	verifiedBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("[VERIFIED] ")
	localBadge     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("[LOCAL]    ")
	encryptedBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("[ENCRYPTED]")

	pendingBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorBanner   = errorStyle
)
