package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#30F6FF") // Neon cyan, primary accent
	colorAccent      = lipgloss.Color("#FF6FFF") // Neon magenta, highlights
	colorSuccess     = lipgloss.Color("#69FFAD") // Neon green, copy confirmation
	colorWarn        = lipgloss.Color("#FFC85C") // Amber, recoverable problems
	colorDanger      = lipgloss.Color("#FF5252") // Red, invalid catalog
	colorMuted       = lipgloss.Color("#636363") // Gray, de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray, normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white, primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white, emphatic text
	colorSurface     = lipgloss.Color("#0B0F14") // Dark grey base of the interface
	colorSurfaceDim  = lipgloss.Color("#070A0E") // Darkest surface, footer bg
)

// Tree glyphs.
const (
	glyphNode      = '◆'
	glyphSelected  = '◉'
	glyphConnector = '·'
	coreLabel      = "XP Nexus"
)

// Status bar styles. Solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleStatusCopied = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	styleStatusWarn = lipgloss.NewStyle().
			Foreground(colorWarn)

	styleStatusError = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)
)

// Tree canvas styles.
var (
	styleCore = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleConnector = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleLegend = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Detail panel styles.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDetailSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDetailHeaderLabel = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleDetailHeaderValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleScrollIndicator = lipgloss.NewStyle().
				Foreground(colorAccent)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// colorStyle returns a foreground style for a catalog hex color.
func colorStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
