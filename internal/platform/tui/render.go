package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quintrel/gridrealm/internal/advisor"
	"github.com/quintrel/gridrealm/internal/sim"
)

// Glyphs for each building type. Tiles render as glyph plus level digit.
var buildingGlyphs = map[sim.BuildingType]rune{
	sim.BuildingNone:        '.',
	sim.BuildingRoad:        '=',
	sim.BuildingCottage:     'c',
	sim.BuildingTavern:      't',
	sim.BuildingMine:        'm',
	sim.BuildingLumberMill:  'l',
	sim.BuildingPark:        'p',
	sim.BuildingWizardTower: 'W',
	sim.BuildingAncientWell: 'O',
	sim.BuildingMonolith:    'M',
	sim.BuildingGuardPost:   'g',
	sim.BuildingMageSanctum: 's',
	sim.BuildingAcademy:     'a',
	sim.BuildingBakery:      'b',
}

var buildingStyles = map[sim.BuildingType]lipgloss.Style{
	sim.BuildingNone:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	sim.BuildingRoad:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	sim.BuildingCottage:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	sim.BuildingTavern:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	sim.BuildingMine:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	sim.BuildingLumberMill:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	sim.BuildingPark:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	sim.BuildingWizardTower: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	sim.BuildingAncientWell: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	sim.BuildingMonolith:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	sim.BuildingGuardPost:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	sim.BuildingMageSanctum: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	sim.BuildingAcademy:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	sim.BuildingBakery:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var (
	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("57")).
			Foreground(lipgloss.Color("229")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	newsStyles = map[advisor.Category]lipgloss.Style{
		advisor.CategoryPositive: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		advisor.CategoryNegative: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		advisor.CategoryNeutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		advisor.CategoryUrgent:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)

// renderView lays out the grid, the side panel, and the help bar.
func renderView(m Model) string {
	grid := renderGrid(m)
	panel := renderPanel(m)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(grid),
		" ",
		panelStyle.Render(panel),
	)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderGrid draws the city map with the cursor highlighted.
// Occupied tiles show their level digit next to the glyph.
func renderGrid(m Model) string {
	var b strings.Builder
	for y := 0; y < m.grid.Size; y++ {
		if y > 0 {
			b.WriteRune('\n')
		}
		for x := 0; x < m.grid.Size; x++ {
			tile := m.grid.Tiles[y][x]
			cell := tileCell(tile)

			if x == m.cursorX && y == m.cursorY {
				b.WriteString(cursorStyle.Render(cell))
				continue
			}
			style, ok := buildingStyles[tile.Building]
			if !ok {
				style = buildingStyles[sim.BuildingNone]
			}
			b.WriteString(style.Render(cell))
		}
	}
	return b.String()
}

// tileCell returns the two-character cell text for a tile.
func tileCell(tile sim.Tile) string {
	glyph, ok := buildingGlyphs[tile.Building]
	if !ok {
		glyph = '?'
	}
	if tile.Occupied() {
		return fmt.Sprintf("%c%d", glyph, tile.Level)
	}
	return string(glyph) + " "
}

// renderPanel draws the stats, the selected tool, the active quest,
// and the news log.
func renderPanel(m Model) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GRIDREALM"))
	b.WriteString("\n\n")

	paused := ""
	if m.sess.Paused() {
		paused = "  [paused]"
	}
	fmt.Fprintf(&b, "Day %d  %s  %s%s\n", m.stats.Day, clockLabel(m.stats.Time), m.stats.Weather, paused)
	fmt.Fprintf(&b, "Gold %d   Pop %d   Joy %d\n", m.stats.Money, m.stats.Population, m.stats.Happiness)
	fmt.Fprintf(&b, "Mana %d/%d   Essence %d/%d\n",
		m.stats.ManaUsage, m.stats.ManaSupply,
		m.stats.EssenceUsage, m.stats.EssenceSupply)
	fmt.Fprintf(&b, "Tax x%.1f\n", m.stats.TaxRate)

	tools := m.catalog.Buildable()
	tool := tools[m.tool]
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Structure"))
	fmt.Fprintf(&b, "\n%s (%d gold)\n", tool.Name, tool.Cost)
	b.WriteString(dimStyle.Render(tool.Description))
	b.WriteString("\n")

	if goal := m.sess.Goal(); goal != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Quest"))
		fmt.Fprintf(&b, "\n%s (+%d)\n", goal.Description, goal.Reward)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}

	news := m.sess.News()
	if len(news) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Herald"))
		b.WriteString("\n")
		limit := 6
		if len(news) < limit {
			limit = len(news)
		}
		for _, item := range news[:limit] {
			style, ok := newsStyles[item.Category]
			if !ok {
				style = newsStyles[advisor.CategoryNeutral]
			}
			b.WriteString(style.Render("* " + item.Text))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// clockLabel formats the in-world hour, e.g. 13.5 -> "13:30".
func clockLabel(t float64) string {
	hours := int(t)
	minutes := int((t - float64(hours)) * 60)
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
