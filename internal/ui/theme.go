package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/klauscode/anki-gacha/internal/engine"
)

// Shared theme (CLI + TUI). Kept intentionally small: reusable styles and a
// few emojis.

const (
	IconCard    = "🎴"
	IconSparkle = "✨"
	IconPoints  = "💰"
	IconHeart   = "❤️"
	IconStar    = "⭐"
	IconTrophy  = "🏆"
	IconDice    = "🎲"
	IconShop    = "🛒"
	IconFuse    = "🔮"
	IconCalen   = "📅"
	IconSkull   = "💀"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// Rarity colors from the default rarity table.
var rarityStyles = map[engine.Rarity]lipgloss.Style{
	engine.RarityCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0")),
	engine.RarityRare:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4169E1")),
	engine.RarityEpic:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9932CC")),
	engine.RarityLegendary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700")),
}

func RarityStyle(r engine.Rarity) lipgloss.Style {
	if st, ok := rarityStyles[r]; ok {
		return st
	}
	return Muted
}

func RarityBadge(r engine.Rarity) string {
	return RarityStyle(r).Render(strings.ToUpper(string(r)))
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// HealthText colors the health value by how close the item is to dying.
func HealthText(hp int) string {
	text := fmt.Sprintf("%d/100", hp)
	switch {
	case hp > 60:
		return Good.Render(text)
	case hp > 25:
		return Warn.Render(text)
	default:
		return Bad.Render(text)
	}
}
