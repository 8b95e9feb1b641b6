package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/klauscode/anki-gacha/internal/engine"
	"github.com/klauscode/anki-gacha/internal/ui"
)

type collectionModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snap     *engine.Snapshot
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap *engine.Snapshot
}

type fusedMsg struct {
	res *engine.FusionResult
	err error
}

type buddyMsg struct {
	id  string
	err error
}

type favoriteMsg struct {
	id       string
	favorite bool
	err      error
}

func newCollectionModel(ctx context.Context, svc *engine.Service) collectionModel {
	return collectionModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m collectionModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m collectionModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{snap: m.svc.Snapshot()}
	}
}

func (m collectionModel) fuseCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.RequestFusion(m.ctx, id)
		return fusedMsg{res: res, err: err}
	}
}

func (m collectionModel) buddyCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.SetBuddy(id)
		return buddyMsg{id: id, err: err}
	}
}

func (m collectionModel) favoriteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		fav, err := m.svc.ToggleFavorite(id)
		return favoriteMsg{id: id, favorite: fav, err: err}
	}
}

func (m collectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.snap = msg.snap
		if m.selected >= len(m.snap.Items) {
			m.selected = len(m.snap.Items) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case fusedMsg:
		if msg.err != nil {
			m.lastLog = fuseErrorText(msg.err)
			return m, nil
		}
		if msg.res.Removed {
			m.lastLog = fmt.Sprintf("%s fused away its last copies (%s).", msg.res.ItemID, msg.res.NewRarity.DisplayName())
		} else {
			m.lastLog = fmt.Sprintf("Fusion! %s is now %s (%d copies left).", msg.res.ItemID, msg.res.NewRarity.DisplayName(), msg.res.CopiesLeft)
		}
		return m, m.loadCmd()
	case buddyMsg:
		if msg.err != nil {
			m.lastLog = "Set buddy failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s is now your buddy.", msg.id)
		return m, m.loadCmd()
	case favoriteMsg:
		if msg.err != nil {
			m.lastLog = "Favorite failed: " + msg.err.Error()
			return m, nil
		}
		if msg.favorite {
			m.lastLog = fmt.Sprintf("Favorited %s.", msg.id)
		} else {
			m.lastLog = fmt.Sprintf("Unfavorited %s.", msg.id)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.snap != nil && m.selected < len(m.snap.Items)-1 {
				m.selected++
			}
			return m, nil
		case "b", "enter":
			if item, ok := m.selectedItem(); ok {
				m.lastLog = fmt.Sprintf("Setting %s as buddy…", item.ID)
				return m, m.buddyCmd(item.ID)
			}
			return m, nil
		case "f":
			if item, ok := m.selectedItem(); ok {
				m.lastLog = fmt.Sprintf("Fusing %s…", item.ID)
				return m, m.fuseCmd(item.ID)
			}
			return m, nil
		case "v":
			if item, ok := m.selectedItem(); ok {
				return m, m.favoriteCmd(item.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m collectionModel) selectedItem() (engine.ItemView, bool) {
	if m.snap == nil || m.selected < 0 || m.selected >= len(m.snap.Items) {
		return engine.ItemView{}, false
	}
	return m.snap.Items[m.selected], true
}

func fuseErrorText(err error) string {
	switch {
	case errors.Is(err, engine.ErrInsufficientCopies):
		return "Not enough copies to fuse (need 3)."
	case errors.Is(err, engine.ErrAlreadyMaxRarity):
		return "Already at the highest rarity."
	default:
		return "Fusion failed: " + err.Error()
	}
}

func (m collectionModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.snap == nil {
		return "Loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderItems())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m collectionModel) renderHeader() string {
	buddy := "(none)"
	if m.snap.Buddy != nil {
		buddy = m.snap.Buddy.ID
	}
	return fmt.Sprintf("%s  %s %d  %s %s",
		ui.Heading(ui.IconCard, "Collection"),
		ui.IconPoints, m.snap.Points,
		ui.Muted.Render("buddy:"), buddy)
}

func (m collectionModel) renderItems() string {
	if len(m.snap.Items) == 0 {
		return ui.Muted.Render("Your collection is empty. Study to earn points and pull cards.")
	}
	var out []string
	for i, item := range m.snap.Items {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		marks := ""
		if item.IsBuddy {
			marks += " " + ui.IconHeart
		}
		if item.Favorite {
			marks += " " + ui.IconStar
		}
		line := fmt.Sprintf("%s%s %s  ×%d  L%d (xp %d/%d)  hp %s%s",
			cursor,
			ui.RarityBadge(item.Rarity),
			displayName(item.ID),
			item.Count,
			item.Level, item.XP, engine.XPToNext(item.Level),
			ui.HealthText(item.Health),
			marks,
		)
		if i == m.selected {
			line = ui.Gold.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m collectionModel) renderFooter() string {
	keys := ui.Muted.Render("↑/↓ move · b buddy · f fuse · v favorite · r refresh · q quit")
	return keys + "\n" + m.lastLog
}

func displayName(id string) string {
	if i := strings.LastIndexByte(id, '.'); i > 0 {
		return id[:i]
	}
	return id
}
