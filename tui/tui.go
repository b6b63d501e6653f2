// Package tui is a bubbletea front-end for the workbench container: the
// bookshelf grid with scrolling and search, the station slots, and keys for
// quick-move and the apply action.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-mclib/workbench/pkg/workbench"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Reverse(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// NameFunc renders a stack as a short display string.
type NameFunc func(s workbench.Stack) string

// UI is the bubbletea model for one open workbench container.
type UI struct {
	container *workbench.Container
	name      NameFunc

	search textinput.Model
	cursor int // selected cell in the bookshelf grid
	rows   int // grid rows drawn on screen
	status string

	width  int
	height int
}

// New creates a UI over an open container. name renders item stacks; rows is
// how many grid rows to draw (capped at the full grid height).
func New(c *workbench.Container, name NameFunc, rows int) *UI {
	if rows <= 0 || rows > workbench.BookshelfSlotsY {
		rows = workbench.BookshelfSlotsY
	}

	ti := textinput.New()
	ti.Placeholder = "search spells"
	ti.Blur()
	ti.CharLimit = 64
	ti.Width = 30

	return &UI{container: c, name: name, search: ti, rows: rows}
}

// Init implements tea.Model.
func (u *UI) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (u *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		u.width = msg.Width
		u.height = msg.Height
		return u, nil

	case tea.KeyMsg:
		if u.search.Focused() {
			switch msg.Type {
			case tea.KeyEsc, tea.KeyEnter:
				u.search.Blur()
				return u, nil
			case tea.KeyCtrlC:
				return u, tea.Quit
			}
			var cmd tea.Cmd
			u.search, cmd = u.search.Update(msg)
			u.container.SetSearchText(u.search.Value())
			u.cursor = 0
			return u, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return u, tea.Quit

		case "/":
			u.search.Focus()
			return u, textinput.Blink

		case "up":
			u.container.ScrollTo(u.container.Scroll() - 1)
		case "down":
			u.container.ScrollTo(u.container.Scroll() + 1)

		case "left":
			if u.cursor > 0 {
				u.cursor--
			}
		case "right":
			if u.cursor < u.rows*workbench.BookshelfSlotsX-1 {
				u.cursor++
			}

		case "t":
			u.container.SetSortType(workbench.SortTier)
		case "e":
			u.container.SetSortType(workbench.SortElement)
		case "n":
			u.container.SetSortType(workbench.SortAlphabetical)

		case "enter":
			u.quickMoveSelected()

		case "a":
			u.container.OnApplyButtonPressed(nil)
			u.container.UpdateActiveBookshelfSlots()
			u.status = "apply pressed"
		}
	}
	return u, nil
}

// quickMoveSelected shift-clicks the bookshelf cell under the cursor.
func (u *UI) quickMoveSelected() {
	v, ok := u.container.BookList(u.cursor).Resolve()
	if !ok {
		u.status = "empty slot"
		return
	}
	moved := u.container.QuickMove(v.ID())
	if moved.IsEmpty() {
		u.status = "nothing moved"
	} else {
		u.status = fmt.Sprintf("moved %s x%d", u.name(moved), moved.Count)
	}
	u.container.UpdateActiveBookshelfSlots()
}

// View implements tea.Model.
func (u *UI) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Arcane Workbench"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(u.sortLabel()))
	b.WriteString("\n")

	if u.search.Focused() {
		b.WriteString(inputStyle.Render(u.search.View()))
	} else if q := u.container.SearchText(); q != "" {
		b.WriteString(dimStyle.Render("search: " + q))
	} else {
		b.WriteString(dimStyle.Render("/ to search"))
	}
	b.WriteString("\n\n")

	visible := u.container.VisibleBookshelfSlots()
	for row := 0; row < u.rows; row++ {
		for col := 0; col < workbench.BookshelfSlotsX; col++ {
			i := row*workbench.BookshelfSlotsX + col
			label := "·"
			if i < len(visible) {
				label = u.name(visible[i].Stack())
			}
			if i == u.cursor {
				b.WriteString(selectedStyle.Render(label))
			} else {
				b.WriteString(cellStyle.Render(label))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("row %d, %d matching", u.container.Scroll(), len(u.container.ActiveBookshelfSlots()))))
	b.WriteString("\n\n")

	b.WriteString(u.stationView())
	b.WriteString("\n")

	if u.status != "" {
		b.WriteString(dimStyle.Render(u.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("arrows: scroll/select • enter: quick-move • t/e/n: sort • a: apply • q: quit"))
	return b.String()
}

func (u *UI) sortLabel() string {
	var key string
	switch u.container.SortType() {
	case workbench.SortTier:
		key = "tier"
	case workbench.SortElement:
		key = "element"
	default:
		key = "name"
	}
	if u.container.SortDescending() {
		return "sort: " + key + " desc"
	}
	return "sort: " + key + " asc"
}

func (u *UI) stationView() string {
	var b strings.Builder
	b.WriteString("centre: " + u.slotLabel(workbench.CentreSlot))
	b.WriteString("  crystal: " + u.slotLabel(workbench.CrystalSlot))
	b.WriteString("  upgrade: " + u.slotLabel(workbench.UpgradeSlot))
	b.WriteString("\n")
	for i := 0; i < u.container.VisibleSpellSlots(); i++ {
		b.WriteString(fmt.Sprintf("spell %d: %s  ", i, u.slotLabel(i)))
	}
	return b.String()
}

func (u *UI) slotLabel(id int) string {
	s := u.container.Slot(id)
	if s.IsEmpty() {
		return "-"
	}
	if s.Count > 1 {
		return fmt.Sprintf("%s x%d", u.name(s), s.Count)
	}
	return u.name(s)
}
