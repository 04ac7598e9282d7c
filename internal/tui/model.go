// Package tui is the terminal rendition of the library screen: a search field, a two-column
// grid of cover cards, a genre picker and a detail box, all driven by screen.Controller.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"library/internal/catalog"
	"library/internal/filter"
	"library/internal/screen"
	"library/internal/types"
)

const (
	columns          = 2
	defaultCardWidth = 32
	coverHeight      = 5
)

type mode int

const (
	modeGrid mode = iota
	modePicker
	modeDetail
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	dim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	card        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 1)
	cover       = lipgloss.NewStyle().Foreground(dim).Align(lipgloss.Center, lipgloss.Center)
	bookTitle   = lipgloss.NewStyle().Bold(true)
	detailBox   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(highlight).Padding(1, 2)
	pickerBox   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(highlight).Padding(0, 1)
	destructive = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(dim).MarginTop(1)
)

// display is the grid view and detail presenter the controller pushes into.
type display struct {
	books  []types.Book
	detail *types.Book
}

func (d *display) Show(books []types.Book) {
	d.books = books
}

func (d *display) Present(book types.Book) {
	d.detail = &book
}

type Model struct {
	ctrl    *screen.Controller
	display *display
	search  textinput.Model
	logger  *slog.Logger

	mode         mode
	cursor       int
	options      screen.FilterOptions
	pickerCursor int
	width        int
}

func NewModel(c *catalog.Catalog, e *filter.Engine, l *slog.Logger) *Model {
	d := &display{}

	ti := textinput.New()
	ti.Placeholder = "Search books..."
	ti.Prompt = "  "
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	m := &Model{
		ctrl:    screen.NewController(c, e, d, d, l),
		display: d,
		search:  ti,
		logger:  l,
	}
	m.ctrl.Start()

	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.logger.Debug("Library screen closed")
			return m, tea.Quit
		}

		switch m.mode {
		case modePicker:
			return m.updatePicker(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateGrid(msg)
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.ctrl.SearchCancelled()
			m.cursor = 0
		}
		return m, nil
	case "ctrl+f":
		m.options = m.ctrl.FilterOptions()
		m.pickerCursor = 0
		m.mode = modePicker
		return m, nil
	// arrows belong to the grid; the caret keeps textinput's emacs and home/end bindings
	case "left":
		m.moveCursor(-1)
		return m, nil
	case "right":
		m.moveCursor(1)
		return m, nil
	case "up":
		m.moveCursor(-columns)
		return m, nil
	case "down":
		m.moveCursor(columns)
		return m, nil
	case "enter":
		if len(m.display.books) > 0 && m.ctrl.Select(m.display.books[m.cursor].Id) {
			m.mode = modeDetail
		}
		return m, nil
	}

	before := m.search.Value()

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if after := m.search.Value(); after != before {
		m.ctrl.SearchTextChanged(after)
		m.cursor = 0
	}

	return m, cmd
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// genres, then clear, then cancel
	count := len(m.options.Genres) + 2

	switch msg.String() {
	case "up":
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case "down":
		if m.pickerCursor < count-1 {
			m.pickerCursor++
		}
	case "esc":
		m.mode = modeGrid
	case "enter":
		switch ix := m.pickerCursor; {
		case ix < len(m.options.Genres):
			m.ctrl.GenreChosen(m.options.Genres[ix])
			m.cursor = 0
		case ix == len(m.options.Genres):
			m.ctrl.FilterCleared()
			m.cursor = 0
		}
		m.mode = modeGrid
	}

	return m, nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.display.detail = nil
		m.mode = modeGrid
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.display.books) {
		return
	}

	m.cursor = next
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Library"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	if genre, ok := m.ctrl.State().Genre(); ok {
		b.WriteString(lipgloss.NewStyle().Foreground(highlight).Render("  Genre: " + genre))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.mode {
	case modePicker:
		b.WriteString(m.viewPicker())
	case modeDetail:
		b.WriteString(m.viewDetail())
	default:
		b.WriteString(m.viewGrid())
	}

	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m *Model) viewGrid() string {
	books := m.display.books
	if len(books) == 0 {
		return ""
	}

	cards := make([]string, 0, len(books))
	for ix := range books {
		cards = append(cards, m.cell(ix))
	}

	var rows []string
	for i := 0; i < len(cards); i += columns {
		end := i + columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cell renders the card of the ix-th displayed book. Asking for a book that is not displayed
// is a wiring bug, not a runtime condition.
func (m *Model) cell(ix int) string {
	if ix < 0 || ix >= len(m.display.books) {
		panic(fmt.Sprintf("unable to build card for book %d of %d", ix, len(m.display.books)))
	}

	book := m.display.books[ix]
	width := m.cardWidth()

	// Covers are not resolved in a terminal; the asset key stands in for the image.
	art := cover.Width(width).Height(coverHeight).Render("[" + book.Cover + "]")

	body := lipgloss.JoinVertical(lipgloss.Left,
		art,
		bookTitle.Width(width).Render(book.Title),
		lipgloss.NewStyle().Width(width).Render(book.Author),
	)

	style := card
	if ix == m.cursor {
		style = style.BorderForeground(highlight)
	}

	return style.Render(body)
}

func (m *Model) cardWidth() int {
	if m.width <= 0 {
		return defaultCardWidth
	}

	// border and padding take four cells per card
	w := m.width/columns - 4
	if w < 10 {
		w = 10
	}

	return w
}

func (m *Model) viewPicker() string {
	lines := []string{"Filter Books", "Select a genre to filter by:", ""}

	labels := append(append([]string{}, m.options.Genres...), m.options.Clear, m.options.Cancel)
	for ix, label := range labels {
		prefix := "  "
		if ix == m.pickerCursor {
			prefix = "> "
		}

		if ix == len(m.options.Genres) {
			label = destructive.Render(label)
		}

		lines = append(lines, prefix+label)
	}

	return pickerBox.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewDetail() string {
	book := m.display.detail
	if book == nil {
		return ""
	}

	return detailBox.Render(bookTitle.Render(book.Title) + "\n\n" + screen.DetailText(*book) + "\n\n[ OK ]")
}

func (m *Model) help() string {
	switch m.mode {
	case modePicker:
		return "↑/↓ choose • enter apply • esc cancel"
	case modeDetail:
		return "enter/esc close"
	default:
		return "type to search • esc clear search • ctrl+f filter • arrows move card • ctrl+b/home/end move caret • enter details • ctrl+c quit"
	}
}
