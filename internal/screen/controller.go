package screen

import (
	"fmt"
	"log/slog"

	"library/internal/catalog"
	"library/internal/filter"
	"library/internal/types"
)

const (
	ClearFilterLabel = "Clear Filter"
	CancelLabel      = "Cancel"
)

// Grid receives the ordered books to display every time the result changes.
type Grid interface {
	Show(books []types.Book)
}

// DetailPresenter receives the single book the user selected.
type DetailPresenter interface {
	Present(book types.Book)
}

// FilterOptions is what the genre selection affordance offers.
type FilterOptions struct {
	Genres []string
	Clear  string
	Cancel string
}

// Controller owns the filter state of one screen. It is not safe for concurrent use:
// events are expected one at a time from the UI loop.
type Controller struct {
	catalog *catalog.Catalog
	engine  *filter.Engine
	grid    Grid
	detail  DetailPresenter
	logger  *slog.Logger

	state   filter.State
	visible []types.Book
}

func NewController(c *catalog.Catalog, e *filter.Engine, g Grid, d DetailPresenter, l *slog.Logger) *Controller {
	return &Controller{
		catalog: c,
		engine:  e,
		grid:    g,
		detail:  d,
		logger:  l,
		visible: make([]types.Book, 0),
	}
}

// Start shows the unfiltered catalog.
func (c *Controller) Start() {
	c.refresh()
}

func (c *Controller) SearchTextChanged(text string) {
	c.state.Query = text
	c.refresh()
}

// SearchCancelled drops the query but keeps the genre constraint.
func (c *Controller) SearchCancelled() {
	c.state.Query = ""
	c.refresh()
}

func (c *Controller) GenreChosen(genre string) {
	c.state.SetGenre(genre)
	c.refresh()
}

func (c *Controller) FilterCleared() {
	c.state.ClearGenre()
	c.refresh()
}

func (c *Controller) FilterOptions() FilterOptions {
	return FilterOptions{
		Genres: c.catalog.Genres(),
		Clear:  ClearFilterLabel,
		Cancel: CancelLabel,
	}
}

// Select presents the displayed book with the given id. It reports false when no such book is
// currently displayed.
func (c *Controller) Select(id string) bool {
	for _, book := range c.visible {
		if book.Id == id {
			c.logger.Debug("Selected book " + book.Id + " (" + book.Title + ")")
			c.detail.Present(book)
			return true
		}
	}

	c.logger.Warn("Selected book " + id + " is not displayed")
	return false
}

func (c *Controller) State() filter.State {
	return c.state
}

// Visible returns a copy of the books currently displayed.
func (c *Controller) Visible() []types.Book {
	ret := make([]types.Book, len(c.visible))
	copy(ret, c.visible)

	return ret
}

func (c *Controller) refresh() {
	c.visible = c.engine.Apply(c.catalog.All(), c.state)

	genre, _ := c.state.Genre()
	c.logger.Debug("Filtered books",
		slog.String("query", c.state.Query),
		slog.String("genre", genre),
		slog.Int("shown", len(c.visible)),
		slog.Int("total", c.catalog.Len()))

	c.grid.Show(c.Visible())
}

// DetailText is the body shown under the title of a selected book.
func DetailText(book types.Book) string {
	return fmt.Sprintf("Author: %s\nGenre: %s\nRating: %d/5", book.Author, book.Genre, book.Rating)
}
