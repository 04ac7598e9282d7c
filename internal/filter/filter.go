package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"library/internal/types"
)

// State is the query text and the optional genre constraint driving which books are shown.
// The zero value matches everything.
type State struct {
	Query string

	genre    string
	hasGenre bool
}

func (s *State) SetGenre(genre string) {
	s.genre = genre
	s.hasGenre = true
}

func (s *State) ClearGenre() {
	s.genre = ""
	s.hasGenre = false
}

func (s State) Genre() (string, bool) {
	return s.genre, s.hasGenre
}

// Engine filters books with case-insensitive matching for its locale.
type Engine struct {
	tag language.Tag
}

func NewEngine(tag language.Tag) *Engine {
	return &Engine{tag: tag}
}

// Apply returns the books matching both the text and the genre predicates, in input order.
// The result is never nil.
func (e *Engine) Apply(books []types.Book, state State) []types.Book {
	// Casers keep state between calls, so each Apply gets its own.
	m := matcher{lower: cases.Lower(e.tag)}
	query := m.lower.String(state.Query)

	ret := make([]types.Book, 0, len(books))
	for _, book := range books {
		if m.text(book, query) && MatchesGenre(book, state) {
			ret = append(ret, book)
		}
	}

	return ret
}

// MatchesText reports whether title, author or genre contains the query, ignoring case.
func (e *Engine) MatchesText(book types.Book, query string) bool {
	m := matcher{lower: cases.Lower(e.tag)}
	return m.text(book, m.lower.String(query))
}

var und = NewEngine(language.Und)

// Apply filters with locale-independent case folding.
func Apply(books []types.Book, state State) []types.Book {
	return und.Apply(books, state)
}

func MatchesText(book types.Book, query string) bool {
	return und.MatchesText(book, query)
}

// MatchesGenre reports whether the book satisfies the genre constraint. Genres compare exactly.
func MatchesGenre(book types.Book, state State) bool {
	genre, ok := state.Genre()
	return !ok || book.Genre == genre
}

// Genres returns the distinct genres of books, sorted.
func Genres(books []types.Book) []string {
	seen := make(map[string]struct{}, len(books))
	ret := make([]string, 0)

	for _, book := range books {
		if _, ok := seen[book.Genre]; !ok {
			seen[book.Genre] = struct{}{}
			ret = append(ret, book.Genre)
		}
	}

	sort.Strings(ret)

	return ret
}

type matcher struct {
	lower cases.Caser
}

// text expects an already lowered query.
func (m matcher) text(book types.Book, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(m.lower.String(book.Title), query) ||
		strings.Contains(m.lower.String(book.Author), query) ||
		strings.Contains(m.lower.String(book.Genre), query)
}
