package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"library/internal/catalog"
	"library/internal/filter"
	"library/internal/opds"
	"library/internal/response"
	"library/internal/screen"
	"library/internal/types"
)

// Handler serves the catalog. Each request builds its own filter state from the query string.
func Handler(c *catalog.Catalog, e *filter.Engine, ob *opds.Builder, rr *response.Responder) http.Handler {
	r := chi.NewRouter()

	r.Get("/genres", func(w http.ResponseWriter, r *http.Request) {
		rr.SendJson(w, r.Context(), struct {
			Titles []string `json:"titles"`
		}{Titles: c.Genres()})
	})

	r.Get("/books", func(w http.ResponseWriter, r *http.Request) {
		rows := e.Apply(c.All(), getState(r.URL.Query()))

		rr.SendJson(w, r.Context(), struct {
			Books []types.Book `json:"books"`
			Total int          `json:"total"`
		}{
			Books: rows,
			Total: len(rows),
		})
	})

	r.Get("/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		book, ok := c.GetById(id)
		if !ok {
			rr.RespondAndLogCustom(w, r.Context(), fmt.Errorf("book %s: %w", id, response.ErrNotFound),
				slog.LevelWarn, http.StatusNotFound)
			return
		}

		rr.SendJson(w, r.Context(), struct {
			Book   types.Book `json:"book"`
			Detail string     `json:"detail"`
		}{
			Book:   book,
			Detail: screen.DetailText(book),
		})
	})

	r.Get("/opds/books", func(w http.ResponseWriter, r *http.Request) {
		state := getState(r.URL.Query())
		rows := e.Apply(c.All(), state)

		title := "Library"
		if genre, ok := state.Genre(); ok {
			title += ": " + genre
		}
		if state.Query != "" {
			title += " (" + state.Query + ")"
		}

		rr.SendXml(w, r.Context(), opds.ContentType, opds.RootName,
			ob.Build("urn:library:books?"+r.URL.RawQuery, title, r.URL.RequestURI(), rows))
	})

	return r
}

// getState maps ?search= and ?genre= onto a filter state. The search text is kept verbatim;
// a blank genre means no constraint.
func getState(q url.Values) filter.State {
	state := filter.State{Query: q.Get("search")}

	if genre := q.Get("genre"); strings.TrimSpace(genre) != "" {
		state.SetGenre(genre)
	}

	return state
}
