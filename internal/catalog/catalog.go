package catalog

import (
	"github.com/google/uuid"

	"library/internal/filter"
	"library/internal/types"
)

// Catalog is a fixed, ordered collection of books. It is filled once by New
// and never mutated afterwards, so it is safe for concurrent readers.
type Catalog struct {
	books []types.Book
	byId  map[string]int
}

func NewBook(title, author, genre string, isRead bool, rating int, cover string) types.Book {
	return types.Book{
		Id:     uuid.NewString(),
		Title:  title,
		Author: author,
		Genre:  genre,
		IsRead: isRead,
		Rating: rating,
		Cover:  cover,
	}
}

// New copies books into a catalog, keeping their order. Books without an id get a fresh one.
func New(books ...types.Book) *Catalog {
	c := &Catalog{
		books: make([]types.Book, 0, len(books)),
		byId:  make(map[string]int, len(books)),
	}

	for _, book := range books {
		if book.Id == "" {
			book.Id = uuid.NewString()
		}

		if _, ok := c.byId[book.Id]; ok {
			// Identity must stay unique even if the caller reused an id.
			book.Id = uuid.NewString()
		}

		c.byId[book.Id] = len(c.books)
		c.books = append(c.books, book)
	}

	return c
}

// All returns a copy of every book in catalog order.
func (c *Catalog) All() []types.Book {
	ret := make([]types.Book, len(c.books))
	copy(ret, c.books)

	return ret
}

func (c *Catalog) Len() int {
	return len(c.books)
}

func (c *Catalog) GetById(id string) (types.Book, bool) {
	ix, ok := c.byId[id]
	if !ok {
		return types.Book{}, false
	}

	return c.books[ix], true
}

// Genres returns the distinct genres present in the catalog, sorted.
func (c *Catalog) Genres() []string {
	return filter.Genres(c.books)
}
