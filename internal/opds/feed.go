// Package opds renders book lists as OPDS 1.2 acquisition feeds.
package opds

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/opds-community/libopds2-go/opds1"

	"library/internal/types"
)

const (
	Namespace   = "http://www.w3.org/2005/Atom"
	ContentType = "application/atom+xml;profile=opds-catalog;kind=acquisition"

	linkRelImage     = "http://opds-spec.org/image"
	linkRelThumbnail = "http://opds-spec.org/image/thumbnail"
	linkRelSelf      = "self"
	linkRelStart     = "start"
	linkTypeCatalog  = "application/atom+xml;profile=opds-catalog"
	linkTypeImage    = "image/jpeg"

	categoryScheme = "urn:library:genre"
)

// RootName is the element name the feed must be encoded under.
var RootName = xml.Name{Space: Namespace, Local: "feed"}

type Builder struct {
	// CoverBaseUrl is prepended to a book's cover key to form the image link.
	CoverBaseUrl string
	// StartHref is the catalog root, linked from every feed.
	StartHref string
	Now       func() time.Time
}

// Build makes an acquisition feed of books, preserving their order.
func (b *Builder) Build(id, title, selfHref string, books []types.Book) opds1.Feed {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	updated := now().UTC()

	var feed opds1.Feed
	feed.ID = id
	feed.Title = title
	feed.Updated = updated
	// The whole result is one page.
	feed.TotalResults = len(books)
	feed.ItemsPerPage = len(books)
	feed.Links = []opds1.Link{
		{Rel: linkRelSelf, Href: selfHref, TypeLink: ContentType},
	}
	if b.StartHref != "" {
		feed.Links = append(feed.Links, opds1.Link{Rel: linkRelStart, Href: b.StartHref, TypeLink: linkTypeCatalog})
	}

	feed.Entries = make([]opds1.Entry, 0, len(books))
	for _, book := range books {
		feed.Entries = append(feed.Entries, b.entry(book, updated))
	}

	return feed
}

func (b *Builder) entry(book types.Book, updated time.Time) opds1.Entry {
	var entry opds1.Entry

	entry.ID = "urn:uuid:" + book.Id
	entry.Updated = &updated
	entry.Title = book.Title
	entry.Author = []opds1.Author{{Name: book.Author}}
	entry.Category = []opds1.Category{{Scheme: categoryScheme, Term: book.Genre, Label: book.Genre}}
	entry.Content.Content = "Rating: " + strconv.Itoa(book.Rating) + "/5"

	if book.Cover != "" {
		href := b.CoverBaseUrl + book.Cover
		entry.Links = []opds1.Link{
			{Rel: linkRelImage, Href: href, TypeLink: linkTypeImage},
			{Rel: linkRelThumbnail, Href: href, TypeLink: linkTypeImage},
		}
	}

	return entry
}
