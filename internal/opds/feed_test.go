package opds

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/opds-community/libopds2-go/opds1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/internal/types"
)

func TestBuilder_Build(t *testing.T) {
	now := time.Date(2025, 6, 21, 10, 0, 0, 0, time.UTC)
	b := &Builder{CoverBaseUrl: "/covers/", StartHref: "/api/opds/books", Now: func() time.Time { return now }}

	feed := b.Build("urn:library:books", "Library", "/api/opds/books?search=dun", []types.Book{
		{Id: "1", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Rating: 5, Cover: "dune"},
		{Id: "2", Title: "1984", Author: "George Orwell", Genre: "Dystopian", Rating: 4},
	})

	assert.Equal(t, "urn:library:books", feed.ID)
	assert.Equal(t, now, feed.Updated)
	assert.Equal(t, "Library", feed.Title)
	assert.Equal(t, 2, feed.TotalResults)
	assert.Equal(t, 2, feed.ItemsPerPage)
	require.Len(t, feed.Links, 2)
	assert.Equal(t, "self", feed.Links[0].Rel)
	assert.Equal(t, "/api/opds/books?search=dun", feed.Links[0].Href)

	require.Len(t, feed.Entries, 2)
	dune := feed.Entries[0]
	assert.Equal(t, "urn:uuid:1", dune.ID)
	require.NotNil(t, dune.Updated)
	assert.Equal(t, now, *dune.Updated)
	assert.Equal(t, "Dune", dune.Title)
	require.Len(t, dune.Author, 1)
	assert.Equal(t, "Frank Herbert", dune.Author[0].Name)
	require.Len(t, dune.Category, 1)
	assert.Equal(t, "Science Fiction", dune.Category[0].Term)
	assert.Equal(t, "Rating: 5/5", dune.Content.Content)
	require.Len(t, dune.Links, 2)
	assert.Equal(t, "/covers/dune", dune.Links[0].Href)
	assert.Equal(t, linkRelImage, dune.Links[0].Rel)

	assert.Empty(t, feed.Entries[1].Links)
}

func TestBuilder_Build_Empty(t *testing.T) {
	feed := (&Builder{}).Build("id", "Library", "/self", nil)

	assert.NotNil(t, feed.Entries)
	assert.Empty(t, feed.Entries)
	assert.Equal(t, 0, feed.TotalResults)
	assert.Len(t, feed.Links, 1)
}

func TestFeed_RoundTripsThroughOPDSParser(t *testing.T) {
	now := time.Date(2025, 6, 21, 10, 0, 0, 0, time.UTC)
	b := &Builder{CoverBaseUrl: "https://cdn.example.com/", Now: func() time.Time { return now }}
	feed := b.Build("urn:library:books", "Library", "/self", []types.Book{
		{Id: "1", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Rating: 5, Cover: "dune"},
		{Id: "2", Title: "1984", Author: "George Orwell", Genre: "Dystopian", Rating: 4},
	})

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	require.NoError(t, enc.EncodeElement(feed, xml.StartElement{Name: RootName}))

	assert.Contains(t, buf.String(), `<feed xmlns="http://www.w3.org/2005/Atom">`)

	var parsed opds1.Feed
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))

	assert.Equal(t, "Library", parsed.Title)
	assert.Equal(t, "urn:library:books", parsed.ID)
	assert.True(t, now.Equal(parsed.Updated))
	assert.Equal(t, 2, parsed.TotalResults)
	assert.Equal(t, 2, parsed.ItemsPerPage)
	require.Len(t, parsed.Entries, 2)
	for _, entry := range parsed.Entries {
		require.NotNil(t, entry.Updated)
		assert.True(t, now.Equal(*entry.Updated))
	}
	assert.Equal(t, "Dune", parsed.Entries[0].Title)
	assert.Equal(t, "Science Fiction", parsed.Entries[0].Category[0].Term)
	assert.Equal(t, "https://cdn.example.com/dune", parsed.Entries[0].Links[0].Href)
}
