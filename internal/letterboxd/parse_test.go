package letterboxd

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFixture(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Open("testdata/feed.xml")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestParse_LimitKeepsFeedOrder(t *testing.T) {
	entries, err := Parse(openFixture(t), 5)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	var titles []string
	for _, e := range entries {
		titles = append(titles, e.FilmTitle)
	}
	assert.Equal(t, []string{"Interstellar", "Arrival", "Moon", "Solaris", "Contact"}, titles)
}

func TestParse_NoLimit(t *testing.T) {
	entries, err := Parse(openFixture(t), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestParse_Fields(t *testing.T) {
	entries, err := Parse(openFixture(t), 5)
	require.NoError(t, err)

	first := entries[0]
	assert.Equal(t, "Interstellar, 2014 - ★★★★½", first.Title)
	assert.Equal(t, "https://letterboxd.com/meatymahir/film/interstellar/", first.Link)
	assert.Equal(t, "Sat, 4 Oct 2025 21:10:03 +1200", first.PubDate)
	assert.Equal(t, "2025-10-04", first.WatchedDate)
	assert.Equal(t, "2014", first.FilmYear)
	assert.Equal(t, "4.5", first.MemberRating)
	assert.Contains(t, first.Description, `<img src="https://a.ltrbxd.com/resized/interstellar-0-600-0-900-crop.jpg"/>`)

	// unprefixed element names resolve the same way
	solaris := entries[3]
	assert.Equal(t, "Solaris", solaris.FilmTitle)
	assert.Equal(t, "1972", solaris.FilmYear)
	assert.Equal(t, "0.5", solaris.MemberRating)
	assert.Empty(t, solaris.WatchedDate)
	assert.Empty(t, solaris.Description)
	assert.Empty(t, solaris.PubDate)
}

func TestParse_EmptyChannel(t *testing.T) {
	entries, err := Parse(strings.NewReader(`<rss version="2.0"><channel><title>x</title></channel></rss>`), 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParse_NotAFeed(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":      "",
		"plain text": "Service Unavailable",
		"html page":  "<html><body><p>rate limited</p></body></html>",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc), 5)
			require.Error(t, err)
		})
	}
}
