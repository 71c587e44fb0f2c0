// Package letterboxd loads a member's recent diary entries from their
// Letterboxd RSS feed and maps them to the cards shown on the page.
package letterboxd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

// ErrNotFeed is returned when the payload parses but is not an RSS document,
// e.g. an HTML error page served with a 200.
var ErrNotFeed = errors.New("payload is not an rss document")

// Entry is one raw <item> of the feed. Missing fields are empty strings.
type Entry struct {
	Title        string
	Link         string
	PubDate      string
	WatchedDate  string
	FilmTitle    string
	FilmYear     string
	MemberRating string
	Description  string
}

// Parse reads at most limit items, in document order. A limit <= 0 reads
// every item.
func Parse(r io.Reader, limit int) ([]Entry, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	root := xmlquery.FindOne(doc, "/*")
	if root == nil || !strings.EqualFold(root.Data, "rss") {
		return nil, ErrNotFeed
	}

	items := xmlquery.Find(doc, "//item")
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, Entry{
			Title:        field(item, "title"),
			Link:         field(item, "link"),
			PubDate:      field(item, "pubDate"),
			WatchedDate:  field(item, "watchedDate"),
			FilmTitle:    field(item, "filmTitle"),
			FilmYear:     field(item, "filmYear"),
			MemberRating: field(item, "memberRating"),
			Description:  field(item, "description"),
		})
	}
	return entries, nil
}

// field matches on local name so letterboxd:filmTitle and a bare filmTitle
// both resolve.
func field(item *xmlquery.Node, name string) string {
	n := xmlquery.FindOne(item, ".//*[local-name()='"+name+"']")
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}
