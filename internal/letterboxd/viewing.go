package letterboxd

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	fullStar = "★"
	halfStar = "½"

	watchedLayout = "Jan 2, 2006"

	// maxRating bounds the glyph count. Letterboxd rates 0.5 to 5.
	maxRating = 10
)

// MovieViewing is the view model for one card in the feed grid.
type MovieViewing struct {
	Title       string
	Year        string
	StarRating  string
	PosterURL   string
	WatchedDate string
	Link        string
	FullTitle   string
}

func (m MovieViewing) HasPoster() bool { return m.PosterURL != "" }

func (m MovieViewing) HasRating() bool { return m.StarRating != "" }

// NewViewing maps a raw feed entry to its card. It never rejects an entry.
func NewViewing(e Entry) MovieViewing {
	return MovieViewing{
		Title:       e.FilmTitle,
		Year:        e.FilmYear,
		StarRating:  StarRating(e.MemberRating),
		PosterURL:   PosterURL(e.Description),
		WatchedDate: FormatWatchedDate(e.WatchedDate),
		Link:        e.Link,
		FullTitle:   e.Title,
	}
}

// StarRating renders a 0..5 rating in half steps as glyphs, e.g. 3.5 as ★★★½.
// Empty, unparseable, negative and out of range ratings render as "".
func StarRating(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil || r < 0 || r > maxRating || math.IsNaN(r) || math.IsInf(r, 0) {
		return ""
	}
	whole := math.Floor(r)
	stars := strings.Repeat(fullStar, int(whole))
	if r-whole >= 0.5 {
		stars += halfStar
	}
	return stars
}

// PosterURL returns the src of the first element in the description HTML
// that has one.
func PosterURL(descHTML string) string {
	if strings.TrimSpace(descHTML) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(descHTML))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("[src]").First().Attr("src")
	return strings.TrimSpace(src)
}

var watchedInputs = []string{
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
}

// FormatWatchedDate turns the feed's watched date into "Jan 2, 2006".
// Values in an unknown layout are returned unchanged.
func FormatWatchedDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range watchedInputs {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(watchedLayout)
		}
	}
	return raw
}
