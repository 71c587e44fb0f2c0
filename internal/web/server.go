package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir-2003/portfolio/internal/content"
	"github.com/mahir-2003/portfolio/internal/letterboxd"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// FeedLoader runs one fetch of the viewing feed.
type FeedLoader interface {
	Load(ctx context.Context) letterboxd.Status
}

type Deps struct {
	Site       *content.Site
	Feed       FeedLoader
	ProfileURL string
	ImagesDir  string
}

type server struct {
	site       *content.Site
	feed       FeedLoader
	profileURL string
}

// NewRouter wires the page, the feed fragment and the asset routes.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Site == nil || d.Feed == nil {
		return nil, fmt.Errorf("web: site and feed are required")
	}
	tpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s := &server{site: d.Site, feed: d.Feed, profileURL: d.ProfileURL}

	r := gin.New()
	r.Use(requestID(), accessLog(), gin.Recovery())
	r.SetHTMLTemplate(tpl)

	r.StaticFS("/static", http.FS(static))
	if d.ImagesDir != "" {
		r.Static("/images", d.ImagesDir)
	}

	r.GET("/", s.home)
	r.GET("/feed", s.feedFragment)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r, nil
}
