package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir-2003/portfolio/internal/content"
	"github.com/mahir-2003/portfolio/internal/letterboxd"
)

func (s *server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":     s.site.Profile,
		"skillsLeft":  s.site.SkillsBySide(content.SideLeft),
		"skillsRight": s.site.SkillsBySide(content.SideRight),
		"jobs":        s.site.Jobs,
		"feed":        s.feedView(letterboxd.StatusLoading()),
	})
}

// feedFragment answers the widget's load, refresh and retry requests. Errors
// are rendered as a panel with a 200 so HTMX swaps them in.
func (s *server) feedFragment(c *gin.Context) {
	st := s.feed.Load(c.Request.Context())
	log.Printf("Feed fragment %s: %d movies [%s]", st.State, len(st.Viewings), c.GetString(requestIDKey))
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "feed.html", s.feedView(st))
}

func (s *server) feedView(st letterboxd.Status) gin.H {
	return gin.H{
		"status":     st,
		"profileURL": s.profileURL,
	}
}
