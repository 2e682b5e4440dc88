package server

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"triviatime/internal/web"

	"github.com/gin-gonic/gin"
)

const staffUserKey = "staff_user"

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("request method=%s path=%s status=%d dur=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond))
	}
}

// requireStaff sends anonymous visitors to the login page, remembering where
// they were headed. JSON clients get a 401 instead.
func (s *Server) requireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := s.sessions.Username(c.Request)
		if username == "" {
			if strings.HasPrefix(c.ContentType(), "application/json") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			c.Redirect(http.StatusFound, "/login/?redirect_to="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Set(staffUserKey, username)
		c.Next()
	}
}

// page builds the layout data for the current visitor and consumes any
// pending flash message.
func (s *Server) page(c *gin.Context, title string) web.Page {
	return web.Page{
		Title:    title,
		Username: s.sessions.Username(c.Request),
		Flash:    s.sessions.PopFlash(c.Writer, c.Request),
	}
}

// safeRedirect only allows local paths so the login form cannot bounce
// visitors to another site.
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return "/"
	}
	return target
}
