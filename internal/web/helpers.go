package web

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

func itoa(value int) string {
	return strconv.Itoa(value)
}

func pageURL(base string, page, perPage int) string {
	if strings.Contains(base, "?") {
		return base + "&page=" + itoa(page) + "&per_page=" + itoa(perPage)
	}
	return base + "?page=" + itoa(page) + "&per_page=" + itoa(perPage)
}

// html accumulates the first write error so page bodies read top to bottom.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *html) text(value string) {
	h.raw(templ.EscapeString(value))
}

// href writes a sanitized, escaped URL for use inside an attribute.
func (h *html) href(url string) {
	h.text(string(templ.URL(url)))
}

// paragraphs writes text as <p> blocks split on blank lines, keeping single
// line breaks.
func (h *html) paragraphs(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		h.raw("<p>")
		for i, line := range strings.Split(block, "\n") {
			if i > 0 {
				h.raw("<br/>")
			}
			h.text(line)
		}
		h.raw("</p>\n")
	}
}

func (h *html) errorText(message string) {
	if message == "" {
		return
	}
	h.raw(`<p class="error">`)
	h.text(message)
	h.raw("</p>\n")
}

func checked(ok bool) string {
	if ok {
		return " checked"
	}
	return ""
}

var prodAssetVersion = func() string {
	startedAt := time.Now().UTC().Format(time.RFC3339)
	sum := sha256.Sum256([]byte(startedAt))
	return hex.EncodeToString(sum[:8])
}()

func assetPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/static/") {
		return path
	}
	if os.Getenv("ENV") == "prod" {
		return appendAssetVersion(path, prodAssetVersion)
	}
	trimmed := strings.TrimPrefix(path, "/static/")
	fsPath := filepath.Join("static", trimmed)
	data, err := os.ReadFile(fsPath)
	if err != nil {
		return path
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:8])
	return appendAssetVersion(path, hash)
}

func appendAssetVersion(path string, hash string) string {
	if hash == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&v=" + hash
	}
	return path + "?v=" + hash
}
