package server

import (
	"strconv"
	"strings"

	"triviatime/internal/web"

	"github.com/gin-gonic/gin"
)

// pageParams reads ?page= and ?per_page=. Missing or bad values fall back to
// the first page and the default size; per_page is capped at limit.
func pageParams(c *gin.Context, perPage, limit int) (int, int) {
	page := positiveQuery(c, "page", 1)
	perPage = positiveQuery(c, "per_page", perPage)
	if limit > 0 {
		perPage = min(perPage, limit)
	}
	return page, perPage
}

func positiveQuery(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// paginate returns one page of items and the pager links for it. Pages past
// the end clamp to the last page.
func paginate[T any](items []T, basePath string, page, perPage int) ([]T, web.PaginationData) {
	perPage = max(perPage, 1)
	totalPages := max((len(items)+perPage-1)/perPage, 1)
	page = min(max(page, 1), totalPages)

	data := web.PaginationData{
		BasePath:   basePath,
		Page:       page,
		PerPage:    perPage,
		Total:      len(items),
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if data.HasPrev {
		data.PrevPage = page - 1
	}
	if data.HasNext {
		data.NextPage = page + 1
	}
	start := (page - 1) * perPage
	return items[start:min(start+perPage, len(items))], data
}
