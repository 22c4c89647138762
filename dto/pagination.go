package dto

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest carries caller-supplied paging and sorting. Pages are 0-based.
type PageRequest struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

// ParsePageRequest reads page, size, sortBy and sortDirection query params,
// applying the given defaults.
func ParsePageRequest(ctx *gin.Context, defaultSortBy, defaultDirection string) PageRequest {
	req := PageRequest{
		Page:          0,
		Size:          defaultPageSize,
		SortBy:        defaultSortBy,
		SortDirection: defaultDirection,
	}

	if v, err := strconv.Atoi(ctx.DefaultQuery("page", "0")); err == nil && v >= 0 {
		req.Page = v
	}
	if v, err := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(defaultPageSize))); err == nil && v > 0 {
		req.Size = v
	}
	if req.Size > maxPageSize {
		req.Size = maxPageSize
	}
	if v := ctx.Query("sortBy"); v != "" {
		req.SortBy = v
	}
	if v := strings.ToLower(ctx.Query("sortDirection")); v == "asc" || v == "desc" {
		req.SortDirection = v
	}
	return req
}

// Offset returns the row offset for the requested page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Order builds an ORDER BY clause from the sortable-column whitelist.
// Unknown sort fields fall back to the first whitelist entry for the default
// sort key, keeping arbitrary column injection out of the query.
func (p PageRequest) Order(columns map[string]string, fallback string) string {
	column, ok := columns[p.SortBy]
	if !ok {
		column = fallback
	}
	direction := "ASC"
	if strings.EqualFold(p.SortDirection, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

// PageResponse is the envelope returned by every list endpoint.
type PageResponse struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalItems int64       `json:"totalItems"`
	TotalPages int         `json:"totalPages"`
}

// NewPageResponse assembles the page envelope from a result slice and total
// row count.
func NewPageResponse(items interface{}, req PageRequest, total int64) PageResponse {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return PageResponse{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
