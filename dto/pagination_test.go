package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pageContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return ctx
}

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PageRequest
	}{
		{
			name:  "defaults",
			query: "",
			want:  PageRequest{Page: 0, Size: 20, SortBy: "name", SortDirection: "asc"},
		},
		{
			name:  "explicit values",
			query: "page=2&size=50&sortBy=createdAt&sortDirection=desc",
			want:  PageRequest{Page: 2, Size: 50, SortBy: "createdAt", SortDirection: "desc"},
		},
		{
			name:  "size capped",
			query: "size=500",
			want:  PageRequest{Page: 0, Size: 100, SortBy: "name", SortDirection: "asc"},
		},
		{
			name:  "garbage falls back to defaults",
			query: "page=-3&size=zero&sortDirection=sideways",
			want:  PageRequest{Page: 0, Size: 20, SortBy: "name", SortDirection: "asc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePageRequest(pageContext(t, tt.query), "name", "asc")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageRequestOrder(t *testing.T) {
	columns := map[string]string{"name": "name", "createdAt": "created_at"}

	req := PageRequest{SortBy: "createdAt", SortDirection: "desc"}
	assert.Equal(t, "created_at DESC", req.Order(columns, "name"))

	// Unknown sort keys cannot reach the query.
	req = PageRequest{SortBy: "password; DROP TABLE users", SortDirection: "asc"}
	assert.Equal(t, "name ASC", req.Order(columns, "name"))
}

func TestNewPageResponse(t *testing.T) {
	req := PageRequest{Page: 1, Size: 10}
	page := NewPageResponse([]string{"a"}, req, 25)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, int64(25), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)

	empty := NewPageResponse([]string{}, req, 0)
	assert.Equal(t, 0, empty.TotalPages)
}
