package pagination_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/w4b_v3/server/beeview/internal/errors"
	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
	"github.com/itsatony/w4b_v3/server/beeview/internal/pagination"
)

func records(fromID, n int) []models.Record {
	out := make([]models.Record, n)
	for i := range out {
		out[i] = models.Record{"id": int64(fromID - i)}
	}
	return out
}

func TestResolve_Defaults(t *testing.T) {
	r := pagination.NewResolver(pagination.Defaults{})

	req, err := r.Resolve(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, models.PageRequest{Page: 0, Limit: 20}, req)
	assert.Equal(t, 0, req.Offset())
}

func TestResolve_PageIsIncremented(t *testing.T) {
	r := pagination.NewResolver(pagination.Defaults{})

	tests := []struct {
		query  string
		page   int
		limit  int
		offset int
	}{
		{"page=0", 1, 20, 20},
		{"page=1", 2, 20, 40},
		{"page=1&limit=10", 2, 10, 20},
		{"limit=5", 0, 5, 0},
		{"page=3&limit=500", 4, 500, 2000},
		{"page=0&sort=asc", 1, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			req, err := r.Resolve(values)
			require.NoError(t, err)
			assert.Equal(t, tt.page, req.Page)
			assert.Equal(t, tt.limit, req.Limit)
			assert.Equal(t, tt.offset, req.Offset())
		})
	}
}

func TestResolve_InvalidParameter(t *testing.T) {
	r := pagination.NewResolver(pagination.Defaults{Limit: 20, MaxLimit: 100})

	tests := []struct {
		query string
		field string
	}{
		{"limit=0", "limit"},
		{"limit=-5", "limit"},
		{"limit=101", "limit"},
		{"page=-1", "page"},
		{"page=abc", "page"},
		{"limit=ten", "limit"},
		{"page=", "page"},
		{"limit=1.5", "limit"},
		{"page=2&limit=", "limit"},
		{"page=9223372036854775807", "page"},
		{"page=461168601842738790", "page"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = r.Resolve(values)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.field)

			apiErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, 400, apiErr.Code)
			assert.Contains(t, apiErr.Details, tt.field)
		})
	}
}

func TestResolve_LargestPageKeepsOffsetPositive(t *testing.T) {
	r := pagination.NewResolver(pagination.Defaults{Limit: 20, MaxLimit: 100})

	// 461168601842738789 is the last page whose index times 20 fits in an int64
	req, err := r.Resolve(url.Values{"page": {"461168601842738789"}})
	require.NoError(t, err)
	assert.Equal(t, 461168601842738790, req.Page)
	assert.Positive(t, req.Offset())
}

func TestResolve_ReportsEveryBadParameter(t *testing.T) {
	r := pagination.NewResolver(pagination.Defaults{})

	_, err := r.Resolve(url.Values{"page": {"-3"}, "limit": {"0"}})
	require.Error(t, err)

	apiErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "invalid parameter: limit must be a positive integer, page must be a non-negative integer", apiErr.Message)
}

func TestWindow_FirstOfThreePages(t *testing.T) {
	req := models.PageRequest{Page: 0, Limit: 20}
	result := pagination.Window(req, records(45, 20), 45)

	assert.Len(t, result.Records, 20)
	assert.True(t, result.HasNext)
	assert.False(t, result.HasPrevious)
	assert.Equal(t, []models.NavLink{{Label: "Next", Page: 0, Limit: 20}},
		pagination.Links(req, result.HasPrevious, result.HasNext))
}

func TestWindow_LastPartialPage(t *testing.T) {
	req := models.PageRequest{Page: 2, Limit: 20}
	result := pagination.Window(req, records(5, 5), 45)

	assert.Equal(t, 40, req.Offset())
	assert.False(t, result.HasNext)
	assert.True(t, result.HasPrevious)
	assert.Equal(t, []models.NavLink{{Label: "Previous", Page: 0, Limit: 20}},
		pagination.Links(req, result.HasPrevious, result.HasNext))
}

func TestWindow_MiddlePage(t *testing.T) {
	req := models.PageRequest{Page: 1, Limit: 20}
	result := pagination.Window(req, records(25, 20), 45)

	assert.True(t, result.HasNext)
	assert.True(t, result.HasPrevious)
	assert.Equal(t, []models.NavLink{
		{Label: "Previous", Page: models.FirstPage, Limit: 20},
		{Label: "Next", Page: 1, Limit: 20},
	}, pagination.Links(req, result.HasPrevious, result.HasNext))
}

func TestWindow_ExactlyFullLastPage(t *testing.T) {
	req := models.PageRequest{Page: 1, Limit: 20}
	result := pagination.Window(req, records(20, 20), 40)

	assert.False(t, result.HasNext)
	assert.True(t, result.HasPrevious)
}

func TestWindow_EmptyTable(t *testing.T) {
	req := models.PageRequest{Page: 0, Limit: 20}
	result := pagination.Window(req, nil, 0)

	assert.Empty(t, result.Records)
	assert.False(t, result.HasNext)
	assert.False(t, result.HasPrevious)
	assert.Empty(t, pagination.Links(req, result.HasPrevious, result.HasNext))
}

func TestWindow_PastTheEnd(t *testing.T) {
	req := models.PageRequest{Page: 7, Limit: 20}
	result := pagination.Window(req, nil, 45)

	assert.False(t, result.HasNext)
	assert.True(t, result.HasPrevious)
	assert.Equal(t, []models.NavLink{{Label: "Previous", Page: 5, Limit: 20}},
		pagination.Links(req, result.HasPrevious, result.HasNext))
}

// Following each link must land on the neighbouring window.
func TestLinks_RoundTripThroughResolver(t *testing.T) {
	r := pagination.NewResolver(pagination.Defaults{})

	for page := 0; page < 6; page++ {
		req := models.PageRequest{Page: page, Limit: 20}
		for _, link := range pagination.Links(req, page > 0, true) {
			href := pagination.Href("/dht22", link)
			u, err := url.Parse(href)
			require.NoError(t, err)

			next, err := r.Resolve(u.Query())
			require.NoError(t, err, href)

			switch link.Label {
			case models.LinkPrevious:
				assert.Equal(t, page-1, next.Page, href)
			case models.LinkNext:
				assert.Equal(t, page+1, next.Page, href)
			}
		}
	}
}

func TestHref(t *testing.T) {
	assert.Equal(t, "/beestation?limit=20&page=3",
		pagination.Href("/beestation", models.NavLink{Label: "Next", Page: 3, Limit: 20}))
	assert.Equal(t, "/beestation?limit=10",
		pagination.Href("/beestation", models.NavLink{Label: "Previous", Page: models.FirstPage, Limit: 10}))
}
