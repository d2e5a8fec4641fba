// FilePath: internal/models/models.page.go
package models

// PageRequest is a resolved pagination window. Page is the internal index:
// the first page is 0 and a query parameter page=p maps to p+1.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the number of newest records skipped before this window
func (p PageRequest) Offset() int {
	return p.Limit * p.Page
}

// PageResult is the window fetched for a PageRequest, newest record first
type PageResult struct {
	Records     []Record `json:"records"`
	TotalCount  int64    `json:"total_count"`
	HasNext     bool     `json:"has_next"`
	HasPrevious bool     `json:"has_previous"`
}

// Link labels
const (
	LinkPrevious = "Previous"
	LinkNext     = "Next"
)

// FirstPage as a NavLink target means the page parameter is omitted
const FirstPage = -1

// NavLink is a Previous/Next navigation target expressed in query-parameter terms
type NavLink struct {
	Label string `json:"label"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// Row is one rendered table row
type Row struct {
	Class string
	Cells []string
}

// Page is everything needed to render one view
type Page struct {
	View    View
	Request PageRequest
	Result  PageResult
	Rows    []Row
	Links   []NavLink
}
