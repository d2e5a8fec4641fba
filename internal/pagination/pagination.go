// Package pagination turns untrusted page/limit query parameters into a
// PageRequest and derives Previous/Next links for a fetched window.
//
// The query parameter page is one less than the internal page index: a
// request without page shows the newest window (index 0), page=0 shows the
// second window (index 1), and so on. Links are expressed in the same
// query-parameter terms, so following "Next" from index i sends page=i.
package pagination

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/itsatony/w4b_v3/server/beeview/internal/errors"
	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
)

const (
	DefaultLimit = 20
	MaxLimit     = 500
)

// Defaults bounds the limit parameter
type Defaults struct {
	Limit    int
	MaxLimit int
}

// query mirrors the accepted query parameters
type query struct {
	Page  int `schema:"page"`
	Limit int `schema:"limit"`
}

// Resolver parses query parameters into page requests
type Resolver struct {
	defaults Defaults
	decoder  *schema.Decoder
}

// NewResolver creates a resolver; zero values in d fall back to the package defaults
func NewResolver(d Defaults) *Resolver {
	if d.Limit <= 0 {
		d.Limit = DefaultLimit
	}
	if d.MaxLimit <= 0 {
		d.MaxLimit = MaxLimit
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(0, strictInt)

	return &Resolver{defaults: d, decoder: decoder}
}

// strictInt accepts only base-10 integers. Anything else, the empty string
// included, yields an invalid value which schema reports as a ConversionError.
func strictInt(s string) reflect.Value {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(n)
}

// Resolve produces the PageRequest for raw query parameters
func (r *Resolver) Resolve(values url.Values) (models.PageRequest, error) {
	q := query{Limit: r.defaults.Limit}
	if err := r.decoder.Decode(&q, values); err != nil {
		return models.PageRequest{}, invalidParameter(err)
	}

	problems := map[string]string{}
	if q.Limit <= 0 {
		problems["limit"] = "must be a positive integer"
	} else if q.Limit > r.defaults.MaxLimit {
		problems["limit"] = fmt.Sprintf("must not exceed %d", r.defaults.MaxLimit)
	}
	if q.Page < 0 {
		problems["page"] = "must be a non-negative integer"
	} else if q.Limit > 0 && q.Page >= math.MaxInt/q.Limit {
		// internal index page+1 times limit must fit in an int
		problems["page"] = "out of range"
	}
	if len(problems) > 0 {
		return models.PageRequest{}, errors.NewValidationError(describe(problems), nil).WithDetails(problems)
	}

	req := models.PageRequest{Page: 0, Limit: q.Limit}
	if _, ok := values["page"]; ok {
		req.Page = q.Page + 1
	}
	return req, nil
}

func invalidParameter(err error) *errors.APIError {
	problems := map[string]string{}
	if multi, ok := err.(schema.MultiError); ok {
		for key := range multi {
			problems[key] = "must be an integer"
		}
	}
	if len(problems) == 0 {
		return errors.NewValidationError("invalid query parameters", err)
	}
	return errors.NewValidationError(describe(problems), err).WithDetails(problems)
}

func describe(problems map[string]string) string {
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %s", k, problems[k])
	}
	return "invalid parameter: " + strings.Join(parts, ", ")
}

// Window fills in HasPrevious and HasNext for a fetched window
func Window(req models.PageRequest, records []models.Record, total int64) models.PageResult {
	remaining := total - int64(req.Offset()) - int64(len(records))
	return models.PageResult{
		Records:     records,
		TotalCount:  total,
		HasPrevious: req.Page > 0,
		HasNext:     remaining > 0,
	}
}

// Links returns the navigation links for a window at req
func Links(req models.PageRequest, hasPrevious, hasNext bool) []models.NavLink {
	links := []models.NavLink{}
	if hasPrevious {
		links = append(links, models.NavLink{Label: models.LinkPrevious, Page: previousTarget(req.Page), Limit: req.Limit})
	}
	if hasNext {
		links = append(links, models.NavLink{Label: models.LinkNext, Page: req.Page, Limit: req.Limit})
	}
	return links
}

// previousTarget maps internal index i to the page parameter that resolves to
// i-1. Index 1 has no such parameter, so it links to the bare first page.
func previousTarget(page int) int {
	target := page - 2
	if target < 0 {
		return models.FirstPage
	}
	return target
}

// Href renders link as a relative URL on basePath
func Href(basePath string, link models.NavLink) string {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(link.Limit))
	if link.Page != models.FirstPage {
		values.Set("page", strconv.Itoa(link.Page))
	}
	return basePath + "?" + values.Encode()
}
