// FilePath: internal/viewer/viewer.go
package viewer

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/itsatony/w4b_v3/server/beeview/internal/errors"
	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
	"github.com/itsatony/w4b_v3/server/beeview/internal/monitoring"
	"github.com/itsatony/w4b_v3/server/beeview/internal/pagination"
	"github.com/itsatony/w4b_v3/server/beeview/internal/render"
	"github.com/itsatony/w4b_v3/server/beeview/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// Viewer runs the resolve, fetch and render pipeline for one request
type Viewer struct {
	records      repository.RecordRepository
	resolver     *pagination.Resolver
	monitoring   *monitoring.Service
	queryTimeout time.Duration
}

// Options tune a Viewer; zero values keep the defaults
type Options struct {
	Pagination   pagination.Defaults
	QueryTimeout time.Duration
	Monitoring   *monitoring.Service
}

// New creates a new Viewer instance
func New(records repository.RecordRepository, opts Options) *Viewer {
	mon := opts.Monitoring
	if mon == nil {
		mon = monitoring.NewService(monitoring.Config{})
	}
	return &Viewer{
		records:      records,
		resolver:     pagination.NewResolver(opts.Pagination),
		monitoring:   mon,
		queryTimeout: opts.QueryTimeout,
	}
}

// Validate checks if the record repository is initialized
func (v *Viewer) Validate() error {
	if v.records == nil {
		return errors.NewInternalError("missing repository: records", nil)
	}
	return nil
}

// Page builds the page of view selected by the query parameters
func (v *Viewer) Page(ctx context.Context, view models.View, query url.Values) (*models.Page, error) {
	req, err := v.resolver.Resolve(query)
	if err != nil {
		v.record(monitoring.EventInvalidParameter, view, models.PageRequest{})
		return nil, err
	}

	result, err := v.fetch(ctx, view.Table, req)
	if err != nil {
		if errors.IsUnavailable(err) {
			v.record(monitoring.EventStoreUnavailable, view, req)
		} else {
			v.record(monitoring.EventQueryFailed, view, req)
		}
		return nil, err
	}

	page := &models.Page{
		View:    view,
		Request: req,
		Result:  result,
		Rows:    render.Rows(view.Columns, result.Records),
		Links:   pagination.Links(req, result.HasPrevious, result.HasNext),
	}
	v.record(monitoring.EventPageRendered, view, req)
	return page, nil
}

// fetch reads the count and the window over one scoped session
func (v *Viewer) fetch(ctx context.Context, table models.Table, req models.PageRequest) (models.PageResult, error) {
	if v.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.queryTimeout)
		defer cancel()
	}

	session, err := v.records.Open(ctx)
	if err != nil {
		return models.PageResult{}, err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			nuts.L.Warnf("[Viewer] Failed to close session for %s: %v", table, cerr)
		}
	}()

	total, err := session.Count(ctx, table)
	if err != nil {
		return models.PageResult{}, err
	}

	records, err := session.Window(ctx, table, req.Offset(), req.Limit)
	if err != nil {
		return models.PageResult{}, err
	}
	if len(records) > req.Limit {
		records = records[:req.Limit]
	}

	return pagination.Window(req, records, total), nil
}

func (v *Viewer) record(event string, view models.View, req models.PageRequest) {
	v.monitoring.RecordEvent(event, map[string]string{
		"table": string(view.Table),
		"page":  strconv.Itoa(req.Page),
		"limit": strconv.Itoa(req.Limit),
	})
}
