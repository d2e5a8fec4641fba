// FilePath: api/resources/resources.go
package resources

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/itsatony/w4b_v3/server/beeview/internal/errors"
	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
	"github.com/itsatony/w4b_v3/server/beeview/internal/render"
	"github.com/itsatony/w4b_v3/server/beeview/internal/repository"
	"github.com/itsatony/w4b_v3/server/beeview/internal/viewer"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Views  *ViewHandlers
	Health *HealthHandlers
	Docs   *DocsHandlers
}

// NewResources creates a new Resources instance. rdb may be nil.
func NewResources(v *viewer.Viewer, records repository.RecordRepository, rdb *redis.Client) *Resources {
	return &Resources{
		Views:  &ViewHandlers{viewer: v},
		Health: &HealthHandlers{records: records, redis: rdb},
		Docs:   &DocsHandlers{},
	}
}

// Helper functions

func respondWithHTML(w http.ResponseWriter, title string, page *models.Page) {
	var buf bytes.Buffer
	if err := render.HTML(&buf, page); err != nil {
		respondWithError(w, title, errors.NewInternalError("failed to render page", err).WithRequestID(nuts.NID("req", 12)))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func respondWithError(w http.ResponseWriter, title string, err *errors.APIError) {
	WriteErrorPage(w, title, err)
	nuts.L.Errorf("[API] %s (request %s)", err.Error(), err.RequestID)
}

// WriteErrorPage writes err as an HTML diagnostic document
func WriteErrorPage(w http.ResponseWriter, title string, err *errors.APIError) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Request-Id", err.RequestID)
	w.WriteHeader(err.Code)
	render.ErrorHTML(w, title, err.Code, err.Message, err.RequestID)
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
