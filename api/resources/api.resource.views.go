package resources

import (
	"net/http"

	"github.com/itsatony/w4b_v3/server/beeview/internal/errors"
	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
	"github.com/itsatony/w4b_v3/server/beeview/internal/viewer"
	nuts "github.com/vaudience/go-nuts"
)

// ViewHandlers serves the paginated log tables
type ViewHandlers struct {
	viewer *viewer.Viewer
}

// @Summary Temperature/humidity log
// @Description Paginated HTML table of dht22 readings, newest first
// @Tags views
// @Produce html
// @Param page query int false "Page parameter; omit for the newest records"
// @Param limit query int false "Records per page (default 20)"
// @Success 200 {string} string "HTML document"
// @Failure 400 {string} string "Invalid parameter"
// @Failure 500 {string} string "Query failed"
// @Failure 503 {string} string "Record store unavailable"
// @Router /dht22 [get]
func (h *ViewHandlers) Readings(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, models.ReadingsView)
}

// @Summary Beestation status log
// @Description Paginated HTML table of beestation status messages, newest first
// @Tags views
// @Produce html
// @Param page query int false "Page parameter; omit for the newest records"
// @Param limit query int false "Records per page (default 20)"
// @Success 200 {string} string "HTML document"
// @Failure 400 {string} string "Invalid parameter"
// @Failure 500 {string} string "Query failed"
// @Failure 503 {string} string "Record store unavailable"
// @Router /beestation [get]
func (h *ViewHandlers) Status(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, models.StatusView)
}

func (h *ViewHandlers) serve(w http.ResponseWriter, r *http.Request, view models.View) {
	requestID := nuts.NID("req", 12)

	page, err := h.viewer.Page(r.Context(), view, r.URL.Query())
	if err != nil {
		respondWithError(w, view.Title, errors.Wrap(err, "failed to render page").WithRequestID(requestID))
		return
	}

	respondWithHTML(w, view.Title, page)
}

// Index redirects to the readings log
func (h *ViewHandlers) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, models.ReadingsView.Path, http.StatusFound)
}
