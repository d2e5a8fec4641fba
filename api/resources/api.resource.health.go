package resources

import (
	"context"
	"net/http"
	"time"

	"github.com/itsatony/w4b_v3/server/beeview/docs"
	"github.com/itsatony/w4b_v3/server/beeview/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/swaggo/swag"
	nuts "github.com/vaudience/go-nuts"
)

const healthTimeout = 2 * time.Second

// HealthHandlers reports service and dependency status
type HealthHandlers struct {
	records repository.RecordRepository
	redis   *redis.Client
}

// HealthStatus is the health check payload
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// @Summary Health check
// @Description Pings the record store and, when configured, redis
// @Tags health
// @Produce json
// @Success 200 {object} resources.HealthStatus
// @Failure 503 {object} resources.HealthStatus
// @Router /v1/health [get]
func (h *HealthHandlers) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status := HealthStatus{Status: "ok", Version: nuts.GetVersion(), Database: "ok", Redis: "disabled"}
	code := http.StatusOK

	if err := h.records.Ping(ctx); err != nil {
		nuts.L.Warnf("[Health] Database ping failed: %v", err)
		status.Status = "unavailable"
		status.Database = "unavailable"
		code = http.StatusServiceUnavailable
	}

	if h.redis != nil {
		status.Redis = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			// degraded, not down: the rate limiter lets requests through without redis
			nuts.L.Warnf("[Health] Redis ping failed: %v", err)
			status.Redis = "unavailable"
			if code == http.StatusOK {
				status.Status = "degraded"
			}
		}
	}

	respondWithJSON(w, code, status)
}

// DocsHandlers serves the registered OpenAPI document
type DocsHandlers struct{}

func (h *DocsHandlers) Swagger(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		respondWithJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
