package monitoring

import (
	"sort"
	"strings"
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// Event names
const (
	EventPageRendered     = "page_rendered"
	EventInvalidParameter = "invalid_parameter"
	EventStoreUnavailable = "store_unavailable"
	EventQueryFailed      = "query_failed"
	EventRateLimited      = "rate_limited"
)

// Config holds monitoring configuration
type Config struct {
	LogLevel string
}

// Service records viewer events to the log and keeps per-event counters
type Service struct {
	config Config
	mu     sync.Mutex
	counts map[string]int64
}

// NewService creates a new monitoring service
func NewService(config Config) *Service {
	return &Service{
		config: config,
		counts: make(map[string]int64),
	}
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	s.mu.Lock()
	s.counts[eventName]++
	s.mu.Unlock()

	if s.config.LogLevel == "debug" || eventName != EventPageRendered {
		nuts.L.Infof("[Monitoring] Event %s at %s %s", eventName, time.Now().Format(time.RFC3339), formatLabels(labels))
	}
}

// Counts returns a snapshot of how often each event was recorded
func (s *Service) Counts() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

func formatLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + labels[k]
	}
	return strings.Join(parts, " ")
}
