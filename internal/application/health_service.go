package application

import (
	"context"

	"github.com/alorle/nexum-portal/internal/port/driven"
)

// HealthService orchestrates health checks for the application and its dependencies.
type HealthService struct {
	feed driven.FeedSource
}

// NewHealthService creates a new health check service.
func NewHealthService(feed driven.FeedSource) *HealthService {
	return &HealthService{feed: feed}
}

// ComponentHealth represents the health status of a single component.
type ComponentHealth struct {
	Status string // "ok" or "error"
	Error  string // empty if status is "ok", otherwise contains error message
}

// HealthStatus represents the overall health status of the application.
type HealthStatus struct {
	Status string          // "ok" if all components are healthy, "degraded" otherwise
	Feed   ComponentHealth // news feed origin
}

// Check performs health checks on all dependencies.
// The news endpoint keeps serving fallback content while the feed is down, so
// an unreachable feed degrades the service rather than failing it.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Status: "ok"}

	if err := s.feed.Ping(ctx); err != nil {
		status.Feed = ComponentHealth{
			Status: "error",
			Error:  err.Error(),
		}
		status.Status = "degraded"
	} else {
		status.Feed = ComponentHealth{Status: "ok"}
	}

	return status
}
