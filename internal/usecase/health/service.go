package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the catalog cannot be served.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// CatalogInfo describes the active snapshot.
type CatalogInfo struct {
	Games    int
	Version  string
	LoadedAt time.Time
}

// Report aggregates health check results.
type Report struct {
	Status  Status
	Checks  map[string]CheckResult
	Catalog *CatalogInfo
}

// Service coordinates health checks.
type Service struct {
	catalogs CatalogReader
	cache    CachePinger
}

// New creates a Service. cache can be nil when no key-value store is configured.
func New(catalogs CatalogReader, cache CachePinger) *Service {
	return &Service{catalogs: catalogs, cache: cache}
}

// Check runs health checks against all components.
// A missing catalog is fatal; a failing cache only degrades the service.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	var info *CatalogInfo

	if cat := s.catalogs.Current(); cat != nil {
		checks["catalog"] = CheckOK
		info = &CatalogInfo{Games: cat.Len(), Version: cat.Version(), LoadedAt: cat.LoadedAt()}
	} else {
		checks["catalog"] = CheckError
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	status := Healthy
	switch {
	case checks["catalog"] == CheckError:
		status = Unhealthy
	case checks["cache"] == CheckError:
		status = Degraded
	}

	return Report{Status: status, Checks: checks, Catalog: info}
}
