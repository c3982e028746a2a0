package geocode

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ProviderHealthChecker monitors reachability of the weather provider with
// periodic GETs against its root. Any HTTP response counts as reachable;
// only transport failures mark the provider down.
type ProviderHealthChecker struct {
	baseURL      string
	client       *http.Client
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewProviderHealthChecker creates a provider health checker.
func NewProviderHealthChecker(baseURL string, log zerolog.Logger, probeTimeout time.Duration) *ProviderHealthChecker {
	hc := &ProviderHealthChecker{
		baseURL:      baseURL,
		client:       &http.Client{},
		log:          log,
		probeTimeout: probeTimeout,
	}
	hc.healthy.Store(0) // start unhealthy until first successful probe
	return hc
}

// Name returns the checker name.
func (hc *ProviderHealthChecker) Name() string { return "geocode-provider" }

// IsHealthy returns the cached health status (non-blocking).
func (hc *ProviderHealthChecker) IsHealthy() bool { return hc.healthy.Load() == 1 }

// Start begins periodic health checking.
func (hc *ProviderHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if hc.probe(checkCtx) {
			hc.healthy.Store(1)
		} else {
			hc.healthy.Store(0)
		}
	}

	check()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

func (hc *ProviderHealthChecker) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, hc.baseURL, nil)
	if err != nil {
		hc.log.Error().Stack().Str("checker", hc.Name()).Err(err).Msg("provider health check failed")
		return false
	}
	resp, err := hc.client.Do(req)
	if err != nil {
		hc.log.Error().Stack().Str("checker", hc.Name()).Err(err).Msg("provider health check failed")
		return false
	}
	_ = resp.Body.Close()
	return true
}
