package host

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// HTTPHealthProbe performs GET health checks. Any 2xx response counts as
// healthy; transport errors surface to the caller, who degrades them to
// "unhealthy" rather than escalating.
type HTTPHealthProbe struct {
	Client *http.Client
}

// NewHTTPHealthProbe creates a probe with optional proxy support. The
// per-call timeout comes from the caller's context, not the client.
func NewHTTPHealthProbe(proxyURL string) *HTTPHealthProbe {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPHealthProbe{Client: &http.Client{Transport: transport}}
}

// Check probes the URL.
func (p *HTTPHealthProbe) Check(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, fmt.Errorf("build health request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("health probe %s: %w", target, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
