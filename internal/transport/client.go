package transport

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dustin/magento-config/config"
)

const keepAlive = 30 * time.Second

// NewHTTPClient builds the HTTP client the Magento API calls go through.
// The request timeout bounds the whole exchange, the connect timeout bounds
// dialing and the TLS handshake.
func NewHTTPClient(cfg config.MagentoConfig) *http.Client {
	connectTimeout := cfg.ConnectTimeoutDuration()

	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: keepAlive,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = connectTimeout

	return &http.Client{
		Timeout:   cfg.RequestTimeout(),
		Transport: transport,
	}
}

// Probe sends an unauthenticated GET to the base URI. Any HTTP answer below
// 500, including 401 or 404, counts as reachable.
func Probe(ctx context.Context, cfg config.MagentoConfig) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURI(), nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}

	resp, err := NewHTTPClient(cfg).Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach magento: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("magento answered with status %d", resp.StatusCode)
	}
	return nil
}
