// Package provider holds the HTTP plumbing shared by the exchange rate
// provider clients.
package provider

import (
	"net"
	"net/http"
	"time"
)

// HTTPConfig tunes the client used to reach rate providers.
type HTTPConfig struct {
	// Total timeout for one request. Zero keeps the transport defaults,
	// so only a context deadline can cut a request short.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	IdleConnTimeout time.Duration
	MaxIdleConns    int
}

// DefaultHTTPConfig mirrors the bounds of http.DefaultTransport, so no
// tighter limit applies than the standard transport's own.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		DialTimeout:     30 * time.Second,
		KeepAlive:       30 * time.Second,
		TLSHandshake:    10 * time.Second,
		IdleConnTimeout: 90 * time.Second,
		MaxIdleConns:    100,
	}
}

// NewHTTPClient builds the client shared by both providers on a clone of
// http.DefaultTransport.
func NewHTTPClient(cfg HTTPConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.DialContext = dialer.DialContext
	tr.MaxIdleConns = cfg.MaxIdleConns
	tr.IdleConnTimeout = cfg.IdleConnTimeout
	tr.TLSHandshakeTimeout = cfg.TLSHandshake

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
