// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for portal requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-side
	// timeout beyond the transport default, which is what the portal
	// assumes unless configured otherwise.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with portal requests
	// (e.g. "hrdocs/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PortalConfig holds settings for the portal API client.
type PortalConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the portal API base URL. The documented default is ""
	// (same-origin: the client is expected to sit behind the portal's
	// reverse proxy or a local port-forward).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// LinkBase is the page URL shareable links are built on. When empty,
	// BaseURL is used.
	LinkBase string `json:"link_base,omitempty" yaml:"link_base,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited or
	// temporarily unavailable responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// BrowseConfig holds settings for the interactive browse session.
type BrowseConfig struct {
	// PageSize is the maximum number of rows rendered per list (default 20).
	PageSize int `json:"page_size" yaml:"page_size"`

	// MetricsAddr, when non-empty, serves Prometheus metrics for the
	// session on that address (e.g. ":9188").
	MetricsAddr string `json:"metrics_addr,omitempty" yaml:"metrics_addr,omitempty"`
}

// AppConfig groups all configuration for the hrdocs CLI.
type AppConfig struct {
	Portal PortalConfig `json:"portal" yaml:"portal"`
	Browse BrowseConfig `json:"browse" yaml:"browse"`
}
