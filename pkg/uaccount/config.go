package uaccount

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
)

const (
	// DefaultBaseURL is the public UCloud API endpoint.
	DefaultBaseURL = "https://api.ucloud.cn"

	// DefaultTimeout bounds a whole request, including reading the body.
	DefaultTimeout = 60 * time.Second
)

// Config contains configuration for the UAccount client.
//
// Example configuration (HCL, see internal/config):
//
//	uaccount {
//	  base_url    = "https://api.ucloud.cn"
//	  public_key  = env("UCLOUD_PUBLIC_KEY")
//	  private_key = env("UCLOUD_PRIVATE_KEY")
//	  timeout     = "60s"
//	}
type Config struct {
	// BaseURL is the API endpoint every request is sent to
	BaseURL string `json:"baseUrl"`

	// PublicKey identifies the caller
	PublicKey string `json:"publicKey"`

	// PrivateKey signs requests and is never sent
	PrivateKey string `json:"-"`

	// TLSVerify controls TLS certificate verification
	// Set to false only for development/testing with self-signed certs
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for API requests
	// Default: 60 seconds
	Timeout time.Duration `json:"timeout,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:   DefaultBaseURL,
		TLSVerify: &tlsVerify,
		Timeout:   DefaultTimeout,
	}
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
}

// Validate checks the endpoint and timeout. Keys are validated by NewCredentials.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.BaseURL == "" {
		result = multierror.Append(result, fmt.Errorf("base_url is required"))
	} else {
		parsedURL, err := url.Parse(c.BaseURL)
		switch {
		case err != nil:
			result = multierror.Append(result, fmt.Errorf("invalid base_url: %w", err))
		case parsedURL.Scheme != "http" && parsedURL.Scheme != "https":
			result = multierror.Append(result,
				fmt.Errorf("base_url must use http or https scheme, got: %q", parsedURL.Scheme))
		case parsedURL.Host == "":
			result = multierror.Append(result, fmt.Errorf("base_url must include a host"))
		}
	}

	if c.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be positive, got: %v", c.Timeout))
	}

	return result.ErrorOrNil()
}

// NewHTTPClient creates a configured HTTP client for this config
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
