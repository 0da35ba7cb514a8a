package uaccount

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// Client signs and dispatches UAccount actions. It is safe for concurrent use.
type Client struct {
	credentials *Credentials
	transport   *Transport
	logger      hclog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	logger     hclog.Logger
	httpClient *http.Client
}

// WithLogger sets the logger. Default: hclog.NewNullLogger().
func WithLogger(logger hclog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the HTTP client built from Config.NewHTTPClient.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// NewClient validates the key pair and the config and creates a client.
// A bad key pair is reported as *InvalidCredentialsError.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	credentials, err := NewCredentials(cfg.PublicKey, cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	resolved := *cfg
	cfg = &resolved
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid UAccount client config: %w", err)
	}

	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = hclog.NewNullLogger()
	}
	if o.httpClient == nil {
		o.httpClient = cfg.NewHTTPClient()
	}

	logger := o.logger.Named("uaccount")
	return &Client{
		credentials: credentials,
		transport:   NewTransport(cfg.BaseURL, o.httpClient, logger),
		logger:      logger,
	}, nil
}

// PublicKey returns the public key sent with every request.
func (c *Client) PublicKey() string {
	return c.credentials.PublicKey()
}

// Do signs and POSTs an action. It is the builder every operation uses and
// is exported for actions without a dedicated method.
func (c *Client) Do(ctx context.Context, action string, params Params) (Response, error) {
	return c.transport.Post(ctx, c.signedPayload(action, params))
}

// DoGet is Do sent as a GET with query parameters.
func (c *Client) DoGet(ctx context.Context, action string, params Params) (Response, error) {
	return c.transport.Get(ctx, c.signedPayload(action, params))
}

// signedPayload assembles Action, the caller's params and PublicKey, signs
// exactly that set and appends Signature.
func (c *Client) signedPayload(action string, params Params) Params {
	payload := make(Params, 0, len(params)+3)
	payload.Set("Action", action)
	for _, p := range params {
		payload.Set(p.Key, p.Value)
	}
	payload.Del("Signature")
	payload.Set("Action", action)
	payload.Set("PublicKey", c.credentials.PublicKey())

	payload.Set("Signature", c.credentials.Signature(payload))
	return payload
}
