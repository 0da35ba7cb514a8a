package uaccount

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/ucloud-forge/uaccount/internal/version"
)

// maxResponseBytes caps how much of a response body is read.
var maxResponseBytes int64 = 10 << 20

// Transport sends parameter sets to a single API endpoint and classifies the
// responses with CheckResponse. It holds no per-call state.
type Transport struct {
	baseURL string
	client  *http.Client
	logger  hclog.Logger
}

// NewTransport creates a Transport. A nil client uses a 60 second timeout;
// a nil logger discards output.
func NewTransport(baseURL string, client *http.Client, logger hclog.Logger) *Transport {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Transport{
		baseURL: baseURL,
		client:  client,
		logger:  logger.Named("transport"),
	}
}

// Post sends params as a form-encoded POST body.
func (t *Transport) Post(ctx context.Context, params Params) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL,
		strings.NewReader(params.Values().Encode()))
	if err != nil {
		return nil, &ClientError{Message: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return t.do(req, params)
}

// Get sends params in the query string.
func (t *Transport) Get(ctx context.Context, params Params) (Response, error) {
	u, err := url.Parse(t.baseURL)
	if err != nil {
		return nil, &ClientError{Message: "invalid base URL", Err: err}
	}
	u.RawQuery = params.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &ClientError{Message: "failed to create request", Err: err}
	}

	return t.do(req, params)
}

func (t *Transport) do(req *http.Request, params Params) (Response, error) {
	requestID := uuid.NewString()
	action, _ := params.Get("Action")

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "uaccount-go/"+version.Version)
	req.Header.Set("X-Request-Id", requestID)

	logger := t.logger.With(
		"action", action,
		"method", req.Method,
		"request_id", requestID,
	)
	logger.Debug("sending request", "url", t.baseURL)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		logger.Error("request failed", "error", err)
		return nil, &ServerError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err == nil && int64(len(body)) > maxResponseBytes {
		body = body[:maxResponseBytes]
		if resp.StatusCode == http.StatusOK {
			err = fmt.Errorf("body exceeds %d bytes", maxResponseBytes)
		}
	}
	if err != nil {
		logger.Error("failed to read response", "status", resp.StatusCode, "error", err)
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response: %w", err),
		}
	}

	result, err := CheckResponse(resp.StatusCode, body)
	if err != nil {
		logger.Warn("request rejected",
			"status", resp.StatusCode,
			"kind", KindOf(err).String(),
			"error", err,
		)
		return nil, err
	}

	logger.Debug("request completed",
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
