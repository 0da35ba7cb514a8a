package uaccount

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_Post(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Contains(t, r.Header.Get("User-Agent"), "uaccount-go/")

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "CreateProject", r.PostForm.Get("Action"))
		assert.Equal(t, "test", r.PostForm.Get("ProjectName"))
		assert.Empty(t, r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"RetCode": 0, "ProjectId": "abc"}`)
	}))
	defer mockServer.Close()

	transport := NewTransport(mockServer.URL, mockServer.Client(), hclog.NewNullLogger())

	resp, err := transport.Post(context.Background(), NewParams(
		Param{Key: "Action", Value: "CreateProject"},
		Param{Key: "ProjectName", Value: "test"},
	))
	require.NoError(t, err)
	assert.Equal(t, "abc", resp["ProjectId"])
}

func TestTransport_Get(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "GetProjectList", r.URL.Query().Get("Action"))
		assert.Equal(t, "pub", r.URL.Query().Get("PublicKey"))

		io.WriteString(w, `{"RetCode": 0, "ProjectCount": 0, "ProjectSet": []}`)
	}))
	defer mockServer.Close()

	transport := NewTransport(mockServer.URL, nil, nil)

	resp, err := transport.Get(context.Background(), NewParams(
		Param{Key: "Action", Value: "GetProjectList"},
		Param{Key: "PublicKey", Value: "pub"},
	))
	require.NoError(t, err)

	code, ok := resp.RetCode()
	assert.True(t, ok)
	assert.Equal(t, 0, code)
}

func TestTransport_Classification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{name: "500", status: http.StatusInternalServerError, body: "oops", wantKind: KindServer},
		{name: "404", status: http.StatusNotFound, body: "missing", wantKind: KindServer},
		{name: "not json", status: http.StatusOK, body: "not-json", wantKind: KindClient},
		{name: "retcode", status: http.StatusOK, body: `{"RetCode": 1, "Message": "invalid project"}`, wantKind: KindAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer mockServer.Close()

			transport := NewTransport(mockServer.URL, mockServer.Client(), hclog.NewNullLogger())

			_, err := transport.Post(context.Background(), NewParams(Param{Key: "Action", Value: "Test"}))
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestTransport_ServerErrorPreservesBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "upstream exploded")
	}))
	defer mockServer.Close()

	transport := NewTransport(mockServer.URL, mockServer.Client(), nil)

	_, err := transport.Post(context.Background(), NewParams(Param{Key: "Action", Value: "Test"}))

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	assert.Equal(t, "upstream exploded", serverErr.Body)
}

func TestTransport_Timeout(t *testing.T) {
	release := make(chan struct{})
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer mockServer.Close()
	defer close(release)

	client := &http.Client{Timeout: 50 * time.Millisecond}
	transport := NewTransport(mockServer.URL, client, hclog.NewNullLogger())

	_, err := transport.Post(context.Background(), NewParams(Param{Key: "Action", Value: "Test"}))
	require.Error(t, err)
	assert.Equal(t, KindServer, KindOf(err))

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, 0, serverErr.StatusCode)
	assert.Error(t, serverErr.Err)
}

func TestTransport_ContextCancelled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"RetCode": 0}`)
	}))
	defer mockServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transport := NewTransport(mockServer.URL, mockServer.Client(), nil)

	_, err := transport.Post(ctx, NewParams(Param{Key: "Action", Value: "Test"}))
	require.Error(t, err)
	assert.Equal(t, KindServer, KindOf(err))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTransport_ConnectionRefused(t *testing.T) {
	mockServer := httptest.NewServer(http.NotFoundHandler())
	url := mockServer.URL
	mockServer.Close()

	transport := NewTransport(url, nil, nil)

	_, err := transport.Post(context.Background(), NewParams(Param{Key: "Action", Value: "Test"}))
	require.Error(t, err)
	assert.Equal(t, KindServer, KindOf(err))
}

func TestTransport_InvalidBaseURL(t *testing.T) {
	transport := NewTransport("://missing-scheme", nil, nil)
	params := NewParams(Param{Key: "Action", Value: "Test"})

	_, err := transport.Post(context.Background(), params)
	require.Error(t, err)
	assert.Equal(t, KindClient, KindOf(err))

	_, err = transport.Get(context.Background(), params)
	require.Error(t, err)
	assert.Equal(t, KindClient, KindOf(err))
}

func TestTransport_ResponseSizeLimit(t *testing.T) {
	previous := maxResponseBytes
	maxResponseBytes = 64
	t.Cleanup(func() { maxResponseBytes = previous })

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "oversized success body",
			status:     http.StatusOK,
			body:       `{"RetCode": 0, "Padding": "` + strings.Repeat("x", 100) + `"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "oversized error body is truncated",
			status:     http.StatusBadGateway,
			body:       strings.Repeat("e", 100),
			wantStatus: http.StatusBadGateway,
			wantBody:   strings.Repeat("e", 64),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer mockServer.Close()

			transport := NewTransport(mockServer.URL, mockServer.Client(), nil)

			_, err := transport.Post(context.Background(), NewParams(Param{Key: "Action", Value: "Test"}))
			require.Error(t, err)
			assert.Equal(t, KindServer, KindOf(err))

			var serverErr *ServerError
			require.True(t, errors.As(err, &serverErr))
			assert.Equal(t, tt.wantStatus, serverErr.StatusCode)
			assert.Equal(t, tt.wantBody, serverErr.Body)
		})
	}
}
