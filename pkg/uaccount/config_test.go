package uaccount

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errorMsgs []string
	}{
		{
			name:   "Valid config",
			config: DefaultConfig(),
		},
		{
			name:      "Missing base URL",
			config:    &Config{Timeout: time.Second},
			wantError: true,
			errorMsgs: []string{"base_url"},
		},
		{
			name:      "Invalid URL scheme",
			config:    &Config{BaseURL: "ftp://api.ucloud.cn", Timeout: time.Second},
			wantError: true,
			errorMsgs: []string{"scheme"},
		},
		{
			name:      "Missing host",
			config:    &Config{BaseURL: "https://", Timeout: time.Second},
			wantError: true,
			errorMsgs: []string{"host"},
		},
		{
			name:      "Negative timeout",
			config:    &Config{BaseURL: DefaultBaseURL, Timeout: -1 * time.Second},
			wantError: true,
			errorMsgs: []string{"timeout"},
		},
		{
			name:      "All errors reported together",
			config:    &Config{},
			wantError: true,
			errorMsgs: []string{"base_url", "timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.errorMsgs {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestConfig_NewHTTPClient(t *testing.T) {
	tlsVerify := false
	cfg := &Config{Timeout: 7 * time.Second, TLSVerify: &tlsVerify}

	client := cfg.NewHTTPClient()

	assert.Equal(t, 7*time.Second, client.Timeout)
	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.ucloud.cn", cfg.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	require.NotNil(t, cfg.TLSVerify)
	assert.True(t, *cfg.TLSVerify)
}
