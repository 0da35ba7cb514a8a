package uaccount

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name       string
		publicKey  string
		privateKey string
		wantError  bool
		errorMsg   string
	}{
		{
			name:       "Valid keys",
			publicKey:  "pub",
			privateKey: "secret",
		},
		{
			name:       "Empty public key",
			privateKey: "secret",
			wantError:  true,
			errorMsg:   "public_key",
		},
		{
			name:      "Empty private key",
			publicKey: "pub",
			wantError: true,
			errorMsg:  "private_key",
		},
		{
			name:      "Both empty",
			wantError: true,
			errorMsg:  "invalid API keys",
		},
		{
			name:       "Whitespace keys are kept as given",
			publicKey:  "   ",
			privateKey: " secret ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := NewCredentials(tt.publicKey, tt.privateKey)

			if tt.wantError {
				require.Error(t, err)
				assert.Nil(t, creds)
				assert.Contains(t, err.Error(), tt.errorMsg)

				var credErr *InvalidCredentialsError
				assert.True(t, errors.As(err, &credErr))
				assert.Equal(t, KindInvalidCredentials, KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.publicKey, creds.PublicKey())
		})
	}
}

func TestCredentials_RedactsPrivateKey(t *testing.T) {
	creds, err := NewCredentials("pub", "top-secret")
	require.NoError(t, err)

	assert.NotContains(t, fmt.Sprintf("%v", creds), "top-secret")
	assert.NotContains(t, fmt.Sprintf("%#v", creds), "top-secret")
	assert.Contains(t, creds.String(), "pub")
}
