package uaccount

import (
	"errors"
	"fmt"
)

// ErrorKind tags the failure classes of the SDK so callers can switch on them.
type ErrorKind int

const (
	// KindUnknown is any error not produced by this package.
	KindUnknown ErrorKind = iota

	// KindInvalidCredentials is returned at construction time for a bad key pair.
	KindInvalidCredentials

	// KindServer covers non-200 responses and transport failures.
	KindServer

	// KindClient covers 200 responses whose body cannot be interpreted.
	KindClient

	// KindAPI covers well-formed responses with a nonzero RetCode.
	KindAPI
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindServer:
		return "server"
	case KindClient:
		return "client"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// KindOf reports the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// InvalidCredentialsError is returned when a key pair fails validation.
type InvalidCredentialsError struct {
	Err error
}

func (e *InvalidCredentialsError) Error() string {
	if e.Err == nil {
		return "invalid API keys"
	}
	return fmt.Sprintf("invalid API keys: %v", e.Err)
}

func (e *InvalidCredentialsError) Unwrap() error { return e.Err }

// Kind returns KindInvalidCredentials.
func (e *InvalidCredentialsError) Kind() ErrorKind { return KindInvalidCredentials }

// ServerError is a transport-level failure. StatusCode is the HTTP status of a
// non-200 response and Body its raw text. A request that never produced a
// response (network failure, timeout) has StatusCode 0 and Err set.
type ServerError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ServerError) Error() string {
	if e.Err != nil {
		if e.StatusCode == 0 {
			return fmt.Sprintf("UAccount server error: %v", e.Err)
		}
		return fmt.Sprintf("UAccount server error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("UAccount server error (status %d): %s", e.StatusCode, e.Body)
}

func (e *ServerError) Unwrap() error { return e.Err }

// Kind returns KindServer.
func (e *ServerError) Kind() ErrorKind { return KindServer }

// ClientError is returned when a 200 response body is not a usable JSON object
// or when the request cannot be built.
type ClientError struct {
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("UAccount client error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("UAccount client error: %s", e.Message)
}

func (e *ClientError) Unwrap() error { return e.Err }

// Kind returns KindClient.
func (e *ClientError) Kind() ErrorKind { return KindClient }

// APIError is a business-level failure reported through a nonzero RetCode.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("UAccount API Error: RetCode=%d Message=%q", e.Code, e.Message)
}

// Kind returns KindAPI.
func (e *APIError) Kind() ErrorKind { return KindAPI }

// errUnknown is the diagnostic used for unparsable response bodies.
const errUnknown = "unknown error"
