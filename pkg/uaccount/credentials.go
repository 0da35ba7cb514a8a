package uaccount

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Credentials holds an API key pair. It is immutable after construction and
// safe for concurrent use. The private key is only read by Signature.
type Credentials struct {
	publicKey  string
	privateKey string
}

// NewCredentials validates the key pair and returns an *InvalidCredentialsError
// if either key is empty. Keys are used exactly as given.
func NewCredentials(publicKey, privateKey string) (*Credentials, error) {
	err := validation.Errors{
		"public_key":  validation.Validate(publicKey, validation.Required),
		"private_key": validation.Validate(privateKey, validation.Required),
	}.Filter()
	if err != nil {
		return nil, &InvalidCredentialsError{Err: err}
	}

	return &Credentials{
		publicKey:  publicKey,
		privateKey: privateKey,
	}, nil
}

// PublicKey returns the public half of the key pair.
func (c *Credentials) PublicKey() string {
	return c.publicKey
}

// Signature signs params with the private key.
func (c *Credentials) Signature(params Params) string {
	return Sign(params, c.privateKey)
}

// String redacts the private key.
func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{PublicKey: %q, PrivateKey: <redacted>}", c.publicKey)
}

// GoString redacts the private key for %#v.
func (c *Credentials) GoString() string {
	return c.String()
}
