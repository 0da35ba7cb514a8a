package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/ucloud-forge/uaccount/pkg/uaccount"
)

// Environment variables consulted when the config file leaves a value unset.
const (
	EnvPublicKey  = "UCLOUD_PUBLIC_KEY"
	EnvPrivateKey = "UCLOUD_PRIVATE_KEY"
	EnvAPIURL     = "UCLOUD_API_URL"
)

// Config is the uaccount CLI configuration file.
//
// Example:
//
//	log_level = "info"
//
//	uaccount {
//	  base_url    = "https://api.ucloud.cn"
//	  public_key  = env("UCLOUD_PUBLIC_KEY")
//	  private_key = env("UCLOUD_PRIVATE_KEY")
//	  timeout     = "60s"
//	  tls_verify  = true
//	}
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error (default: warn)
	LogLevel string `hcl:"log_level,optional"`

	// UAccount configures the API client
	UAccount *UAccount `hcl:"uaccount,block"`
}

// UAccount is the uaccount block of the config file.
type UAccount struct {
	BaseURL    string `hcl:"base_url,optional"`
	PublicKey  string `hcl:"public_key,optional"`
	PrivateKey string `hcl:"private_key,optional"`

	// Timeout is a Go duration string such as "30s"
	Timeout   string `hcl:"timeout,optional"`
	TLSVerify *bool  `hcl:"tls_verify,optional"`
}

// Loader reads config files from FS and resolves env() and the fallback
// variables through LookupEnv.
type Loader struct {
	FS        afero.Fs
	LookupEnv func(key string) (string, bool)
}

// NewLoader returns a Loader backed by the OS filesystem and environment.
func NewLoader() *Loader {
	return &Loader{
		FS:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// Load parses the HCL (or HCL JSON) file at path. An empty path yields a
// config built from environment variables only.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		src, err := afero.ReadFile(l.FS, path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := hclsimple.Decode(path, src, l.evalContext(), cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
	}

	if cfg.UAccount == nil {
		cfg.UAccount = &UAccount{}
	}
	l.applyEnv(cfg.UAccount)

	return cfg, nil
}

func (l *Loader) applyEnv(u *UAccount) {
	if u.PublicKey == "" {
		u.PublicKey, _ = l.LookupEnv(EnvPublicKey)
	}
	if u.PrivateKey == "" {
		u.PrivateKey, _ = l.LookupEnv(EnvPrivateKey)
	}
	if u.BaseURL == "" {
		u.BaseURL, _ = l.LookupEnv(EnvAPIURL)
	}
}

// evalContext exposes env("NAME") to config files.
func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					value, _ := l.LookupEnv(args[0].AsString())
					return cty.StringVal(value), nil
				},
			}),
		},
	}
}

// ClientConfig converts the uaccount block to a client Config, keeping
// defaults for unset values.
func (c *Config) ClientConfig() (*uaccount.Config, error) {
	out := uaccount.DefaultConfig()
	if c.UAccount == nil {
		return out, nil
	}

	u := c.UAccount
	if u.BaseURL != "" {
		out.BaseURL = u.BaseURL
	}
	out.PublicKey = u.PublicKey
	out.PrivateKey = u.PrivateKey
	if u.TLSVerify != nil {
		out.TLSVerify = u.TLSVerify
	}
	if u.Timeout != "" {
		timeout, err := time.ParseDuration(u.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", u.Timeout, err)
		}
		out.Timeout = timeout
	}

	return out, nil
}

// Level returns the configured log level, defaulting to warn.
func (c *Config) Level() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Warn
	}
	return hclog.LevelFromString(c.LogLevel)
}
