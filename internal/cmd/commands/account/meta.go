package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/ucloud-forge/uaccount/internal/cmd/base"
	"github.com/ucloud-forge/uaccount/internal/config"
	"github.com/ucloud-forge/uaccount/pkg/uaccount"
)

// API is the subset of *uaccount.Client used by the commands.
type API interface {
	CreateProject(ctx context.Context, projectName string) (*uaccount.CreateProjectResult, error)
	DescribeProjects(ctx context.Context) (*uaccount.ProjectList, error)
	RemoveProject(ctx context.Context, projectID string) (uaccount.Response, error)
	InviteSubaccount(ctx context.Context, invite uaccount.SubaccountInvite) (uaccount.Response, error)
	AddMemberToProject(ctx context.Context, projectID, memberEmail, characterID string) (uaccount.Response, error)
	DescribeMemberList(ctx context.Context, projectID string, offset, limit int) (*uaccount.MemberList, error)
	RemoveMemberFromProject(ctx context.Context, projectID, memberEmail string) (uaccount.Response, error)
	TerminateMember(ctx context.Context, memberEmail string) (uaccount.Response, error)
}

// ClientFactory builds an API client from resolved configuration.
type ClientFactory func(cfg *uaccount.Config, logger hclog.Logger) (API, error)

// NewUAccountClient is the ClientFactory used outside of tests.
func NewUAccountClient(cfg *uaccount.Config, logger hclog.Logger) (API, error) {
	client, err := uaccount.NewClient(cfg, uaccount.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return client, nil
}

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// Meta holds the options shared by every account command.
type Meta struct {
	*base.Command

	Loader    *config.Loader
	NewClient ClientFactory

	flagConfig   string
	flagFormat   string
	flagLogLevel string
}

// NewMeta returns a Meta reading configuration from the OS environment.
func NewMeta(cmd *base.Command) *Meta {
	return &Meta{
		Command:   cmd,
		Loader:    config.NewLoader(),
		NewClient: NewUAccountClient,
	}
}

func (m *Meta) sharedFlags(f *base.FlagSet) {
	f.StringVar(
		&m.flagConfig, "config", "",
		"Path to a uaccount config file (.hcl or .json). Without it, credentials "+
			"are read from "+config.EnvPublicKey+" and "+config.EnvPrivateKey+".",
	)
	f.StringVar(
		&m.flagFormat, "format", formatYAML,
		"Output format, one of yaml or json.",
	)
	f.StringVar(
		&m.flagLogLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error). Overrides the config file.",
	)
}

func (m *Meta) validateShared() error {
	switch m.flagFormat {
	case formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be yaml or json", m.flagFormat)
	}
}

// loadConfig parses the config file and applies the log level to m.Log.
func (m *Meta) loadConfig() (*config.Config, error) {
	cfg, err := m.Loader.Load(m.flagConfig)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if m.flagLogLevel != "" {
		level = hclog.LevelFromString(m.flagLogLevel)
	}
	if level == hclog.NoLevel {
		return nil, errors.New("invalid log level: must be one of trace, debug, info, warn, error")
	}
	m.Log.SetLevel(level)

	return cfg, nil
}

// client loads configuration and builds the API client.
func (m *Meta) client() (API, error) {
	cfg, err := m.loadConfig()
	if err != nil {
		return nil, err
	}

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}

	return m.NewClient(clientCfg, m.Log)
}

// context is cancelled on interrupt.
func (m *Meta) context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// output writes v to the UI in the selected format.
func (m *Meta) output(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	if m.flagFormat == formatJSON {
		m.UI.Output(string(b))
		return nil
	}

	// Round-trip through JSON so YAML keys match the API field names.
	var doc interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	m.UI.Output(strings.TrimRight(string(out), "\n"))
	return nil
}

// fail reports err on the UI and returns the exit code.
func (m *Meta) fail(err error) int {
	var apiErr *uaccount.APIError
	switch {
	case errors.As(err, &apiErr):
		m.UI.Error(fmt.Sprintf("API error %d: %s", apiErr.Code, apiErr.Message))
	case uaccount.KindOf(err) == uaccount.KindInvalidCredentials:
		m.UI.Error(fmt.Sprintf("%v\n\nSet %s and %s or use -config.",
			err, config.EnvPublicKey, config.EnvPrivateKey))
	default:
		m.UI.Error(err.Error())
	}
	return 1
}
