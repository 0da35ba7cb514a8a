package account

import (
	"flag"
	"fmt"
	"strings"

	"github.com/ucloud-forge/uaccount/internal/cmd/base"
	"github.com/ucloud-forge/uaccount/pkg/uaccount"
)

// SignCommand prints the signature of a parameter set without sending it.
type SignCommand struct {
	*Meta

	flagAction        string
	flagWithPublicKey bool
}

func (c *SignCommand) Synopsis() string {
	return "Compute the request signature for a set of parameters"
}

func (c *SignCommand) Help() string {
	return `Usage: uaccount sign [options] [Key=Value ...]

  Prints the Signature the API expects for the given parameters, signed
  with the configured private key. Nothing is sent to the API.` + c.Flags().Help()
}

func (c *SignCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("sign", flag.ContinueOnError))
	c.sharedFlags(f)

	f.StringVar(&c.flagAction, "action", "", "Action parameter to include.")
	f.BoolVar(
		&c.flagWithPublicKey, "with-public-key", true,
		"Include the configured PublicKey, as the client does on every request.",
	)

	return f
}

func (c *SignCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	params, err := parseParams(flags.Args())
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.flagAction != "" {
		params.Set("Action", c.flagAction)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return c.fail(err)
	}
	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return c.fail(err)
	}
	creds, err := uaccount.NewCredentials(clientCfg.PublicKey, clientCfg.PrivateKey)
	if err != nil {
		return c.fail(err)
	}

	if c.flagWithPublicKey {
		params.Set("PublicKey", creds.PublicKey())
	}
	c.Log.Debug("signing parameters", "count", len(params))

	c.UI.Output(creds.Signature(params))
	return 0
}

// parseParams reads Key=Value arguments. Values may contain '='.
func parseParams(args []string) (uaccount.Params, error) {
	var params uaccount.Params
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected Key=Value", arg)
		}
		params.Set(key, value)
	}
	return params, nil
}
