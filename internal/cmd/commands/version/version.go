package version

import (
	"github.com/ucloud-forge/uaccount/internal/cmd/base"
	"github.com/ucloud-forge/uaccount/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: uaccount version

  Prints the version of this binary.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("uaccount v" + version.Version)
	return 0
}
