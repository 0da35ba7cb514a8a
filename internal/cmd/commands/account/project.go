package account

import (
	"flag"
	"fmt"

	"github.com/ucloud-forge/uaccount/internal/cmd/base"
)

// ===================================================================
// create-project
// ===================================================================

type CreateProjectCommand struct {
	*Meta

	flagName string
}

func (c *CreateProjectCommand) Synopsis() string {
	return "Create a project"
}

func (c *CreateProjectCommand) Help() string {
	return `Usage: uaccount create-project -name=<name>

  Creates a project and prints the API response, including the new
  ProjectId.` + c.Flags().Help()
}

func (c *CreateProjectCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create-project", flag.ContinueOnError))
	c.sharedFlags(f)

	f.StringVar(&c.flagName, "name", "", "(Required) Name of the new project.")

	return f
}

func (c *CreateProjectCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagName == "" {
		c.UI.Error("name flag is required")
		return 1
	}
	if err := c.validateShared(); err != nil {
		return c.fail(err)
	}

	client, err := c.client()
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.context()
	defer cancel()

	result, err := client.CreateProject(ctx, c.flagName)
	if err != nil {
		return c.fail(err)
	}

	if err := c.output(result.Raw); err != nil {
		return c.fail(err)
	}
	return 0
}

// ===================================================================
// get-project-list
// ===================================================================

type GetProjectListCommand struct {
	*Meta
}

func (c *GetProjectListCommand) Synopsis() string {
	return "List the projects of the account"
}

func (c *GetProjectListCommand) Help() string {
	return `Usage: uaccount get-project-list

  Prints every project visible to the configured key pair.` + c.Flags().Help()
}

func (c *GetProjectListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get-project-list", flag.ContinueOnError))
	c.sharedFlags(f)
	return f
}

func (c *GetProjectListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if err := c.validateShared(); err != nil {
		return c.fail(err)
	}

	client, err := c.client()
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.context()
	defer cancel()

	list, err := client.DescribeProjects(ctx)
	if err != nil {
		return c.fail(err)
	}

	if err := c.output(list.Raw); err != nil {
		return c.fail(err)
	}
	return 0
}

// ===================================================================
// terminate-project
// ===================================================================

type TerminateProjectCommand struct {
	*Meta

	flagProjectID string
}

func (c *TerminateProjectCommand) Synopsis() string {
	return "Delete a project"
}

func (c *TerminateProjectCommand) Help() string {
	return `Usage: uaccount terminate-project -project-id=<id>

  Deletes a project. The project must not hold any resources.` + c.Flags().Help()
}

func (c *TerminateProjectCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("terminate-project", flag.ContinueOnError))
	c.sharedFlags(f)

	f.StringVar(&c.flagProjectID, "project-id", "", "(Required) ID of the project to delete.")

	return f
}

func (c *TerminateProjectCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProjectID == "" {
		c.UI.Error("project-id flag is required")
		return 1
	}
	if err := c.validateShared(); err != nil {
		return c.fail(err)
	}

	client, err := c.client()
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.context()
	defer cancel()

	resp, err := client.RemoveProject(ctx, c.flagProjectID)
	if err != nil {
		return c.fail(err)
	}

	if err := c.output(resp); err != nil {
		return c.fail(err)
	}
	return 0
}
