package account

import (
	"flag"
	"fmt"

	"github.com/ucloud-forge/uaccount/internal/cmd/base"
	"github.com/ucloud-forge/uaccount/pkg/uaccount"
)

// ===================================================================
// invite-subaccount
// ===================================================================

type InviteSubaccountCommand struct {
	*Meta

	flagEmail    string
	flagPassword string
	flagPhone    string
	flagName     string
	flagFinance  bool
}

func (c *InviteSubaccountCommand) Synopsis() string {
	return "Invite a new member account"
}

func (c *InviteSubaccountCommand) Help() string {
	return `Usage: uaccount invite-subaccount -email=<email> -phone=<phone> -name=<name>

  Invites a new member account. When -password is omitted the initial
  password is read from the terminal.` + c.Flags().Help()
}

func (c *InviteSubaccountCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("invite-subaccount", flag.ContinueOnError))
	c.sharedFlags(f)

	f.StringVar(&c.flagEmail, "email", "", "(Required) Email address of the new member.")
	f.StringVar(&c.flagPassword, "password", "", "Initial login password.")
	f.StringVar(
		&c.flagPhone, "phone", "",
		`(Required) Phone number including the country code, e.g. "(86)15012344321".`,
	)
	f.StringVar(&c.flagName, "name", "", "(Required) Display name of the new member.")
	f.BoolVar(&c.flagFinance, "finance", false, "Grant invoice and billing access.")

	return f
}

func (c *InviteSubaccountCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	for _, required := range []struct{ name, value string }{
		{"email", c.flagEmail},
		{"phone", c.flagPhone},
		{"name", c.flagName},
	} {
		if required.value == "" {
			c.UI.Error(fmt.Sprintf("%s flag is required", required.name))
			return 1
		}
	}
	if err := c.validateShared(); err != nil {
		return c.fail(err)
	}

	if c.flagPassword == "" {
		password, err := c.UI.AskSecret("Initial password:")
		if err != nil {
			c.UI.Error(fmt.Sprintf("error reading password: %v", err))
			return 1
		}
		if password == "" {
			c.UI.Error("password is required")
			return 1
		}
		c.flagPassword = password
	}

	client, err := c.client()
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.context()
	defer cancel()

	resp, err := client.InviteSubaccount(ctx, uaccount.SubaccountInvite{
		Email:     c.flagEmail,
		Password:  c.flagPassword,
		Phone:     c.flagPhone,
		UserName:  c.flagName,
		IsFinance: c.flagFinance,
	})
	if err != nil {
		return c.fail(err)
	}

	if err := c.output(resp); err != nil {
		return c.fail(err)
	}
	return 0
}

// ===================================================================
// add-member-to-project
// ===================================================================

type AddMemberToProjectCommand struct {
	*Meta

	flagProjectID   string
	flagEmail       string
	flagCharacterID string
}

func (c *AddMemberToProjectCommand) Synopsis() string {
	return "Add a member to a project"
}

func (c *AddMemberToProjectCommand) Help() string {
	return `Usage: uaccount add-member-to-project -project-id=<id> -email=<email>

  Adds an existing member to a project with the given role.` + c.Flags().Help()
}

func (c *AddMemberToProjectCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("add-member-to-project", flag.ContinueOnError))
	c.sharedFlags(f)

	f.StringVar(&c.flagProjectID, "project-id", "", "(Required) ID of the project.")
	f.StringVar(&c.flagEmail, "email", "", "(Required) Email address of the member.")
	f.StringVar(
		&c.flagCharacterID, "character-id", uaccount.DefaultCharacterID,
		"Role granted in the project.",
	)

	return f
}

func (c *AddMemberToProjectCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProjectID == "" {
		c.UI.Error("project-id flag is required")
		return 1
	}
	if c.flagEmail == "" {
		c.UI.Error("email flag is required")
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

	resp, err := client.AddMemberToProject(ctx, c.flagProjectID, c.flagEmail, c.flagCharacterID)
	if err != nil {
		return c.fail(err)
	}

	if err := c.output(resp); err != nil {
		return c.fail(err)
	}
	return 0
}

// ===================================================================
// describe-member-list
// ===================================================================

type DescribeMemberListCommand struct {
	*Meta

	flagProjectID string
	flagOffset    int
	flagLimit     int
}

func (c *DescribeMemberListCommand) Synopsis() string {
	return "List the members of a project"
}

func (c *DescribeMemberListCommand) Help() string {
	return `Usage: uaccount describe-member-list -project-id=<id>

  Prints one page of the members of a project.` + c.Flags().Help()
}

func (c *DescribeMemberListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("describe-member-list", flag.ContinueOnError))
	c.sharedFlags(f)

	f.StringVar(&c.flagProjectID, "project-id", "", "(Required) ID of the project.")
	f.IntVar(&c.flagOffset, "offset", 0, "Index of the first member to return.")
	f.IntVar(&c.flagLimit, "limit", uaccount.DefaultMemberListLimit, "Maximum number of members to return.")

	return f
}

func (c *DescribeMemberListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProjectID == "" {
		c.UI.Error("project-id flag is required")
		return 1
	}
	if c.flagOffset < 0 || c.flagLimit < 1 {
		c.UI.Error("offset must be non-negative and limit at least 1")
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

	list, err := client.DescribeMemberList(ctx, c.flagProjectID, c.flagOffset, c.flagLimit)
	if err != nil {
		return c.fail(err)
	}

	if err := c.output(list.Raw); err != nil {
		return c.fail(err)
	}
	return 0
}

// ===================================================================
// remove-member-from-project
// ===================================================================

type RemoveMemberFromProjectCommand struct {
	*Meta

	flagProjectID string
	flagEmail     string
}

func (c *RemoveMemberFromProjectCommand) Synopsis() string {
	return "Remove a member from a project"
}

func (c *RemoveMemberFromProjectCommand) Help() string {
	return `Usage: uaccount remove-member-from-project -project-id=<id> -email=<email>

  Removes a member from a project. The member account is kept.` + c.Flags().Help()
}

func (c *RemoveMemberFromProjectCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("remove-member-from-project", flag.ContinueOnError))
	c.sharedFlags(f)

	f.StringVar(&c.flagProjectID, "project-id", "", "(Required) ID of the project.")
	f.StringVar(&c.flagEmail, "email", "", "(Required) Email address of the member.")

	return f
}

func (c *RemoveMemberFromProjectCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagProjectID == "" {
		c.UI.Error("project-id flag is required")
		return 1
	}
	if c.flagEmail == "" {
		c.UI.Error("email flag is required")
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

	resp, err := client.RemoveMemberFromProject(ctx, c.flagProjectID, c.flagEmail)
	if err != nil {
		return c.fail(err)
	}

	if err := c.output(resp); err != nil {
		return c.fail(err)
	}
	return 0
}

// ===================================================================
// terminate-member
// ===================================================================

type TerminateMemberCommand struct {
	*Meta

	flagEmail string
}

func (c *TerminateMemberCommand) Synopsis() string {
	return "Delete a member account"
}

func (c *TerminateMemberCommand) Help() string {
	return `Usage: uaccount terminate-member -email=<email>

  Deletes a member account. Its email and phone can be registered again
  afterwards.` + c.Flags().Help()
}

func (c *TerminateMemberCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("terminate-member", flag.ContinueOnError))
	c.sharedFlags(f)

	f.StringVar(&c.flagEmail, "email", "", "(Required) Email address of the member.")

	return f
}

func (c *TerminateMemberCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagEmail == "" {
		c.UI.Error("email flag is required")
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

	resp, err := client.TerminateMember(ctx, c.flagEmail)
	if err != nil {
		return c.fail(err)
	}

	if err := c.output(resp); err != nil {
		return c.fail(err)
	}
	return 0
}
