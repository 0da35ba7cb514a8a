package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/cli"

	"github.com/ucloud-forge/uaccount/internal/cmd/base"
	"github.com/ucloud-forge/uaccount/internal/cmd/commands/account"
	"github.com/ucloud-forge/uaccount/internal/cmd/commands/version"
	"github.com/ucloud-forge/uaccount/pkg/uaccount"
)

// Commands is the mapping of all available uaccount commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	// API commands are named after their action, e.g. CreateProject is
	// "create-project".
	apiCommands := map[string]func(*account.Meta) cli.Command{
		uaccount.ActionCreateProject: func(m *account.Meta) cli.Command {
			return &account.CreateProjectCommand{Meta: m}
		},
		uaccount.ActionGetProjectList: func(m *account.Meta) cli.Command {
			return &account.GetProjectListCommand{Meta: m}
		},
		uaccount.ActionTerminateProject: func(m *account.Meta) cli.Command {
			return &account.TerminateProjectCommand{Meta: m}
		},
		uaccount.ActionInviteSubaccount: func(m *account.Meta) cli.Command {
			return &account.InviteSubaccountCommand{Meta: m}
		},
		uaccount.ActionAddMemberToProject: func(m *account.Meta) cli.Command {
			return &account.AddMemberToProjectCommand{Meta: m}
		},
		uaccount.ActionDescribeMemberList: func(m *account.Meta) cli.Command {
			return &account.DescribeMemberListCommand{Meta: m}
		},
		uaccount.ActionRemoveMemberFromProject: func(m *account.Meta) cli.Command {
			return &account.RemoveMemberFromProjectCommand{Meta: m}
		},
		uaccount.ActionTerminateMember: func(m *account.Meta) cli.Command {
			return &account.TerminateMemberCommand{Meta: m}
		},
	}

	Commands = map[string]cli.CommandFactory{
		"sign": func() (cli.Command, error) {
			return &account.SignCommand{Meta: account.NewMeta(b)}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}

	for action, newCommand := range apiCommands {
		newCommand := newCommand
		Commands[strcase.ToKebab(action)] = func() (cli.Command, error) {
			return newCommand(account.NewMeta(b)), nil
		}
	}
}
