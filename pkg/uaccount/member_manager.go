package uaccount

import (
	"context"
	"fmt"
	"strconv"
)

// ===================================================================
// Member operations
// ===================================================================

// InviteSubaccount invites a new member account.
func (c *Client) InviteSubaccount(ctx context.Context, invite SubaccountInvite) (Response, error) {
	params := NewParams(
		Param{Key: "UserEmail", Value: invite.Email},
		Param{Key: "UserPwd", Value: invite.Password},
		Param{Key: "UserPhone", Value: invite.Phone},
		Param{Key: "UserName", Value: invite.UserName},
		Param{Key: "IsFinance", Value: strconv.FormatBool(invite.IsFinance)},
	)

	c.logger.Info("invite subaccount", "email", invite.Email, "finance", invite.IsFinance)

	resp, err := c.Do(ctx, ActionInviteSubaccount, params)
	if err != nil {
		return nil, fmt.Errorf("failed to invite subaccount: %w", err)
	}
	return resp, nil
}

// AddMemberToProject adds an existing member to a project with the given
// role. An empty characterID means DefaultCharacterID.
func (c *Client) AddMemberToProject(ctx context.Context, projectID, memberEmail, characterID string) (Response, error) {
	if characterID == "" {
		characterID = DefaultCharacterID
	}
	params := NewParams(
		Param{Key: "ProjectId", Value: projectID},
		Param{Key: "CharacterId", Value: characterID},
		Param{Key: "MemberEmail", Value: memberEmail},
	)

	c.logger.Info("add member to project",
		"project_id", projectID,
		"email", memberEmail,
		"character_id", characterID,
	)

	resp, err := c.Do(ctx, ActionAddMemberToProject, params)
	if err != nil {
		return nil, fmt.Errorf("failed to add member to project: %w", err)
	}
	return resp, nil
}

// DescribeMemberList lists the members of a project. offset and limit are
// passed through; a zero limit means DefaultMemberListLimit.
func (c *Client) DescribeMemberList(ctx context.Context, projectID string, offset, limit int) (*MemberList, error) {
	if limit == 0 {
		limit = DefaultMemberListLimit
	}
	params := NewParams(
		Param{Key: "ProjectId", Value: projectID},
		Param{Key: "Offset", Value: strconv.Itoa(offset)},
		Param{Key: "Limit", Value: strconv.Itoa(limit)},
	)

	c.logger.Info("describe member list", "project_id", projectID, "offset", offset, "limit", limit)

	resp, err := c.Do(ctx, ActionDescribeMemberList, params)
	if err != nil {
		return nil, fmt.Errorf("failed to describe member list: %w", err)
	}

	var list MemberList
	decodeResult(c.logger, resp, &list)
	return &list, nil
}

// RemoveMemberFromProject removes a member from a project. The account
// itself remains and can be added to other projects.
func (c *Client) RemoveMemberFromProject(ctx context.Context, projectID, memberEmail string) (Response, error) {
	params := NewParams(
		Param{Key: "ProjectId", Value: projectID},
		Param{Key: "MemberEmail", Value: memberEmail},
	)

	c.logger.Info("remove member from project", "project_id", projectID, "email", memberEmail)

	resp, err := c.Do(ctx, ActionRemoveMemberFromProject, params)
	if err != nil {
		return nil, fmt.Errorf("failed to remove member from project: %w", err)
	}
	return resp, nil
}

// TerminateMember deletes a member account. Its email and phone become
// available for a new registration.
func (c *Client) TerminateMember(ctx context.Context, memberEmail string) (Response, error) {
	params := NewParams(Param{Key: "MemberEmail", Value: memberEmail})

	c.logger.Info("terminate member", "email", memberEmail)

	resp, err := c.Do(ctx, ActionTerminateMember, params)
	if err != nil {
		return nil, fmt.Errorf("failed to terminate member: %w", err)
	}
	return resp, nil
}
