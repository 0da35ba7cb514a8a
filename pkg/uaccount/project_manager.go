package uaccount

import (
	"context"
	"fmt"
)

// ===================================================================
// Project operations
// ===================================================================
// Each method builds the action payload and delegates to Do.

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, projectName string) (*CreateProjectResult, error) {
	params := NewParams(Param{Key: "ProjectName", Value: projectName})

	c.logger.Info("create project", "name", projectName)
	c.logger.Debug("create project payload", "public_key", c.PublicKey(), "project_name", projectName)

	resp, err := c.Do(ctx, ActionCreateProject, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	var result CreateProjectResult
	decodeResult(c.logger, resp, &result)
	return &result, nil
}

// DescribeProjects lists the projects of the account.
func (c *Client) DescribeProjects(ctx context.Context) (*ProjectList, error) {
	c.logger.Info("describe projects")

	resp, err := c.Do(ctx, ActionGetProjectList, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to describe projects: %w", err)
	}

	var list ProjectList
	decodeResult(c.logger, resp, &list)
	return &list, nil
}

// RemoveProject terminates a project.
func (c *Client) RemoveProject(ctx context.Context, projectID string) (Response, error) {
	params := NewParams(Param{Key: "ProjectId", Value: projectID})

	c.logger.Info("remove project", "project_id", projectID)

	resp, err := c.Do(ctx, ActionTerminateProject, params)
	if err != nil {
		return nil, fmt.Errorf("failed to remove project: %w", err)
	}
	return resp, nil
}
