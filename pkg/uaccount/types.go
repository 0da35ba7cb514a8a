package uaccount

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
)

// Action names understood by the UAccount API.
const (
	ActionCreateProject           = "CreateProject"
	ActionGetProjectList          = "GetProjectList"
	ActionTerminateProject        = "TerminateProject"
	ActionInviteSubaccount        = "InviteSubaccount"
	ActionAddMemberToProject      = "AddMemberToProject"
	ActionDescribeMemberList      = "DescribeMemberList"
	ActionRemoveMemberFromProject = "RemoveMemberFromProject"
	ActionTerminateMember         = "TerminateMember"
)

const (
	// DefaultCharacterID is the built-in role with access to every product.
	DefaultCharacterID = "Admin"

	// DefaultMemberListLimit is the page size used when none is given.
	DefaultMemberListLimit = 200
)

// Result carries the fields common to every response and the full body. When
// the body does not fit a typed result, the typed fields may be partly
// filled; Raw is always complete.
type Result struct {
	Action  string
	RetCode int

	// Raw is the response exactly as returned by the API.
	Raw Response `mapstructure:"-"`
}

func (r *Result) setRaw(resp Response) { r.Raw = resp }

// CreateProjectResult is returned by CreateProject.
type CreateProjectResult struct {
	Result `mapstructure:",squash"`

	ProjectID string `mapstructure:"ProjectId"`
}

// Project is one entry of a project list.
type Project struct {
	ProjectID     string `mapstructure:"ProjectId"`
	ProjectName   string
	ParentID      string `mapstructure:"ParentId"`
	ParentName    string
	CreateTime    int64
	IsDefault     bool
	ResourceCount int
	MemberCount   int
}

// Created returns CreateTime as a time.
func (p Project) Created() time.Time {
	return time.Unix(p.CreateTime, 0)
}

// ProjectList is returned by DescribeProjects.
type ProjectList struct {
	Result `mapstructure:",squash"`

	ProjectCount int
	ProjectSet   []Project
}

// MemberProject is a project membership of a Member.
type MemberProject struct {
	ProjectID   string `mapstructure:"ProjectId"`
	ProjectName string
	CharacterID string `mapstructure:"CharacterId"`
}

// Member is one entry of a member list. Flag and timestamp fields keep the
// provider's text form.
type Member struct {
	MemberEmail      string
	MemberPhone      string
	MemberName       string
	MemberPosition   string
	MemberQQ         string
	PublicKey        string
	LastRegionID     string `mapstructure:"LastRegionId"`
	DefaultProjectID string `mapstructure:"DefaultProjectId"`
	LastLogin        string
	Created          string
	State            string
	IsAdmin          string
	IsFinance        string
	ProjectSet       []MemberProject
}

// CreatedTime parses Created, which may be a unix timestamp or a date string.
func (m Member) CreatedTime() (time.Time, error) {
	return parseTimestamp("Created", m.Created)
}

// LastLoginTime parses LastLogin the same way as CreatedTime.
func (m Member) LastLoginTime() (time.Time, error) {
	return parseTimestamp("LastLogin", m.LastLogin)
}

func parseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is empty", field)
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", field, err)
	}
	return t, nil
}

// MemberList is returned by DescribeMemberList.
type MemberList struct {
	Result `mapstructure:",squash"`

	TotalCount int
	MemberSet  []Member
}

// SubaccountInvite holds the arguments of InviteSubaccount.
type SubaccountInvite struct {
	Email string

	// Password is the initial login password
	Password string

	// Phone including country code, e.g. "(86)15012344321"
	Phone string

	UserName string

	// IsFinance grants invoice and billing access
	IsFinance bool
}

// decodeResult fills the typed fields of out from resp and keeps the raw body
// on it. The call already succeeded, so a body that does not fit the typed
// fields is logged and left to the caller through Raw; it is not an error.
func decodeResult(logger hclog.Logger, resp Response, out interface{ setRaw(Response) }) {
	if err := resp.Decode(out); err != nil {
		logger.Warn("response does not match typed result",
			"action", resp.Action(),
			"error", err,
		)
	}
	out.setRaw(resp)
}
