// Package uaccount is a client for the UCloud UAccount account and project management API.
//
// # Overview
//
// Every call is an HTTP request to a single endpoint carrying an Action, the caller's
// PublicKey, action-specific fields and a Signature. The signature is the SHA-1 hex digest
// of all parameters concatenated in key order, followed by the private key:
//
//	Action=CreateProject, ProjectName=test, private key "secret"
//	  -> sha1("ActionCreateProjectProjectNametestsecret")
//
// The private key is never transmitted.
//
// # Usage
//
//	client, err := uaccount.NewClient(&uaccount.Config{
//	  PublicKey:  os.Getenv("UCLOUD_PUBLIC_KEY"),
//	  PrivateKey: os.Getenv("UCLOUD_PRIVATE_KEY"),
//	}, uaccount.WithLogger(logger))
//	if err != nil {
//	  return err
//	}
//
//	project, err := client.CreateProject(ctx, "staging")
//
// Actions without a dedicated method go through Client.Do:
//
//	resp, err := client.Do(ctx, "GetRegion", nil)
//
// # Operations
//
// Projects:
//   - CreateProject           (CreateProject)
//   - DescribeProjects        (GetProjectList)
//   - RemoveProject           (TerminateProject)
//
// Members:
//   - InviteSubaccount        (InviteSubaccount)
//   - AddMemberToProject      (AddMemberToProject)
//   - DescribeMemberList      (DescribeMemberList)
//   - RemoveMemberFromProject (RemoveMemberFromProject)
//   - TerminateMember         (TerminateMember)
//
// # Error Handling
//
// Responses are classified in a fixed order:
//   - *ServerError: the HTTP status was not 200, or no response arrived at all
//     (network failure, timeout). The raw body is kept.
//   - *ClientError: the status was 200 but the body is not a JSON object with an integer RetCode.
//   - *APIError: RetCode was nonzero. Code and Message come from the provider.
//
// A blank key pair fails NewCredentials or NewClient with *InvalidCredentialsError.
// KindOf maps any returned error to an ErrorKind for switch-based handling.
//
// There are no retries. A request blocks until the response arrives, the configured
// timeout (default 60s) expires, or ctx is cancelled.
package uaccount
