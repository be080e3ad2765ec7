// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-roster/internal/github"
	"github.com/sirseerhq/sirseer-roster/internal/output"
)

// newUsersCommand creates the users subcommand
func newUsersCommand() *cobra.Command {
	var (
		token             string
		collaboratorsOnly bool
		contributorsOnly  bool
		membersOnly       bool
		asJSON            bool
	)

	cmd := &cobra.Command{
		Use:   "users [<owner>/<repo>]",
		Short: "Fetch collaborators, contributors, and organization members",
		Long: `Fetch the users associated with a GitHub repository: collaborators,
contributors, and the members of the owning organization.

Organization membership only exists for repositories owned by an
organization; for user-owned repositories the members list is empty.

Authentication is optional but recommended:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsers(cmd.Context(), args, token, collaboratorsOnly, contributorsOnly, membersOnly, asJSON)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().BoolVar(&collaboratorsOnly, "collaborators", false, "Fetch only collaborators")
	cmd.Flags().BoolVar(&contributorsOnly, "contributors", false, "Fetch only contributors")
	cmd.Flags().BoolVar(&membersOnly, "members", false, "Fetch only organization members")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of tables")
	cmd.MarkFlagsMutuallyExclusive("collaborators", "contributors", "members")

	return cmd
}

// runUsers executes the users command
func runUsers(ctx context.Context, args []string, tokenFlag string, collaboratorsOnly, contributorsOnly, membersOnly, asJSON bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	owner, repo, err := resolveRepository(args, cfg)
	if err != nil {
		return err
	}

	client := github.NewAPIClient(getToken(tokenFlag, cfg), cfg)
	return fetchUsers(ctx, client, owner, repo, collaboratorsOnly, contributorsOnly, membersOnly, asJSON, os.Stdout)
}

// fetchUsers fetches the requested user collections and renders them to out
func fetchUsers(ctx context.Context, client github.Client, owner, repo string, collaboratorsOnly, contributorsOnly, membersOnly, asJSON bool, out io.Writer) error {
	fmt.Fprintf(os.Stderr, "Fetching users from %s/%s...", owner, repo)

	switch {
	case collaboratorsOnly:
		users, err := client.FetchCollaborators(ctx, owner, repo)
		fmt.Fprintf(os.Stderr, "\r\033[K")
		if err != nil {
			return err
		}
		return writeUsers(out, users, "COLLABORATORS", asJSON)

	case contributorsOnly:
		users, err := client.FetchContributors(ctx, owner, repo)
		fmt.Fprintf(os.Stderr, "\r\033[K")
		if err != nil {
			return err
		}
		return writeUsers(out, users, "CONTRIBUTORS", asJSON)

	case membersOnly:
		users, err := client.FetchOrgMembers(ctx, owner)
		fmt.Fprintf(os.Stderr, "\r\033[K")
		if err != nil {
			return err
		}
		return writeUsers(out, users, "ORG MEMBERS", asJSON)
	}

	userSet, err := client.FetchUsers(ctx, owner, repo)
	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
	if err != nil {
		return err
	}

	if asJSON {
		return output.NewJSONWriter(out).Write(userSet)
	}

	if err := output.UserTable("COLLABORATORS", userSet.Collaborators).Render(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := output.UserTable("CONTRIBUTORS", userSet.Contributors).Render(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return output.UserTable("ORG MEMBERS", userSet.Members).Render(out)
}

// writeUsers renders a single user collection as a table or JSON array.
func writeUsers(out io.Writer, users []github.User, title string, asJSON bool) error {
	if asJSON {
		if users == nil {
			users = []github.User{}
		}
		return output.NewJSONWriter(out).Write(users)
	}
	return output.UserTable(title, users).Render(out)
}
