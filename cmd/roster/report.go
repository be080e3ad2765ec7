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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	rostererrors "github.com/sirseerhq/sirseer-roster/internal/errors"
	"github.com/sirseerhq/sirseer-roster/internal/github"
	"github.com/sirseerhq/sirseer-roster/internal/output"
	"github.com/sirseerhq/sirseer-roster/internal/team"
)

// report is the combined JSON document the report command emits.
type report struct {
	Repository *github.RepositoryOverview `json:"repository,omitempty"`
	Team       []team.Member              `json:"team"`
	Users      *github.UserSet            `json:"users"`
	Issues     []github.Issue             `json:"issues"`
}

// newReportCommand creates the report subcommand
func newReportCommand() *cobra.Command {
	var (
		token    string
		teamFile string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "report [<owner>/<repo>]",
		Short: "Produce a combined team, users, and issues report",
		Long: `Produce a combined report for a repository: a repository overview,
the markdown team roster, the users known to the GitHub API, and all
issues.

The overview and roster sections are best-effort: a missing roster file
or an overview fetch failure drops the section with a warning instead
of failing the report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), args, token, teamFile, asJSON)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&teamFile, "file", "", "Path to the roster file (default: team_file from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of tables")

	return cmd
}

// runReport executes the report command
func runReport(ctx context.Context, args []string, tokenFlag, teamFile string, asJSON bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	owner, repo, err := resolveRepository(args, cfg)
	if err != nil {
		return err
	}
	if teamFile == "" {
		teamFile = cfg.Defaults.TeamFile
	}

	client := github.NewAPIClient(getToken(tokenFlag, cfg), cfg)
	return buildReport(ctx, client, owner, repo, teamFile, asJSON, os.Stdout)
}

// buildReport assembles the combined report through the client and
// renders it to out
func buildReport(ctx context.Context, client github.Client, owner, repo, teamFile string, asJSON bool, out io.Writer) error {
	overview, err := client.GetRepositoryOverview(ctx, owner, repo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not fetch repository overview: %v\n", err)
		overview = nil
	}

	members, err := team.Load(teamFile)
	if err != nil {
		if !errors.Is(err, rostererrors.ErrTeamFileNotFound) {
			return err
		}
		fmt.Fprintf(os.Stderr, "Warning: no team roster at %s, skipping team section\n", teamFile)
		members = nil
	}

	fmt.Fprintf(os.Stderr, "Fetching users from %s/%s...", owner, repo)
	userSet, err := client.FetchUsers(ctx, owner, repo)
	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Fetching issues from %s/%s...", owner, repo)
	issues, err := client.FetchIssues(ctx, owner, repo, github.IssueOptions{State: github.StateAll})
	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
	if err != nil {
		return err
	}

	if asJSON {
		if members == nil {
			members = []team.Member{}
		}
		return output.NewJSONWriter(out).Write(report{
			Repository: overview,
			Team:       members,
			Users:      userSet,
			Issues:     issues,
		})
	}

	fmt.Fprintf(out, "REPORT: %s/%s\n", owner, repo)
	if overview != nil {
		if overview.Description != "" {
			fmt.Fprintln(out, overview.Description)
		}
		fmt.Fprintf(out, "Issues: %d total, %d open, %d closed\n",
			overview.TotalIssues, overview.OpenIssues, overview.ClosedIssues)
	}
	fmt.Fprintln(out)

	if members != nil {
		if err := output.TeamTable(members).Render(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if err := output.UserTable("COLLABORATORS", userSet.Collaborators).Render(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := output.UserTable("CONTRIBUTORS", userSet.Contributors).Render(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := output.UserTable("ORG MEMBERS", userSet.Members).Render(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return output.IssueTable(issues).Render(out)
}
