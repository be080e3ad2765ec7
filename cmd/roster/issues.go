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

// newIssuesCommand creates the issues subcommand
func newIssuesCommand() *cobra.Command {
	var (
		token  string
		state  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "issues [<owner>/<repo>]",
		Short: "Fetch issues from a GitHub repository",
		Long: `Fetch issues from a GitHub repository. Pull requests are excluded:
the GitHub issues endpoint returns both, and anything carrying a
pull_request object is dropped.

Use --state to restrict results to open or closed issues.

Authentication is optional but recommended:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIssues(cmd.Context(), args, token, state, asJSON)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&state, "state", github.StateAll, "Filter issues by state: open, closed, or all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of a table")

	return cmd
}

// runIssues executes the issues command
func runIssues(ctx context.Context, args []string, tokenFlag, state string, asJSON bool) error {
	if !github.ValidState(state) {
		return fmt.Errorf("invalid state %q: must be one of open, closed, all", state)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	owner, repo, err := resolveRepository(args, cfg)
	if err != nil {
		return err
	}

	client := github.NewAPIClient(getToken(tokenFlag, cfg), cfg)
	return fetchIssues(ctx, client, owner, repo, state, asJSON, os.Stdout)
}

// fetchIssues fetches issues through the client and renders them to out
func fetchIssues(ctx context.Context, client github.Client, owner, repo, state string, asJSON bool, out io.Writer) error {
	fmt.Fprintf(os.Stderr, "Fetching issues from %s/%s...", owner, repo)
	issues, err := client.FetchIssues(ctx, owner, repo, github.IssueOptions{State: state})
	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
	if err != nil {
		return err
	}

	if asJSON {
		return output.NewJSONWriter(out).Write(issues)
	}
	return output.IssueTable(issues).Render(out)
}
