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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-roster/internal/output"
	"github.com/sirseerhq/sirseer-roster/internal/team"
)

// newTeamCommand creates the team subcommand
func newTeamCommand() *cobra.Command {
	var (
		filePath  string
		username  string
		role      string
		listRoles bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "team",
		Short: "List team members from the markdown roster",
		Long: `List team members parsed from a markdown roster file.

The roster is a markdown table with username, name, role, and capacity
columns. Rows with missing cells are skipped. A leading @ on usernames
is stripped.

Use --username to look up a single member, --role to filter by role,
or --roles to list the distinct roles in the roster.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeam(filePath, username, role, listRoles, asJSON)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Path to the roster file (default: team_file from config)")
	cmd.Flags().StringVar(&username, "username", "", "Look up a single member by exact username")
	cmd.Flags().StringVar(&role, "role", "", "List only members with this exact role")
	cmd.Flags().BoolVar(&listRoles, "roles", false, "List the distinct roles in the roster")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of a table")
	cmd.MarkFlagsMutuallyExclusive("username", "role", "roles")

	return cmd
}

// runTeam executes the team command
func runTeam(filePath, username, role string, listRoles, asJSON bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if filePath == "" {
		filePath = cfg.Defaults.TeamFile
	}

	members, err := team.Load(filePath)
	if err != nil {
		return err
	}

	switch {
	case username != "":
		member, ok := team.FindByUsername(members, username)
		if !ok {
			// A missing member is an empty result, not a failure.
			fmt.Printf("No member found with username %q\n", username)
			return nil
		}
		if asJSON {
			return output.NewJSONWriter(os.Stdout).Write(member)
		}
		return output.TeamTable([]team.Member{member}).Render(os.Stdout)

	case listRoles:
		roles := team.Roles(members)
		if asJSON {
			return output.NewJSONWriter(os.Stdout).Write(roles)
		}
		for _, r := range roles {
			fmt.Println(r)
		}
		return nil

	case role != "":
		members = team.FilterByRole(members, role)
	}

	if asJSON {
		if members == nil {
			members = []team.Member{}
		}
		return output.NewJSONWriter(os.Stdout).Write(members)
	}
	return output.TeamTable(members).Render(os.Stdout)
}
