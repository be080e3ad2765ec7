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
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	rostererrors "github.com/sirseerhq/sirseer-roster/internal/errors"
)

var version = "dev"

// configPath is bound to the persistent --config flag and consulted by
// every subcommand when loading configuration.
var configPath string

func main() {
	// A .env file in the working directory can supply GITHUB_TOKEN and
	// endpoint overrides during development. Absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "sirseer-roster",
		Short: "Report on the people and issues of a GitHub repository",
		Long: `SirSeer Roster reports on the people involved in a GitHub repository:
the team roster kept in a markdown file, the collaborators, contributors,
and organization members known to the GitHub API, and the repository's
issues. Results render as aligned text tables or as JSON.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .sirseer-roster.yaml)")

	rootCmd.AddCommand(newTeamCommand())
	rootCmd.AddCommand(newUsersCommand())
	rootCmd.AddCommand(newIssuesCommand())
	rootCmd.AddCommand(newReportCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, rostererrors.ErrInvalidToken) ||
		errors.Is(err, rostererrors.ErrNotFound) ||
		errors.Is(err, rostererrors.ErrRateLimit) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, rostererrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
