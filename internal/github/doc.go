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

// Package github provides a client for the GitHub REST API to fetch
// the people and issues of a repository: collaborators, contributors,
// organization members, and the issue list. Raw API JSON is mapped
// directly to typed records; pull requests are filtered out of the
// issue list since GitHub returns them on the same endpoint.
//
// The package includes:
//   - A Client interface covering all fetch operations
//   - An APIClient implementation using sequential paginated REST calls,
//     plus a single GraphQL query for the repository overview
//   - Mock client for testing
//   - Type definitions for user and issue records
//
// Basic usage:
//
//	client := github.NewAPIClient("your-github-token", config.DefaultConfig())
//	issues, err := client.FetchIssues(ctx, "golang", "go", github.IssueOptions{
//	    State: github.StateOpen,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, issue := range issues {
//	    // Process issue
//	}
package github
