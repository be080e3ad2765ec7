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

package github

import (
	"context"
	"fmt"

	"github.com/shurcooL/graphql"

	rostererrors "github.com/sirseerhq/sirseer-roster/internal/errors"
)

// GetRepositoryOverview retrieves basic repository metadata including
// issue totals. This is a single minimal GraphQL query; the record
// fetches stay on the REST API because their JSON maps directly onto
// the report records.
func (c *APIClient) GetRepositoryOverview(ctx context.Context, owner, repo string) (*RepositoryOverview, error) {
	var query struct {
		Repository struct {
			Description graphql.String
			Issues      struct {
				TotalCount graphql.Int
			} `graphql:"issues"`
			OpenIssues struct {
				TotalCount graphql.Int
			} `graphql:"openIssues: issues(states: [OPEN])"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner": graphql.String(owner),
		"repo":  graphql.String(repo),
	}

	if err := c.graphql.Query(ctx, &query, variables); err != nil {
		return nil, c.mapGraphQLError(err, owner, repo)
	}

	total := int(query.Repository.Issues.TotalCount)
	open := int(query.Repository.OpenIssues.TotalCount)

	return &RepositoryOverview{
		Description:  string(query.Repository.Description),
		TotalIssues:  total,
		OpenIssues:   open,
		ClosedIssues: total - open,
	}, nil
}

// mapGraphQLError maps GraphQL errors to the error taxonomy. The
// GraphQL library surfaces failures as opaque strings, so the
// inspector classifies them.
func (c *APIClient) mapGraphQLError(err error, owner, repo string) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", rostererrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", rostererrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("repository '%s/%s' not found. Please check the repository name and your access permissions: %w", owner, repo, rostererrors.ErrNotFound)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("%v: %w", err, rostererrors.ErrNetworkFailure)
	}

	return fmt.Errorf("fetching repository overview for %s/%s: %w", owner, repo, err)
}
