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

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchCollaborators retrieves all users with direct access to the
	// repository, paging through the collaborators endpoint.
	FetchCollaborators(ctx context.Context, owner, repo string) ([]User, error)

	// FetchContributors retrieves all users who have committed to the
	// repository, in the contribution order the API returns.
	FetchContributors(ctx context.Context, owner, repo string) ([]User, error)

	// FetchOrgMembers retrieves the members of the organization that
	// owns the repository. When the owner is an individual rather than
	// an organization, the API answers 404 and the result is an empty
	// slice, not an error.
	FetchOrgMembers(ctx context.Context, owner string) ([]User, error)

	// FetchUsers retrieves all three user collections with sequential
	// calls and returns them as one named set.
	FetchUsers(ctx context.Context, owner, repo string) (*UserSet, error)

	// FetchIssues retrieves issues from the repository, paging until a
	// short page, excluding pull requests. The state filter defaults
	// to all.
	FetchIssues(ctx context.Context, owner, repo string, opts IssueOptions) ([]Issue, error)

	// GetRepositoryOverview retrieves basic repository metadata
	// including issue totals. Used for the combined report header.
	GetRepositoryOverview(ctx context.Context, owner, repo string) (*RepositoryOverview, error)
}
