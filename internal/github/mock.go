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
	"time"

	rostererrors "github.com/sirseerhq/sirseer-roster/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Collections to return
	Collaborators []User
	Contributors  []User
	Members       []User
	Issues        []Issue
	Overview      *RepositoryOverview

	// Error to return from every call
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool

	// Track calls for verification
	CallCount int
	LastOwner string
	LastRepo  string
	LastOpts  IssueOptions
}

// NewMockClient creates a new mock client with default test data.
func NewMockClient() *MockClient {
	return &MockClient{
		Collaborators: generateTestUsers(2, "User"),
		Contributors:  generateTestUsers(3, "User"),
		Members:       generateTestUsers(1, "User"),
		Issues:        generateTestIssues(3),
		Overview:      &RepositoryOverview{TotalIssues: 3, OpenIssues: 2, ClosedIssues: 1},
	}
}

// fail returns the configured error condition, or nil.
func (m *MockClient) fail(owner, repo string) error {
	m.CallCount++
	m.LastOwner = owner
	m.LastRepo = repo

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", rostererrors.ErrInvalidToken)
	}
	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", rostererrors.ErrNetworkFailure)
	}
	if m.ShouldFailNotFound {
		return fmt.Errorf("repository not found: %w", rostererrors.ErrNotFound)
	}
	return m.Error
}

// FetchCollaborators implements the Client interface.
func (m *MockClient) FetchCollaborators(ctx context.Context, owner, repo string) ([]User, error) {
	if err := m.fail(owner, repo); err != nil {
		return nil, err
	}
	return m.Collaborators, nil
}

// FetchContributors implements the Client interface.
func (m *MockClient) FetchContributors(ctx context.Context, owner, repo string) ([]User, error) {
	if err := m.fail(owner, repo); err != nil {
		return nil, err
	}
	return m.Contributors, nil
}

// FetchOrgMembers implements the Client interface.
func (m *MockClient) FetchOrgMembers(ctx context.Context, owner string) ([]User, error) {
	if err := m.fail(owner, ""); err != nil {
		return nil, err
	}
	return m.Members, nil
}

// FetchUsers implements the Client interface.
func (m *MockClient) FetchUsers(ctx context.Context, owner, repo string) (*UserSet, error) {
	if err := m.fail(owner, repo); err != nil {
		return nil, err
	}
	return &UserSet{
		Collaborators: m.Collaborators,
		Contributors:  m.Contributors,
		Members:       m.Members,
	}, nil
}

// FetchIssues implements the Client interface.
func (m *MockClient) FetchIssues(ctx context.Context, owner, repo string, opts IssueOptions) ([]Issue, error) {
	if err := m.fail(owner, repo); err != nil {
		return nil, err
	}
	m.LastOpts = opts

	state := opts.State
	if state == "" || state == StateAll {
		return m.Issues, nil
	}

	var filtered []Issue
	for _, issue := range m.Issues {
		if issue.State == state {
			filtered = append(filtered, issue)
		}
	}
	return filtered, nil
}

// GetRepositoryOverview implements the Client interface.
func (m *MockClient) GetRepositoryOverview(ctx context.Context, owner, repo string) (*RepositoryOverview, error) {
	if err := m.fail(owner, repo); err != nil {
		return nil, err
	}
	return m.Overview, nil
}

// generateTestUsers creates numbered test users.
func generateTestUsers(count int, userType string) []User {
	users := make([]User, count)
	for i := range users {
		login := fmt.Sprintf("user%d", i+1)
		users[i] = User{
			Login:     login,
			ID:        int64(1000 + i),
			AvatarURL: fmt.Sprintf("https://avatars.example.com/%s", login),
			HTMLURL:   fmt.Sprintf("https://github.com/%s", login),
			Type:      userType,
			SiteAdmin: false,
		}
	}
	return users
}

// generateTestIssues creates numbered test issues, alternating open
// and closed states.
func generateTestIssues(count int) []Issue {
	now := time.Now().UTC().Truncate(time.Second)
	issues := make([]Issue, count)
	for i := range issues {
		state := StateOpen
		var closedAt *time.Time
		if i%2 == 1 {
			state = StateClosed
			t := now.Add(-time.Duration(i) * time.Hour)
			closedAt = &t
		}
		body := fmt.Sprintf("Body of issue %d", i+1)
		issues[i] = Issue{
			Number:    i + 1,
			Title:     fmt.Sprintf("Issue %d", i+1),
			State:     state,
			Body:      &body,
			HTMLURL:   fmt.Sprintf("https://github.com/acme/planning/issues/%d", i+1),
			UserLogin: fmt.Sprintf("user%d", i+1),
			UserType:  "User",
			CreatedAt: now.AddDate(0, 0, -(i + 1)),
			UpdatedAt: now.AddDate(0, 0, -i),
			ClosedAt:  closedAt,
			Labels:    []string{"planning"},
			Assignees: []string{fmt.Sprintf("user%d", i+1)},
			Comments:  i,
			ID:        int64(9000 + i),
		}
	}
	return issues
}
