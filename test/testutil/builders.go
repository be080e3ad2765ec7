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

package testutil

import (
	"fmt"
	"time"
)

// UserBuilder builds raw GitHub user objects as the REST API returns them
type UserBuilder struct {
	login     string
	id        int64
	userType  string
	siteAdmin bool
}

// NewUserBuilder creates a builder for a user with the given login
func NewUserBuilder(login string) *UserBuilder {
	return &UserBuilder{
		login:    login,
		id:       int64(len(login) * 1000),
		userType: "User",
	}
}

// WithID sets the numeric user ID
func (b *UserBuilder) WithID(id int64) *UserBuilder {
	b.id = id
	return b
}

// WithType sets the user type (User, Bot, Organization)
func (b *UserBuilder) WithType(userType string) *UserBuilder {
	b.userType = userType
	return b
}

// AsSiteAdmin marks the user as a site admin
func (b *UserBuilder) AsSiteAdmin() *UserBuilder {
	b.siteAdmin = true
	return b
}

// Build produces the raw API object
func (b *UserBuilder) Build() map[string]interface{} {
	return map[string]interface{}{
		"login":      b.login,
		"id":         b.id,
		"avatar_url": fmt.Sprintf("https://avatars.example.com/u/%d", b.id),
		"html_url":   fmt.Sprintf("https://github.com/%s", b.login),
		"type":       b.userType,
		"site_admin": b.siteAdmin,
	}
}

// GenerateUsers builds count sequential users with logins prefix-1..prefix-count
func GenerateUsers(prefix string, count int) []map[string]interface{} {
	users := make([]map[string]interface{}, 0, count)
	for i := 1; i <= count; i++ {
		users = append(users, NewUserBuilder(fmt.Sprintf("%s-%d", prefix, i)).WithID(int64(i)).Build())
	}
	return users
}

// IssueBuilder builds raw GitHub issue objects as the REST API returns them
type IssueBuilder struct {
	number      int
	title       string
	state       string
	body        interface{}
	author      string
	labels      []string
	assignees   []string
	comments    int
	createdAt   time.Time
	closedAt    interface{}
	pullRequest bool
}

// NewIssueBuilder creates a builder for an issue with the given number
func NewIssueBuilder(number int) *IssueBuilder {
	return &IssueBuilder{
		number:    number,
		title:     fmt.Sprintf("Issue %d", number),
		state:     "open",
		author:    "octocat",
		createdAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(number) * time.Hour),
	}
}

// WithTitle sets the issue title
func (b *IssueBuilder) WithTitle(title string) *IssueBuilder {
	b.title = title
	return b
}

// WithState sets the issue state
func (b *IssueBuilder) WithState(state string) *IssueBuilder {
	b.state = state
	return b
}

// WithBody sets the issue body
func (b *IssueBuilder) WithBody(body string) *IssueBuilder {
	b.body = body
	return b
}

// WithAuthor sets the issue author login
func (b *IssueBuilder) WithAuthor(author string) *IssueBuilder {
	b.author = author
	return b
}

// WithLabels sets the issue labels
func (b *IssueBuilder) WithLabels(labels ...string) *IssueBuilder {
	b.labels = labels
	return b
}

// WithAssignees sets the issue assignees
func (b *IssueBuilder) WithAssignees(assignees ...string) *IssueBuilder {
	b.assignees = assignees
	return b
}

// WithComments sets the comment count
func (b *IssueBuilder) WithComments(count int) *IssueBuilder {
	b.comments = count
	return b
}

// Closed marks the issue closed at the given time
func (b *IssueBuilder) Closed(at time.Time) *IssueBuilder {
	b.state = "closed"
	b.closedAt = at.Format(time.RFC3339)
	return b
}

// AsPullRequest attaches a pull_request object, which marks the record
// as a pull request rather than an issue
func (b *IssueBuilder) AsPullRequest() *IssueBuilder {
	b.pullRequest = true
	return b
}

// Build produces the raw API object
func (b *IssueBuilder) Build() map[string]interface{} {
	labels := make([]map[string]interface{}, 0, len(b.labels))
	for _, name := range b.labels {
		labels = append(labels, map[string]interface{}{"name": name})
	}
	assignees := make([]map[string]interface{}, 0, len(b.assignees))
	for _, login := range b.assignees {
		assignees = append(assignees, map[string]interface{}{"login": login})
	}

	issue := map[string]interface{}{
		"number":     b.number,
		"id":         int64(b.number) * 100,
		"title":      b.title,
		"state":      b.state,
		"body":       b.body,
		"html_url":   fmt.Sprintf("https://github.com/acme/widgets/issues/%d", b.number),
		"user":       map[string]interface{}{"login": b.author, "type": "User"},
		"labels":     labels,
		"assignees":  assignees,
		"comments":   b.comments,
		"created_at": b.createdAt.Format(time.RFC3339),
		"updated_at": b.createdAt.Format(time.RFC3339),
		"closed_at":  b.closedAt,
	}
	if b.pullRequest {
		issue["pull_request"] = map[string]interface{}{
			"url": fmt.Sprintf("https://api.github.com/repos/acme/widgets/pulls/%d", b.number),
		}
	}
	return issue
}

// GenerateIssues builds count sequential open issues
func GenerateIssues(count int) []map[string]interface{} {
	issues := make([]map[string]interface{}, 0, count)
	for i := 1; i <= count; i++ {
		issues = append(issues, NewIssueBuilder(i).Build())
	}
	return issues
}
