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

import "time"

// User represents a GitHub user as returned by the collaborators,
// contributors, and organization-members endpoints. One instance is
// created per API-returned object; the three collections may contain
// overlapping logins and are never deduplicated.
type User struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Type      string `json:"type"`
	SiteAdmin bool   `json:"site_admin"`
}

// UserSet holds the three user collections of a repository. The
// collections are independent: a login appearing in more than one of
// them appears in each.
type UserSet struct {
	Collaborators []User `json:"collaborators"`
	Contributors  []User `json:"contributors"`
	Members       []User `json:"members"`
}

// All returns the concatenation of the three collections, in
// collaborators, contributors, members order. No deduplication is
// performed.
func (s *UserSet) All() []User {
	all := make([]User, 0, len(s.Collaborators)+len(s.Contributors)+len(s.Members))
	all = append(all, s.Collaborators...)
	all = append(all, s.Contributors...)
	all = append(all, s.Members...)
	return all
}

// Issue represents a GitHub issue with the fields the reports render.
// Pull requests never appear here: GitHub's issues endpoint returns
// them too and the client filters them out. Body and ClosedAt are
// pointers because the API reports them as null for body-less and open
// issues respectively.
type Issue struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	Body      *string    `json:"body"`
	HTMLURL   string     `json:"html_url"`
	UserLogin string     `json:"user_login"`
	UserType  string     `json:"user_type"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at"`
	Labels    []string   `json:"labels"`
	Assignees []string   `json:"assignees"`
	Comments  int        `json:"comments"`
	ID        int64      `json:"id"`
}

// Issue state filters accepted by the issues endpoint.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
)

// ValidState reports whether s is an accepted issue state filter.
func ValidState(s string) bool {
	switch s {
	case StateOpen, StateClosed, StateAll:
		return true
	default:
		return false
	}
}

// IssueOptions configures how issues are fetched.
type IssueOptions struct {
	// State filters issues by state: open, closed, or all.
	// Defaults to all if not specified.
	State string

	// PageSize controls how many issues to fetch per page.
	// Defaults to the client's page size if not specified.
	// Maximum is 100 per GitHub's API limits.
	PageSize int
}

// Default values for fetch operations
const defaultPageSize = 100

// RepositoryOverview contains basic repository metadata fetched through
// the GraphQL API. Used to put headline numbers on the combined report.
type RepositoryOverview struct {
	Description  string `json:"description"`
	TotalIssues  int    `json:"total_issues"`
	OpenIssues   int    `json:"open_issues"`
	ClosedIssues int    `json:"closed_issues"`
}

// issueResponse mirrors the wire shape of one object from the REST
// issues endpoint. Only the fields the Issue record needs are decoded.
type issueResponse struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	Body      *string    `json:"body"`
	HTMLURL   string     `json:"html_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at"`
	Comments  int        `json:"comments"`
	ID        int64      `json:"id"`

	User struct {
		Login string `json:"login"`
		Type  string `json:"type"`
	} `json:"user"`

	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`

	Assignees []struct {
		Login string `json:"login"`
	} `json:"assignees"`

	// Present only when the object is actually a pull request.
	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request"`
}

// toIssue flattens the wire shape into the Issue record, reducing
// labels to their names and assignees to their logins.
func (r *issueResponse) toIssue() Issue {
	labels := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		labels[i] = l.Name
	}

	assignees := make([]string, len(r.Assignees))
	for i, a := range r.Assignees {
		assignees[i] = a.Login
	}

	return Issue{
		Number:    r.Number,
		Title:     r.Title,
		State:     r.State,
		Body:      r.Body,
		HTMLURL:   r.HTMLURL,
		UserLogin: r.User.Login,
		UserType:  r.User.Type,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		ClosedAt:  r.ClosedAt,
		Labels:    labels,
		Assignees: assignees,
		Comments:  r.Comments,
		ID:        r.ID,
	}
}
