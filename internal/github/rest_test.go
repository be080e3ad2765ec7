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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/sirseerhq/sirseer-roster/internal/config"
	rostererrors "github.com/sirseerhq/sirseer-roster/internal/errors"
)

// newTestClient builds an APIClient pointed at a test server.
func newTestClient(t *testing.T, serverURL string, pageSize int) *APIClient {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.GitHub.APIEndpoint = serverURL
	cfg.GitHub.GraphQLEndpoint = serverURL + "/graphql"
	cfg.Defaults.PageSize = pageSize
	return NewAPIClient("", cfg)
}

// rawUser builds one user object in the wire shape of the API.
func rawUser(login string, id int) map[string]any {
	return map[string]any{
		"login":      login,
		"id":         id,
		"avatar_url": "https://avatars.example.com/" + login,
		"html_url":   "https://github.com/" + login,
		"type":       "User",
		"site_admin": false,
	}
}

func TestFetchCollaborators(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/acme/planning/collaborators" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			rawUser("alice", 1),
			rawUser("bob", 2),
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100)
	users, err := client.FetchCollaborators(context.Background(), "acme", "planning")
	if err != nil {
		t.Fatalf("FetchCollaborators failed: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	want := User{
		Login:     "alice",
		ID:        1,
		AvatarURL: "https://avatars.example.com/alice",
		HTMLURL:   "https://github.com/alice",
		Type:      "User",
		SiteAdmin: false,
	}
	if users[0] != want {
		t.Errorf("users[0] = %+v, want %+v", users[0], want)
	}
}

func TestFetchUserPagesPagination(t *testing.T) {
	// Page size 2: two full pages then a short one.
	pages := map[string][]map[string]any{
		"1": {rawUser("u1", 1), rawUser("u2", 2)},
		"2": {rawUser("u3", 3), rawUser("u4", 4)},
		"3": {rawUser("u5", 5)},
	}

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if got := r.URL.Query().Get("per_page"); got != "2" {
			t.Errorf("per_page = %s, want 2", got)
		}
		page := r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pages[page])
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 2)
	users, err := client.FetchContributors(context.Background(), "acme", "planning")
	if err != nil {
		t.Fatalf("FetchContributors failed: %v", err)
	}

	if requests != 3 {
		t.Errorf("made %d requests, want 3", requests)
	}
	if len(users) != 5 {
		t.Fatalf("got %d users, want 5", len(users))
	}
	// Concatenated in page order
	for i, u := range users {
		if want := fmt.Sprintf("u%d", i+1); u.Login != want {
			t.Errorf("users[%d].Login = %s, want %s", i, u.Login, want)
		}
	}
}

func TestFetchOrgMembersNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100)
	members, err := client.FetchOrgMembers(context.Background(), "someuser")
	if err != nil {
		t.Fatalf("404 on members endpoint should not be an error, got: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("got %d members, want 0", len(members))
	}
}

func TestFetchOrgMembersForbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "42")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Must have admin rights"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100)
	_, err := client.FetchOrgMembers(context.Background(), "acme")
	if err == nil {
		t.Fatal("403 on members endpoint should be fatal")
	}

	var apiErr *rostererrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Error("APIError should carry the response body")
	}
}

func TestFetchUsersCombined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/repos/acme/planning/collaborators":
			_ = json.NewEncoder(w).Encode([]map[string]any{rawUser("alice", 1)})
		case "/repos/acme/planning/contributors":
			_ = json.NewEncoder(w).Encode([]map[string]any{rawUser("alice", 1), rawUser("bob", 2)})
		case "/orgs/acme/members":
			_ = json.NewEncoder(w).Encode([]map[string]any{rawUser("carol", 3)})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100)
	set, err := client.FetchUsers(context.Background(), "acme", "planning")
	if err != nil {
		t.Fatalf("FetchUsers failed: %v", err)
	}

	if len(set.Collaborators) != 1 || len(set.Contributors) != 2 || len(set.Members) != 1 {
		t.Errorf("collection sizes = %d/%d/%d, want 1/2/1",
			len(set.Collaborators), len(set.Contributors), len(set.Members))
	}

	// The union concatenates without deduplication: alice appears twice.
	all := set.All()
	if len(all) != 4 {
		t.Fatalf("All() returned %d users, want 4", len(all))
	}
	aliceCount := 0
	for _, u := range all {
		if u.Login == "alice" {
			aliceCount++
		}
	}
	if aliceCount != 2 {
		t.Errorf("alice appears %d times in union, want 2", aliceCount)
	}
}

func TestFetchIssuesExcludesPullRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"number": 3,
				"title": "Real issue",
				"state": "open",
				"body": "Something is broken",
				"html_url": "https://github.com/acme/planning/issues/3",
				"user": {"login": "alice", "type": "User"},
				"created_at": "2025-01-10T12:00:00Z",
				"updated_at": "2025-01-11T09:30:00Z",
				"closed_at": null,
				"labels": [{"name": "bug"}, {"name": "urgent"}],
				"assignees": [{"login": "bob"}],
				"comments": 4,
				"id": 9001
			},
			{
				"number": 4,
				"title": "A pull request in disguise",
				"state": "open",
				"user": {"login": "bob", "type": "User"},
				"created_at": "2025-01-12T12:00:00Z",
				"updated_at": "2025-01-12T12:00:00Z",
				"pull_request": {"url": "https://api.github.com/repos/acme/planning/pulls/4"},
				"id": 9002
			}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100)
	issues, err := client.FetchIssues(context.Background(), "acme", "planning", IssueOptions{})
	if err != nil {
		t.Fatalf("FetchIssues failed: %v", err)
	}

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1 (pull request must be excluded)", len(issues))
	}

	issue := issues[0]
	if issue.Number != 3 {
		t.Errorf("Number = %d, want 3", issue.Number)
	}
	if issue.UserLogin != "alice" || issue.UserType != "User" {
		t.Errorf("user = %s/%s, want alice/User", issue.UserLogin, issue.UserType)
	}
	if issue.Body == nil || *issue.Body != "Something is broken" {
		t.Errorf("Body = %v, want 'Something is broken'", issue.Body)
	}
	if issue.ClosedAt != nil {
		t.Errorf("ClosedAt = %v, want nil for open issue", issue.ClosedAt)
	}
	if len(issue.Labels) != 2 || issue.Labels[0] != "bug" || issue.Labels[1] != "urgent" {
		t.Errorf("Labels = %v, want [bug urgent]", issue.Labels)
	}
	if len(issue.Assignees) != 1 || issue.Assignees[0] != "bob" {
		t.Errorf("Assignees = %v, want [bob]", issue.Assignees)
	}
	if issue.Comments != 4 {
		t.Errorf("Comments = %d, want 4", issue.Comments)
	}
}

func TestFetchIssuesPagination(t *testing.T) {
	makeIssue := func(number int) map[string]any {
		return map[string]any{
			"number":     number,
			"title":      fmt.Sprintf("Issue %d", number),
			"state":      "open",
			"html_url":   fmt.Sprintf("https://github.com/acme/planning/issues/%d", number),
			"user":       map[string]any{"login": "alice", "type": "User"},
			"created_at": "2025-01-10T12:00:00Z",
			"updated_at": "2025-01-10T12:00:00Z",
			"id":         number,
		}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("state"); got != "all" {
			t.Errorf("state = %s, want all (default)", got)
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		switch page {
		case 1:
			_ = json.NewEncoder(w).Encode([]map[string]any{makeIssue(1), makeIssue(2)})
		case 2:
			_ = json.NewEncoder(w).Encode([]map[string]any{makeIssue(3)})
		default:
			t.Errorf("unexpected page %d", page)
			_ = json.NewEncoder(w).Encode([]map[string]any{})
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 2)
	issues, err := client.FetchIssues(context.Background(), "acme", "planning", IssueOptions{})
	if err != nil {
		t.Fatalf("FetchIssues failed: %v", err)
	}

	if len(issues) != 3 {
		t.Fatalf("got %d issues, want 3", len(issues))
	}
	// API order is preserved across pages
	for i, issue := range issues {
		if issue.Number != i+1 {
			t.Errorf("issues[%d].Number = %d, want %d", i, issue.Number, i+1)
		}
	}
}

func TestFetchIssuesStateFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("state"); got != "closed" {
			t.Errorf("state = %s, want closed", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 100)
	issues, err := client.FetchIssues(context.Background(), "acme", "planning", IssueOptions{State: StateClosed})
	if err != nil {
		t.Fatalf("FetchIssues failed: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("got %d issues, want 0 for empty repository", len(issues))
	}
}

func TestFetchIssuesInvalidState(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0", 100)
	_, err := client.FetchIssues(context.Background(), "acme", "planning", IssueOptions{State: "merged"})
	if err == nil {
		t.Fatal("expected error for invalid state")
	}
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		headers    map[string]string
		body       string
		wantErr    error
		wantAPI    bool
	}{
		{
			name:       "401 maps to invalid token",
			statusCode: http.StatusUnauthorized,
			body:       `{"message": "Bad credentials"}`,
			wantErr:    rostererrors.ErrInvalidToken,
		},
		{
			name:       "404 maps to not found",
			statusCode: http.StatusNotFound,
			body:       `{"message": "Not Found"}`,
			wantErr:    rostererrors.ErrNotFound,
		},
		{
			name:       "rate limited 403 maps to rate limit",
			statusCode: http.StatusForbidden,
			headers:    map[string]string{"X-RateLimit-Remaining": "0"},
			body:       `{"message": "API rate limit exceeded"}`,
			wantErr:    rostererrors.ErrRateLimit,
		},
		{
			name:       "429 maps to rate limit",
			statusCode: http.StatusTooManyRequests,
			body:       `{"message": "too many requests"}`,
			wantErr:    rostererrors.ErrRateLimit,
		},
		{
			name:       "plain 403 is an api error",
			statusCode: http.StatusForbidden,
			headers:    map[string]string{"X-RateLimit-Remaining": "99"},
			body:       `{"message": "Forbidden"}`,
			wantAPI:    true,
		},
		{
			name:       "500 is an api error",
			statusCode: http.StatusInternalServerError,
			body:       "Internal Server Error",
			wantAPI:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL, 100)
			_, err := client.FetchCollaborators(context.Background(), "acme", "planning")
			if err == nil {
				t.Fatal("expected error")
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantAPI {
				var apiErr *rostererrors.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %v, want APIError", err)
				}
				if apiErr.StatusCode != tt.statusCode {
					t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
				}
			}
		})
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	// Server is closed before the request goes out.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newTestClient(t, serverURL, 100)
	_, err := client.FetchCollaborators(context.Background(), "acme", "planning")
	if err == nil {
		t.Fatal("expected error against closed server")
	}
	if !errors.Is(err, rostererrors.ErrNetworkFailure) {
		t.Errorf("error = %v, want ErrNetworkFailure", err)
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, server.URL, 100)
	if _, err := client.FetchCollaborators(ctx, "acme", "planning"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
