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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
)

// MockServer wraps httptest.Server with request tracking
type MockServer struct {
	*httptest.Server
	RequestCount int32
}

// APIData holds the canned collections a GitHubAPIServer serves.
type APIData struct {
	Collaborators []map[string]interface{}
	Contributors  []map[string]interface{}
	OrgMembers    []map[string]interface{}
	Issues        []map[string]interface{}

	// NoOrg makes the members endpoint answer 404, as GitHub does
	// for user-owned repositories.
	NoOrg bool
}

// NewMockServer creates a mock server with the given handler
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()

	mock := &MockServer{}
	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.RequestCount, 1)
		handler(w, r)
	}))
	t.Cleanup(mock.Close)
	return mock
}

// NewGitHubAPIServer creates a mock server that mimics the GitHub REST
// endpoints the roster commands hit, with per_page/page pagination.
func NewGitHubAPIServer(t *testing.T, data APIData) *MockServer {
	t.Helper()

	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/collaborators"):
			writePage(w, r, data.Collaborators)
		case strings.HasSuffix(r.URL.Path, "/contributors"):
			writePage(w, r, data.Contributors)
		case strings.Contains(r.URL.Path, "/orgs/") && strings.HasSuffix(r.URL.Path, "/members"):
			if data.NoOrg {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"message": "Not Found"}`))
				return
			}
			writePage(w, r, data.OrgMembers)
		case strings.HasSuffix(r.URL.Path, "/issues"):
			writePage(w, r, filterIssues(data.Issues, r.URL.Query().Get("state")))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Not Found"}`))
		}
	})
}

// NewErrorServer creates a mock server that always returns the given error
func NewErrorServer(t *testing.T, statusCode int, body string) *MockServer {
	t.Helper()

	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	})
}

// writePage slices the collection according to per_page and page query
// parameters and writes the window as a JSON array.
func writePage(w http.ResponseWriter, r *http.Request, items []map[string]interface{}) {
	perPage, err := strconv.Atoi(r.URL.Query().Get("per_page"))
	if err != nil || perPage < 1 {
		perPage = 30
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items[start:end])
}

func filterIssues(issues []map[string]interface{}, state string) []map[string]interface{} {
	if state == "" || state == "all" {
		return issues
	}
	filtered := make([]map[string]interface{}, 0, len(issues))
	for _, issue := range issues {
		if issue["state"] == state {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
