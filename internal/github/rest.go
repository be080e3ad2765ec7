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
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shurcooL/graphql"

	"github.com/sirseerhq/sirseer-roster/internal/config"
	rostererrors "github.com/sirseerhq/sirseer-roster/internal/errors"
	"github.com/sirseerhq/sirseer-roster/internal/giterror"
)

// maxResponseSize limits how much of a response body is read. GitHub
// pages are small; anything near this size indicates a misbehaving
// endpoint rather than real data.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// APIClient implements the GitHub Client interface using the REST API
// for all record fetches and a single GraphQL query for the repository
// overview. All calls are sequential blocking requests; there is no
// retry policy beyond what the HTTP client provides by default.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	graphql    *graphql.Client
	pageSize   int
	inspector  giterror.Inspector
}

// NewAPIClient creates a new GitHub API client. The token may be empty
// for unauthenticated access to public repositories. Endpoints and the
// page size come from the configuration, which defaults to public
// GitHub.com with pages of 100.
func NewAPIClient(token string, cfg *config.Config) *APIClient {
	httpClient := newHTTPClient(token)

	pageSize := cfg.Defaults.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	return &APIClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.GitHub.APIEndpoint, "/"),
		graphql:    graphql.NewClient(cfg.GitHub.GraphQLEndpoint, httpClient),
		pageSize:   pageSize,
		inspector:  giterror.NewInspector(),
	}
}

// FetchCollaborators retrieves all collaborators of the repository.
func (c *APIClient) FetchCollaborators(ctx context.Context, owner, repo string) ([]User, error) {
	path := fmt.Sprintf("/repos/%s/%s/collaborators", owner, repo)
	users, err := c.fetchUserPages(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching collaborators for %s/%s: %w", owner, repo, err)
	}
	return users, nil
}

// FetchContributors retrieves all contributors of the repository, in
// the order the API returns them (most contributions first).
func (c *APIClient) FetchContributors(ctx context.Context, owner, repo string) ([]User, error) {
	path := fmt.Sprintf("/repos/%s/%s/contributors", owner, repo)
	users, err := c.fetchUserPages(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching contributors for %s/%s: %w", owner, repo, err)
	}
	return users, nil
}

// FetchOrgMembers retrieves the members of the owning organization.
// A 404 means the owner is a user, not an organization, and yields an
// empty slice. Any other failure, including 403, is fatal.
func (c *APIClient) FetchOrgMembers(ctx context.Context, owner string) ([]User, error) {
	path := fmt.Sprintf("/orgs/%s/members", owner)
	users, err := c.fetchUserPages(ctx, path, nil)
	if err != nil {
		if errors.Is(err, rostererrors.ErrNotFound) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("fetching members of %s: %w", owner, err)
	}
	return users, nil
}

// FetchUsers retrieves collaborators, contributors, and organization
// members with three sequential calls.
func (c *APIClient) FetchUsers(ctx context.Context, owner, repo string) (*UserSet, error) {
	collaborators, err := c.FetchCollaborators(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	contributors, err := c.FetchContributors(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	members, err := c.FetchOrgMembers(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &UserSet{
		Collaborators: collaborators,
		Contributors:  contributors,
		Members:       members,
	}, nil
}

// FetchIssues retrieves issues from the repository, accumulating pages
// until one returns fewer items than requested. Objects carrying a
// pull_request key are excluded. Results keep the API's order.
func (c *APIClient) FetchIssues(ctx context.Context, owner, repo string, opts IssueOptions) ([]Issue, error) {
	state := opts.State
	if state == "" {
		state = StateAll
	}
	if !ValidState(state) {
		return nil, fmt.Errorf("invalid issue state %q: must be open, closed, or all", state)
	}

	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = c.pageSize
	}

	issues := []Issue{}
	page := 1

	for {
		params := url.Values{}
		params.Set("state", state)
		params.Set("per_page", strconv.Itoa(pageSize))
		params.Set("page", strconv.Itoa(page))

		var batch []issueResponse
		path := fmt.Sprintf("/repos/%s/%s/issues", owner, repo)
		if err := c.getJSON(ctx, path, params, &batch); err != nil {
			return nil, fmt.Errorf("fetching issues for %s/%s: %w", owner, repo, err)
		}

		for i := range batch {
			if batch[i].PullRequest != nil {
				// The issues endpoint also returns pull requests.
				continue
			}
			issues = append(issues, batch[i].toIssue())
		}

		if len(batch) < pageSize {
			break
		}
		page++
	}

	return issues, nil
}

// fetchUserPages pages through a user-list endpoint until a short page,
// concatenating results.
func (c *APIClient) fetchUserPages(ctx context.Context, path string, extra url.Values) ([]User, error) {
	users := []User{}
	page := 1

	for {
		params := url.Values{}
		for k, vs := range extra {
			params[k] = vs
		}
		params.Set("per_page", strconv.Itoa(c.pageSize))
		params.Set("page", strconv.Itoa(page))

		var batch []User
		if err := c.getJSON(ctx, path, params, &batch); err != nil {
			return nil, err
		}

		users = append(users, batch...)
		if len(batch) < c.pageSize {
			break
		}
		page++
	}

	return users, nil
}

// getJSON performs one GET request and decodes the JSON response into v.
// Non-2xx responses are mapped to the error taxonomy; transport-level
// failures are classified as network errors.
func (c *APIClient) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.inspector.IsNetworkError(err) {
			return fmt.Errorf("%v: %w", err, rostererrors.ErrNetworkFailure)
		}
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp.StatusCode, body, resp.Header)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", endpoint, err)
	}
	return nil
}

// statusError maps a non-2xx response to the error taxonomy. The
// response body is always carried so the user sees what the API said.
func (c *APIClient) statusError(status int, body []byte, header http.Header) error {
	msg := strings.TrimSpace(string(body))

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("status %d: %s: %w", status, msg, rostererrors.ErrInvalidToken)
	case http.StatusNotFound:
		return fmt.Errorf("status %d: %s: %w", status, msg, rostererrors.ErrNotFound)
	case http.StatusForbidden, http.StatusTooManyRequests:
		if isRateLimited(status, msg, header) {
			return fmt.Errorf("status %d: %s: %w", status, msg, rostererrors.ErrRateLimit)
		}
	}

	return &rostererrors.APIError{StatusCode: status, Body: msg}
}

// isRateLimited distinguishes a rate-limit 403 from a plain forbidden
// response. A 403 with budget left is a permissions problem, not rate
// limiting.
func isRateLimited(status int, body string, header http.Header) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	if header.Get("X-RateLimit-Remaining") == "0" {
		return true
	}
	return strings.Contains(strings.ToLower(body), "rate limit")
}
