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
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	userAgent      = "sirseer-roster"
	acceptHeader   = "application/vnd.github+json"
	apiVersion     = "2022-11-28"
	defaultTimeout = 30 * time.Second
)

// headerTransport adds the standard GitHub API headers to every request.
type headerTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	return t.base.RoundTrip(req)
}

// newHTTPClient builds the HTTP client all API calls go through. The
// base transport uses connection pooling since every command issues a
// run of sequential requests against the same host. When a token is
// present the client is wrapped with an oauth2 bearer-token source;
// without a token requests go out unauthenticated, which still works
// against public repositories at lower rate limits.
func newHTTPClient(token string) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	base := &http.Client{
		Transport: &headerTransport{base: transport},
		Timeout:   defaultTimeout,
	}

	if token == "" {
		return base
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})

	client := oauth2.NewClient(ctx, source)
	client.Timeout = defaultTimeout
	return client
}
