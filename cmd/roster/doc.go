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

// Package main implements the sirseer-roster command-line interface.
// This tool reads a markdown team roster and fetches user and issue
// data from GitHub repositories, rendering either aligned text tables
// or JSON.
//
// The CLI supports:
//   - Listing, searching, and filtering the markdown team roster
//   - Fetching collaborators, contributors, and organization members
//   - Fetching issues with open/closed/all state filtering
//   - A combined report spanning all of the above
//   - GitHub token authentication via flag or environment variable
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	sirseer-roster <command> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	sirseer-roster users golang/go
//	sirseer-roster issues golang/go --state open --json
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication/authorization error
//   - 3: Network error
package main
