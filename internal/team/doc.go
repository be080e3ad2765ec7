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

// Package team parses a markdown team roster into member records.
// The roster is a pipe-delimited markdown table whose header row names
// the username, name, role, and capacity columns. Parsing is tolerant:
// malformed rows are skipped rather than reported, and a table with no
// parseable rows yields an empty roster.
//
// Basic usage:
//
//	members, err := team.Load("team.md")
//	if err != nil {
//	    // Handle error
//	}
//	if m, ok := team.FindByUsername(members, "alice"); ok {
//	    fmt.Println(m.Name)
//	}
package team
