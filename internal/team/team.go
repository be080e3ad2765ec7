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

package team

import (
	"fmt"
	"os"
	"sort"
	"strings"

	rostererrors "github.com/sirseerhq/sirseer-roster/internal/errors"
)

// Member represents one row of the team roster table. Field order
// matches the column order of the source table and the JSON output.
type Member struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Capacity string `json:"capacity"`
}

// Load reads the markdown roster at path and parses it into members.
// A missing file is reported as ErrTeamFileNotFound carrying the path.
func Load(path string) ([]Member, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", rostererrors.ErrTeamFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read team file %s: %w", path, err)
	}

	return Parse(string(data)), nil
}

// Parse extracts team members from markdown content. It locates the
// first pipe-delimited table whose header row names a username column,
// skips the header and separator rows, and maps each remaining row to
// a Member. Rows with fewer than four populated cells are skipped.
// Content without a recognizable table yields an empty slice.
func Parse(content string) []Member {
	var members []Member

	inTable := false
	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)

		if !strings.HasPrefix(stripped, "|") {
			if inTable {
				// Table ended
				break
			}
			continue
		}

		if isSeparatorRow(stripped) {
			continue
		}

		cells := splitRow(stripped)
		if !inTable {
			if isHeaderRow(cells) {
				inTable = true
			}
			continue
		}

		if countPopulated(cells) < 4 {
			continue
		}

		members = append(members, Member{
			Username: strings.TrimLeft(cells[0], "@"),
			Name:     cells[1],
			Role:     cells[2],
			Capacity: cells[3],
		})
	}

	return members
}

// FindByUsername returns the first member whose username matches
// exactly. The second return value reports whether a match was found.
func FindByUsername(members []Member, username string) (Member, bool) {
	for _, m := range members {
		if m.Username == username {
			return m, true
		}
	}
	return Member{}, false
}

// FilterByRole returns all members whose role matches exactly,
// preserving table order.
func FilterByRole(members []Member, role string) []Member {
	var matched []Member
	for _, m := range members {
		if m.Role == role {
			matched = append(matched, m)
		}
	}
	return matched
}

// Roles returns the sorted set of distinct roles in the roster.
func Roles(members []Member) []string {
	seen := make(map[string]struct{})
	for _, m := range members {
		seen[m.Role] = struct{}{}
	}

	roles := make([]string, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// splitRow splits a pipe-delimited table row into trimmed cells,
// dropping the outer delimiters.
func splitRow(row string) []string {
	trimmed := strings.Trim(row, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// isHeaderRow reports whether the cells look like the roster header.
// Column names are matched case-insensitively.
func isHeaderRow(cells []string) bool {
	if len(cells) < 4 {
		return false
	}
	for _, c := range cells {
		if strings.EqualFold(c, "username") {
			return true
		}
	}
	return false
}

// isSeparatorRow reports whether the row is a markdown header separator
// such as |---|---|.
func isSeparatorRow(row string) bool {
	return strings.Contains(row, "---")
}

// countPopulated returns the number of non-empty cells.
func countPopulated(cells []string) int {
	n := 0
	for _, c := range cells {
		if c != "" {
			n++
		}
	}
	return n
}
