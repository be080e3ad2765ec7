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

package output

import (
	"fmt"

	"github.com/sirseerhq/sirseer-roster/internal/github"
	"github.com/sirseerhq/sirseer-roster/internal/team"
)

// TeamTable builds the roster table. Usernames are shown with their
// @ marker the way the source roster writes them.
func TeamTable(members []team.Member) *Table {
	t := NewTable("TEAM MEMBERS", "Total members",
		Column{Name: "Username", Width: 16},
		Column{Name: "Name", Width: 22},
		Column{Name: "Role", Width: 25},
		Column{Name: "Capacity", Width: 10},
	)
	for _, m := range members {
		t.AddRow("@"+m.Username, m.Name, m.Role, m.Capacity)
	}
	return t
}

// UserTable builds a table for one user collection. The title names
// the collection (collaborators, contributors, or members).
func UserTable(title string, users []github.User) *Table {
	t := NewTable(title, "Total",
		Column{Name: "Login", Width: 20},
		Column{Name: "Type", Width: 10},
		Column{Name: "Admin", Width: 6},
		Column{Name: "URL", Width: 40},
	)
	for _, u := range users {
		admin := "No"
		if u.SiteAdmin {
			admin = "Yes"
		}
		t.AddRow(u.Login, u.Type, admin, u.HTMLURL)
	}
	return t
}

// IssueTable builds the issues table. Long titles are truncated for
// display; the JSON format carries them in full.
func IssueTable(issues []github.Issue) *Table {
	t := NewTable("ISSUES", "Total issues",
		Column{Name: "#", Width: 6},
		Column{Name: "Title", Width: 50},
		Column{Name: "State", Width: 8},
		Column{Name: "Author", Width: 15},
	)
	for _, issue := range issues {
		t.AddRow(
			fmt.Sprintf("%d", issue.Number),
			issue.Title,
			issue.State,
			issue.UserLogin,
		)
	}
	return t
}
