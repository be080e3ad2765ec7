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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirseerhq/sirseer-roster/internal/github"
	"github.com/sirseerhq/sirseer-roster/internal/team"
)

func TestTeamTable(t *testing.T) {
	members := []team.Member{
		{Username: "alice", Name: "Alice Chen", Role: "Software Engineer", Capacity: "10 pts"},
		{Username: "bob", Name: "Bob Kowalski", Role: "Product Manager", Capacity: "8 pts"},
	}

	var buf bytes.Buffer
	if err := TeamTable(members).Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"TEAM MEMBERS",
		"@alice",
		"Alice Chen",
		"Software Engineer",
		"10 pts",
		"@bob",
		"Total members: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUserTable(t *testing.T) {
	users := []github.User{
		{Login: "alice", ID: 1, HTMLURL: "https://github.com/alice", Type: "User", SiteAdmin: true},
		{Login: "robot", ID: 2, HTMLURL: "https://github.com/robot", Type: "Bot"},
	}

	var buf bytes.Buffer
	if err := UserTable("COLLABORATORS", users).Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"COLLABORATORS",
		"alice",
		"Yes",
		"robot",
		"Bot",
		"https://github.com/alice",
		"Total: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestIssueTableTruncatesTitle(t *testing.T) {
	longTitle := strings.Repeat("long title ", 10)
	issues := []github.Issue{
		{Number: 1, Title: longTitle, State: "open", UserLogin: "alice"},
		{Number: 2, Title: "Short", State: "closed", UserLogin: "bob"},
	}

	var buf bytes.Buffer
	if err := IssueTable(issues).Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, longTitle) {
		t.Error("long title should be truncated for display")
	}
	if !strings.Contains(out, "...") {
		t.Error("truncated title should carry an ellipsis marker")
	}
	if !strings.Contains(out, "Total issues: 2") {
		t.Errorf("output missing count line:\n%s", out)
	}
}

// Table and JSON output must stay field-consistent: every JSON field is
// either a table column or deliberately elided, never fabricated.
func TestJSONWriterRoundTrip(t *testing.T) {
	members := []team.Member{
		{Username: "alice", Name: "Alice Chen", Role: "Software Engineer", Capacity: "10 pts"},
	}

	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).Write(members); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d records, want 1", len(decoded))
	}

	want := map[string]string{
		"username": "alice",
		"name":     "Alice Chen",
		"role":     "Software Engineer",
		"capacity": "10 pts",
	}
	for k, v := range want {
		if decoded[0][k] != v {
			t.Errorf("field %q = %q, want %q", k, decoded[0][k], v)
		}
	}
}
