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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTempFile creates a temporary file with the given content
func CreateTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

// CreateTeamFile writes a markdown roster with the given rows. Each row
// is [username, name, role, capacity].
func CreateTeamFile(t *testing.T, dir string, rows [][4]string) string {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("# Team\n\n")
	sb.WriteString("| Username | Name | Role | Capacity |\n")
	sb.WriteString("|----------|------|------|----------|\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", row[0], row[1], row[2], row[3])
	}

	return CreateTempFile(t, dir, "team.md", sb.String())
}
