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

// Package output renders record collections in the two report formats:
// a fixed-width aligned text table for terminals, and indented JSON for
// scripting. JSON output is lossless with respect to the record fields;
// the table may truncate long fields for display, marked with an
// ellipsis, but never fabricates values.
//
// Example usage:
//
//	table := output.IssueTable(issues)
//	if err := table.Render(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or as JSON
//	w := output.NewJSONWriter(os.Stdout)
//	if err := w.Write(issues); err != nil {
//	    log.Fatal(err)
//	}
package output
