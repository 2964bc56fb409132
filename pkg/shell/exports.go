// Package shell renders environment snapshots as eval-able shell code
// and provides the profile snippet that wires ampenv into an rc file.
package shell

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/ampenv/pkg/env"
)

// ExportLines renders the snapshot's exported variables as shell code for
// the given shell. POSIX shells get export statements, fish gets set -gx.
// Output is stable: keys appear in the snapshot's declared order.
func ExportLines(snap *env.Snapshot, shell string) string {
	vars := snap.Environ()
	var lines []string
	for _, key := range snap.Keys() {
		switch shell {
		case "fish":
			lines = append(lines, fmt.Sprintf(`set -gx %s %s`, key, fishQuote(vars[key])))
		default:
			lines = append(lines, fmt.Sprintf(`export %s=%s`, key, posixQuote(vars[key])))
		}
	}
	return strings.Join(lines, "\n")
}

// posixQuote single-quotes a value for POSIX shells. Inside single quotes
// nothing is expanded or substituted, so backticks, dollars, backslashes
// and newlines pass through verbatim; an embedded quote is written as
// close-escape-reopen.
func posixQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

// fishQuote single-quotes a value for fish, which accepts escaped quotes
// and backslashes inside single quotes.
func fishQuote(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(value) + "'"
}
