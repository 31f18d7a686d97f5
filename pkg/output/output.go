package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/datacheck/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult writes a check result with colored status, details indented
// under the name.
func PrintResult(w io.Writer, r check.Result) {
	indent := "     "
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       "
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// PrintResults writes every result followed by a one-line summary.
func PrintResults(w io.Writer, results []check.Result) {
	failed := 0
	for _, r := range results {
		PrintResult(w, r)
		if !r.OK() {
			failed++
		}
	}
	fmt.Fprintf(w, "%s%d checked, %d failed%s\n", dim, len(results), failed, reset)
}

// PrintDigest writes the report digest.
func PrintDigest(w io.Writer, digest string) {
	fmt.Fprintf(w, "%s %s\n", formatLabel("digest:"), digest)
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + rest
}
