package check

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/zeebo/blake3"
)

// Digest returns the hex BLAKE3 hash of the results' names, statuses and
// details, in order. Running the same checks on unchanged data always
// yields the same digest.
func Digest(results []Result) string {
	h := blake3.New()
	for _, r := range results {
		_, _ = io.WriteString(h, r.Name)
		_, _ = io.WriteString(h, "\x00")
		_, _ = io.WriteString(h, string(r.Status))
		_, _ = io.WriteString(h, "\x00")
		_, _ = io.WriteString(h, strings.Join(r.Details, "\x1f"))
		_, _ = io.WriteString(h, "\n")
	}
	return hex.EncodeToString(h.Sum(nil))
}
