package digest

import (
	"strings"

	"github.com/vmunix/plexdigest/internal/library"
)

// Format renders summaries as the report body: one line per summary, in
// order, each terminated by a newline. No summaries yields "".
func Format(summaries []library.Summary) string {
	var b strings.Builder
	for _, s := range summaries {
		b.WriteString(s.Line())
		b.WriteByte('\n')
	}
	return b.String()
}
