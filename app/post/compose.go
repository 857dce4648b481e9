package post

import (
	"fmt"
	"strings"
	"time"

	"github.com/lysyi3m/rss-press/app/slug"
)

const DefaultMessage = "This is the post content."

// Compose renders a new post: front matter with the populated attributes,
// then the message.
func Compose(title string, date time.Time, message string) []byte {
	attributes := [][2]string{
		{"title", strings.TrimSpace(title)},
		{"date", date.UTC().Format(DateTimeLayout)},
	}

	var b strings.Builder
	b.WriteString(Delimiter + "\n")
	for _, attr := range attributes {
		if attr[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", attr[0], attr[1])
	}
	b.WriteString(Delimiter + "\n")
	b.WriteString(message)
	b.WriteString("\n")

	return []byte(b.String())
}

// DefaultFilename derives a file name (without extension) from the creation
// time, e.g. 2025-01-01t10-00-00z.
func DefaultFilename(now time.Time) string {
	return slug.Make(now.UTC().Format(DateTimeLayout))
}
