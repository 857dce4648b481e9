package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lysyi3m/rss-press/app/feed"
)

type InspectCommand struct {
	Args struct {
		Path string `positional-arg-name:"FEED" description:"RSS or Atom file to inspect"`
	} `positional-args:"yes" required:"yes"`

	app *App
}

func (c *InspectCommand) Execute(args []string) error {
	data, err := os.ReadFile(c.Args.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Args.Path, err)
	}

	parsed, err := feed.NewParser().Run(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.Args.Path, err)
	}

	c.app.printer.Raw(describe(parsed))
	return nil
}

func describe(f *feed.Feed) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.Title)
	if f.Link != "" {
		fmt.Fprintf(&b, "  link:     %s\n", f.Link)
	}
	if f.Language != "" {
		fmt.Fprintf(&b, "  language: %s\n", f.Language)
	}
	if !f.BuildDate.IsZero() {
		fmt.Fprintf(&b, "  built:    %s\n", f.BuildDate.Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "  items:    %d\n", len(f.Items))

	for _, item := range f.Items {
		date := "-"
		if !item.PublishedAt.IsZero() {
			date = item.PublishedAt.Format(time.DateOnly)
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", date, item.Title, item.Link)
	}
	return b.String()
}
