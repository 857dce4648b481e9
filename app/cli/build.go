package cli

import (
	"github.com/lysyi3m/rss-press/app/cfg"
	"github.com/lysyi3m/rss-press/app/feed"
	"github.com/lysyi3m/rss-press/app/files"
)

type BuildCommand struct {
	cfg.FeedOptions

	Sanitize     bool `long:"sanitize" description:"Strip unsafe HTML from rendered posts"`
	KeepGoing    bool `long:"keep-going" description:"Skip posts that fail to parse and report them at the end"`
	RequireItems bool `long:"require-items" description:"Fail when the directory contains no posts"`

	app *App
}

func (c *BuildCommand) Execute(args []string) error {
	settings := cfg.ResolveFeed(c.FeedOptions, c.Sanitize, c.app.file)
	settings.Location = c.app.location

	builder := feed.NewBuilderFromSettings(settings)
	result, err := builder.Run(feed.OptionsFromSettings(settings, c.KeepGoing, c.RequireItems))
	if err != nil {
		return err
	}

	if err := files.WriteOutput(settings.Output, []byte(result.XML)); err != nil {
		return err
	}

	c.app.printer.Success("RSS feed generated: %s (%d items)", settings.Output, len(result.Feed.Items))
	return reportSkipped(c.app.printer, result.Parsed, result.Skipped)
}
