package cli

import (
	"github.com/lysyi3m/rss-press/app/cfg"
	"github.com/lysyi3m/rss-press/app/files"
	"github.com/lysyi3m/rss-press/app/outline"
)

type ConnectionsCommand struct {
	cfg.ContactOptions

	KeepGoing bool `long:"keep-going" description:"Skip unreadable files and report them at the end"`

	app *App
}

func (c *ConnectionsCommand) Execute(args []string) error {
	settings := cfg.ResolveContacts(c.ContactOptions, c.app.file)

	result, err := outline.NewBuilderFromSettings().Run(outline.OptionsFromSettings(settings, c.KeepGoing))
	if err != nil {
		return err
	}

	if settings.Output == "" {
		c.app.printer.Raw(result.XML)
	} else {
		if err := files.WriteOutput(settings.Output, []byte(result.XML)); err != nil {
			return err
		}
		c.app.printer.Success("OPML file generated: %s (%d entries)", settings.Output, len(result.Outline.Entries))
	}

	return reportSkipped(c.app.printer, result.Cards, result.Skipped)
}
