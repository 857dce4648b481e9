package cli

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/lysyi3m/rss-press/app/cfg"
	"github.com/lysyi3m/rss-press/app/console"
)

type Options struct {
	Config   string `short:"c" long:"config" env:"RSS_PRESS_CONFIG" description:"Path to the YAML configuration file (default: rss-press.yml)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	Timezone string `long:"timezone" env:"RSS_PRESS_TIMEZONE" description:"Timezone for local dates (e.g., UTC, Europe/Madrid)"`
}

// App holds the state shared by every command: global options, the loaded
// configuration file and the output printer.
type App struct {
	Options Options

	printer  *console.Printer
	logs     io.Writer
	file     *cfg.File
	location *time.Location
	now      func() time.Time
}

func New(printer *console.Printer, logs io.Writer) *App {
	return &App{
		printer: printer,
		logs:    logs,
		now:     time.Now,
	}
}

// PartialError reports a run that produced output but skipped some files.
type PartialError struct {
	Built   int
	Skipped int
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%d built, %d skipped", e.Built, e.Skipped)
}

func (a *App) Parser() *flags.Parser {
	parser := flags.NewParser(&a.Options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "rss-press"
	parser.CommandHandler = a.handle

	a.addCommand(parser, "build", "Build an RSS feed",
		"Builds an RSS 2.0 feed from the markdown posts found in a directory.",
		&BuildCommand{app: a})
	a.addCommand(parser, "new", "Create a new post",
		"Creates a markdown post with front matter. Existing files are never overwritten.",
		&NewCommand{app: a})
	a.addCommand(parser, "connections", "Build an OPML outline from vCards",
		"Collects the X-FEED references of the vCards found in a directory into an OPML outline.",
		&ConnectionsCommand{app: a})
	a.addCommand(parser, "create", "Create a vCard",
		"Creates a vCard 4.0 file with optional X-FEED references. Existing files are never overwritten.",
		&CreateCommand{app: a})
	a.addCommand(parser, "inspect", "Inspect a feed file",
		"Parses an RSS or Atom file and prints its channel and items.",
		&InspectCommand{app: a})
	a.addCommand(parser, "serve", "Serve a live preview",
		"Serves the feed and the outline, rebuilt from disk on every request.",
		&ServeCommand{app: a})

	return parser
}

func (a *App) addCommand(parser *flags.Parser, name, short, long string, data any) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(fmt.Sprintf("invalid command %s: %v", name, err))
	}
}

// Run parses args, executes the selected command and returns the process
// exit code.
func (a *App) Run(args []string) int {
	if _, err := a.Parser().ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			a.printer.Raw(flagsErr.Message + "\n")
			return 0
		}

		var partial *PartialError
		if errors.As(err, &partial) {
			a.printer.Warning("Completed with errors: %v", partial)
			return 1
		}

		a.printer.Error("%v", err)
		return 1
	}
	return 0
}

func (a *App) handle(command flags.Commander, args []string) error {
	SetupLogging(a.logs, a.Options.Debug)

	location, err := cfg.LoadTimezone(a.Options.Timezone)
	if err != nil {
		return err
	}
	a.location = location

	path := cmp.Or(a.Options.Config, cfg.DefaultFile)
	file, found, err := cfg.Load(path)
	if err != nil {
		return err
	}
	switch {
	case found:
		slog.Info("Using configuration file", "path", path)
	case a.Options.Config != "":
		return &cfg.NotFoundError{Path: path}
	}
	a.file = file

	if command == nil {
		return nil
	}
	return command.Execute(args)
}

func SetupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func reportSkipped[E error](p *console.Printer, built int, skipped []E) error {
	if len(skipped) == 0 {
		return nil
	}
	for _, err := range skipped {
		p.Warning("Skipped %v", err)
	}
	return &PartialError{Built: built, Skipped: len(skipped)}
}
