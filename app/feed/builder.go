package feed

import (
	"log/slog"
	"time"

	"github.com/lysyi3m/rss-press/app/cfg"
	"github.com/lysyi3m/rss-press/app/files"
	"github.com/lysyi3m/rss-press/app/post"
)

// DocumentParser parses one markdown source file.
type DocumentParser interface {
	Run(path string) (*post.Document, error)
}

var _ DocumentParser = (*post.Parser)(nil)

type BuildOptions struct {
	Directory string
	Limit     int
	Metadata  Metadata
	// KeepGoing skips files that fail to parse instead of aborting the build.
	KeepGoing bool
	// RequireItems turns an empty source directory into ErrEmptyDirectory.
	RequireItems bool
}

type Result struct {
	Feed    *Feed
	XML     string
	Parsed  int
	Skipped []files.FileError
}

// Builder runs the markdown-to-feed pipeline: scan, parse, assemble, render.
type Builder struct {
	parser    DocumentParser
	generator *Generator
	now       func() time.Time
}

func NewBuilder(parser DocumentParser, generator *Generator) *Builder {
	return &Builder{
		parser:    parser,
		generator: generator,
		now:       time.Now,
	}
}

// NewBuilderFromSettings wires the default parser, renderer and generator.
func NewBuilderFromSettings(settings cfg.FeedSettings) *Builder {
	var sanitizer *post.Sanitizer
	if settings.Sanitize {
		sanitizer = post.NewSanitizer()
	}
	parser := post.NewParser(post.NewRenderer(settings.Extensions), sanitizer).WithLocation(settings.Location)
	return NewBuilder(parser, NewGenerator(cfg.GetVersion()))
}

func OptionsFromSettings(settings cfg.FeedSettings, keepGoing, requireItems bool) BuildOptions {
	return BuildOptions{
		Directory: settings.Directory,
		Limit:     settings.Limit,
		Metadata: Metadata{
			Title:       settings.Title,
			Link:        settings.Link,
			Description: settings.Description,
			Language:    settings.Language,
			Author:      Author{Name: settings.Author, Email: settings.Email},
		},
		KeepGoing:    keepGoing,
		RequireItems: requireItems,
	}
}

func (b *Builder) Run(opts BuildOptions) (*Result, error) {
	paths, err := files.Scan(opts.Directory, files.MarkdownExtensions)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		doc, err := b.parser.Run(path)
		if err != nil {
			if !opts.KeepGoing {
				return nil, err
			}
			slog.Warn("Skipping post", "path", path, "error", err)
			result.Skipped = append(result.Skipped, files.FileError{Path: path, Err: err})
			continue
		}
		entries = append(entries, EntryFromDocument(doc))
	}
	result.Parsed = len(entries)

	if opts.RequireItems && len(entries) == 0 {
		return nil, ErrEmptyDirectory
	}

	meta := opts.Metadata
	if meta.BuildDate.IsZero() {
		meta.BuildDate = b.now()
	}

	feed, err := Assemble(entries, meta, opts.Limit)
	if err != nil {
		return nil, err
	}

	xml, err := b.generator.Run(feed)
	if err != nil {
		return nil, err
	}

	result.Feed = feed
	result.XML = xml

	slog.Debug("Feed built", "dir", opts.Directory, "parsed", result.Parsed, "items", len(feed.Items), "skipped", len(result.Skipped))
	return result, nil
}
