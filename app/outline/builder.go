package outline

import (
	"log/slog"

	"github.com/lysyi3m/rss-press/app/cfg"
	"github.com/lysyi3m/rss-press/app/contact"
	"github.com/lysyi3m/rss-press/app/files"
)

// CardReader reads every card in one file.
type CardReader interface {
	Run(path string) ([]contact.Card, error)
}

var _ CardReader = (*contact.Reader)(nil)

type BuildOptions struct {
	Directory string
	Title     string
	// KeepGoing skips unreadable files instead of aborting.
	KeepGoing bool
}

type Result struct {
	Outline *Outline
	XML     string
	Cards   int
	Skipped []files.FileError
}

type Builder struct {
	reader    CardReader
	generator *Generator
}

func NewBuilder(reader CardReader, generator *Generator) *Builder {
	return &Builder{reader: reader, generator: generator}
}

func NewBuilderFromSettings() *Builder {
	return NewBuilder(contact.NewReader(), NewGenerator())
}

func OptionsFromSettings(settings cfg.ContactSettings, keepGoing bool) BuildOptions {
	return BuildOptions{
		Directory: settings.Directory,
		Title:     settings.Title,
		KeepGoing: keepGoing,
	}
}

func (b *Builder) Run(opts BuildOptions) (*Result, error) {
	paths, err := files.Scan(opts.Directory, files.VCardExtensions)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var cards []contact.Card
	for _, path := range paths {
		read, err := b.reader.Run(path)
		if err != nil {
			if !opts.KeepGoing {
				return nil, err
			}
			slog.Warn("Skipping contact file", "path", path, "error", err)
			result.Skipped = append(result.Skipped, files.FileError{Path: path, Err: err})
			continue
		}
		cards = append(cards, read...)
	}
	result.Cards = len(cards)

	o := Assemble(opts.Title, cards)
	xml, err := b.generator.Run(o)
	if err != nil {
		return nil, err
	}

	result.Outline = o
	result.XML = xml

	slog.Debug("Outline built", "dir", opts.Directory, "cards", result.Cards, "entries", len(o.Entries), "skipped", len(result.Skipped))
	return result, nil
}
