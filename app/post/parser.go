package post

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BodyRenderer turns a markdown body into HTML.
type BodyRenderer interface {
	Run(markdown []byte) (string, error)
}

type Parser struct {
	renderer  BodyRenderer
	sanitizer *Sanitizer
	location  *time.Location
}

// NewParser builds a parser; sanitizer may be nil to keep rendered HTML as is.
func NewParser(renderer BodyRenderer, sanitizer *Sanitizer) *Parser {
	return &Parser{
		renderer:  renderer,
		sanitizer: sanitizer,
		location:  time.Local,
	}
}

// WithLocation sets the zone used to date posts from their modification
// time. A nil loc keeps the system zone.
func (p *Parser) WithLocation(loc *time.Location) *Parser {
	if loc != nil {
		p.location = loc
	}
	return p
}

// Run reads and parses the markdown file at path.
func (p *Parser) Run(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return p.Parse(path, content, info.ModTime())
}

// Parse builds a Document from raw content. Title falls back to the file
// name without extension; date falls back to the calendar day of modTime in
// the parser's location.
func (p *Parser) Parse(path string, content []byte, modTime time.Time) (*Document, error) {
	header, body := SplitFrontMatter(content)

	title := ""
	if header.Title != nil {
		title = *header.Title
	}
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	date := ""
	if header.Date != nil {
		date = *header.Date
	}
	if date == "" {
		date = modTime.In(p.location).Format(DateLayout)
	}

	publishedAt, err := ParseDate(date)
	if err != nil {
		var dateErr *MalformedDateError
		if errors.As(err, &dateErr) {
			dateErr.Path = path
		}
		return nil, err
	}

	html, err := p.renderer.Run(body)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}
	if p.sanitizer != nil {
		html = p.sanitizer.Run(html)
	}

	slog.Debug("Post parsed", "path", path, "title", title, "date", publishedAt.Format(time.RFC3339))

	return &Document{
		Title:       title,
		PublishedAt: publishedAt,
		BodyHTML:    html,
		SourcePath:  path,
	}, nil
}
