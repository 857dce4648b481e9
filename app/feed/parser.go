package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Parser reads a syndication document back into a Feed. It is used to
// inspect generated output.
type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *Parser) Run(data []byte) (*Feed, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	result := &Feed{
		Title:       parsed.Title,
		Link:        parsed.Link,
		Description: parsed.Description,
		Language:    parsed.Language,
	}

	if parsed.UpdatedParsed != nil {
		result.BuildDate = *parsed.UpdatedParsed
	}

	result.Items = make([]Item, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		result.Items = append(result.Items, p.normalizeItem(item))
	}

	return result, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Item {
	normalized := Item{
		ID:          cmp.Or(item.GUID, item.Link),
		Title:       item.Title,
		Link:        item.Link,
		ContentHTML: cmp.Or(item.Description, item.Content),
	}

	if item.PublishedParsed != nil {
		normalized.PublishedAt = *item.PublishedParsed
	}

	if len(item.Authors) > 0 && item.Authors[0] != nil {
		normalized.Author = p.formatAuthor(item.Authors[0].Name, item.Authors[0].Email)
	}

	return normalized
}

func (p *Parser) formatAuthor(name, email string) string {
	return Author{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}.String()
}
