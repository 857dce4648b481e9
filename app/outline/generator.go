package outline

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(o *Outline) (string, error) {
	if o == nil {
		return "", fmt.Errorf("outline is nil")
	}

	doc := opmlDocument{
		Version: Version,
		Head:    opmlHead{Title: o.Title},
	}
	for _, entry := range o.Entries {
		doc.Body.Outlines = append(doc.Body.Outlines, opmlOutline{
			Text:     entry.Text,
			Title:    entry.Title,
			Type:     "rss",
			XMLURL:   entry.XMLURL,
			Language: entry.Language,
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode outline: %w", err)
	}
	buf.WriteString("\n")

	return buf.String(), nil
}
