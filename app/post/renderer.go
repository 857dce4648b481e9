package post

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// Renderer converts markdown to HTML with goldmark. Raw HTML in the source is
// passed through.
type Renderer struct {
	engine goldmark.Markdown
}

func NewRenderer(extensions []string) *Renderer {
	options := []goldmark.Option{
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}
	if exts := collectExtensions(extensions); len(exts) > 0 {
		options = append(options, goldmark.WithExtensions(exts...))
	}

	return &Renderer{
		engine: goldmark.New(options...),
	}
}

func (r *Renderer) Run(markdown []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			slog.Warn("Unknown markdown extension ignored", "extension", name)
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
