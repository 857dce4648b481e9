package feed

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lysyi3m/rss-press/app/post"
	"github.com/lysyi3m/rss-press/app/slug"
)

func EntryFromDocument(doc *post.Document) Entry {
	return Entry{
		Title:       doc.Title,
		ContentHTML: doc.BodyHTML,
		SourcePath:  doc.SourcePath,
		PublishedAt: doc.PublishedAt,
	}
}

// Assemble orders entries newest first, keeps at most limit of them (no
// limit when limit <= 0) and derives ids, links and the author line.
// Entries published at the same instant keep their input order.
func Assemble(entries []Entry, meta Metadata, limit int) (*Feed, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	baseLink := strings.TrimRight(meta.Link, "/")
	author := meta.Author.String()

	items := make([]Item, 0, len(sorted))
	seen := make(map[string]string, len(sorted))
	for _, entry := range sorted {
		id := entry.ID
		if id == "" {
			id = slug.Make(entry.SourcePath)
		}

		if first, ok := seen[id]; ok {
			return nil, &DuplicateIDError{ID: id, First: first, Second: entry.SourcePath}
		}
		seen[id] = entry.SourcePath

		link := entry.Link
		if link == "" {
			link = fmt.Sprintf("%s/feed/%s", baseLink, id)
		}

		items = append(items, Item{
			ID:          id,
			Title:       entry.Title,
			Link:        link,
			ContentHTML: entry.ContentHTML,
			Author:      author,
			PublishedAt: entry.PublishedAt,
		})
	}

	return &Feed{
		Title:       meta.Title,
		Link:        meta.Link,
		Description: meta.Description,
		Language:    meta.Language,
		BuildDate:   meta.BuildDate,
		Items:       items,
	}, nil
}
