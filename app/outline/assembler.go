package outline

import "github.com/lysyi3m/rss-press/app/contact"

// Assemble flattens every feed reference of every card into entries. Cards and
// their feeds keep discovery order; duplicates are kept.
func Assemble(title string, cards []contact.Card) *Outline {
	o := &Outline{Title: title, Entries: []Entry{}}
	for _, card := range cards {
		for _, ref := range card.Feeds {
			entry := Entry{
				Text:   card.DisplayName,
				Title:  card.DisplayName,
				XMLURL: ref.URL,
			}
			if ref.Label != contact.DefaultLabel {
				entry.Language = ref.Label
			}
			o.Entries = append(o.Entries, entry)
		}
	}
	return o
}
