package contact

import (
	"strings"
)

const (
	Version         = "4.0"
	DefaultLanguage = "en-US"
	DefaultKind     = "individual"
)

// Field is a caller-supplied extension; Name is stored with an X- prefix.
type Field struct {
	Name  string
	Value string
}

// Profile holds the values for a new card. Empty values are left out.
type Profile struct {
	FormattedName string
	Name          string
	Nickname      string
	Language      string
	Gender        string
	Email         string
	Categories    string
	Birthday      string
	Anniversary   string
	Kind          string
	Address       string
	Telephone     string
	IMPP          string
	Photo         string
	Note          string
	URL           string
	Source        string

	Feed          string
	LanguageFeeds []FeedRef
	Custom        []Field
}

// Compose renders p as a single vCard 4.0 record.
func Compose(p Profile) []byte {
	var b strings.Builder

	writeLine(&b, "BEGIN", "VCARD")
	writeLine(&b, "VERSION", Version)

	noteKey := "NOTE"
	if p.Language != "" {
		noteKey = "NOTE;LANGUAGE=" + p.Language
	}

	fields := [][2]string{
		{"FN", p.FormattedName},
		{"N", padName(p.Name)},
		{"NICKNAME", p.Nickname},
		{"LANG", p.Language},
		{"GENDER", p.Gender},
		{"EMAIL", p.Email},
		{"CATEGORIES", p.Categories},
		{"BDAY", p.Birthday},
		{"ANNIVERSARY", p.Anniversary},
		{"KIND", p.Kind},
		{"ADR", p.Address},
		{"TEL", p.Telephone},
		{"IMPP", p.IMPP},
		{"PHOTO", p.Photo},
		{noteKey, p.Note},
		{"URL", p.URL},
		{"SOURCE", p.Source},
		{FeedField, p.Feed},
	}
	for _, f := range fields {
		writeLine(&b, f[0], f[1])
	}

	for _, feed := range p.LanguageFeeds {
		if feed.Label == "" || feed.Label == DefaultLabel {
			writeLine(&b, FeedField, feed.URL)
			continue
		}
		writeLine(&b, FeedField+";"+languageParam+"="+feed.Label, feed.URL)
	}

	for _, field := range p.Custom {
		if strings.TrimSpace(field.Name) == "" {
			continue
		}
		writeLine(&b, customName(field.Name), field.Value)
	}

	writeLine(&b, "END", "VCARD")

	return []byte(b.String())
}

func writeLine(b *strings.Builder, key, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.WriteString(key)
	b.WriteByte(':')
	b.WriteString(escapeNewlines(value))
	b.WriteString("\r\n")
}

func escapeNewlines(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\n", `\n`)
}

// padName fills the structured N value up to its five components.
func padName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	parts := strings.Split(name, ";")
	for len(parts) < 5 {
		parts = append(parts, "")
	}
	return strings.Join(parts, ";")
}

func customName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "X-")
	return "X-" + name
}
