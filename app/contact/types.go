package contact

import "fmt"

const (
	FeedField    = "X-FEED"
	DefaultLabel = "default"
	UnknownName  = "Unknown"

	languageParam = "LANGUAGE"
	beginLine     = "BEGIN:VCARD"
	endLine       = "END:VCARD"
)

// FeedRef is one feed advertised by a card. Label is DefaultLabel or a
// language-region tag such as es-ES.
type FeedRef struct {
	Label string
	URL   string
}

type Card struct {
	DisplayName string
	Feeds       []FeedRef
}

// MalformedCardError reports a record that could not be decoded. Index is
// the zero-based position of the record within its file.
type MalformedCardError struct {
	Path  string
	Index int
	Err   error
}

func (e *MalformedCardError) Error() string {
	return fmt.Sprintf("malformed vCard #%d in %s: %v", e.Index+1, e.Path, e.Err)
}

func (e *MalformedCardError) Unwrap() error {
	return e.Err
}
