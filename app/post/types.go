package post

import (
	"fmt"
	"time"
)

const (
	Delimiter      = "---"
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05Z"
)

// Document is one parsed markdown source file.
type Document struct {
	Title       string
	PublishedAt time.Time
	BodyHTML    string
	SourcePath  string
}

// Header holds the recognized front matter fields. A nil field was not
// present in the header.
type Header struct {
	Title *string
	Date  *string
}

type MalformedDateError struct {
	Path  string
	Value string
}

func (e *MalformedDateError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed date %q: expected %s or %s", e.Value, DateLayout, DateTimeLayout)
	}
	return fmt.Sprintf("malformed date %q in %s: expected %s or %s", e.Value, e.Path, DateLayout, DateTimeLayout)
}
