package feed

import (
	"errors"
	"fmt"
	"time"
)

var ErrEmptyDirectory = errors.New("no markdown posts found")

type Author struct {
	Name  string
	Email string
}

// String formats the author as "name (email)", or whichever part is set.
func (a Author) String() string {
	switch {
	case a.Name != "" && a.Email != "":
		return fmt.Sprintf("%s (%s)", a.Name, a.Email)
	case a.Name != "":
		return a.Name
	default:
		return a.Email
	}
}

type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
	Author      Author
	BuildDate   time.Time
}

// Entry is the assembler input for one post. Empty ID and Link are derived.
type Entry struct {
	ID          string
	Link        string
	Title       string
	ContentHTML string
	SourcePath  string
	PublishedAt time.Time
}

type Item struct {
	ID          string
	Title       string
	Link        string
	ContentHTML string
	Author      string
	PublishedAt time.Time
}

type Feed struct {
	Title       string
	Link        string
	Description string
	Language    string
	BuildDate   time.Time
	Items       []Item
}

type DuplicateIDError struct {
	ID     string
	First  string
	Second string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate item id %q: %s and %s", e.ID, e.First, e.Second)
}
