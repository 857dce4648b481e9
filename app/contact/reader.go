package contact

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/emersion/go-vcard"
)

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Run reads every card in the file at path. Records that fail to decode are
// logged and skipped; the records around them are still returned.
func (r *Reader) Run(path string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cards, malformed, err := r.Read(path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	for _, m := range malformed {
		slog.Warn("Skipping malformed vCard", "path", path, "record", m.Index+1, "error", m.Err)
	}

	slog.Debug("vCards read", "path", path, "cards", len(cards), "skipped", len(malformed))
	return cards, nil
}

// Read decodes concatenated cards from src. Each record is decoded on its
// own, so a record without END:VCARD or with stray lines is reported as a
// *MalformedCardError without swallowing its neighbours.
func (r *Reader) Read(name string, src io.Reader) ([]Card, []*MalformedCardError, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var (
		cards     []Card
		malformed []*MalformedCardError
	)
	for i, record := range splitRecords(data) {
		card, err := decodeRecord(record)
		if err != nil {
			malformed = append(malformed, &MalformedCardError{Path: name, Index: i, Err: err})
			continue
		}
		cards = append(cards, fromVCard(card))
	}
	return cards, malformed, nil
}

// splitRecords cuts data into records: a record opens at a BEGIN:VCARD line
// and closes after an END:VCARD line. Lines outside any record form a record
// of their own. Blank lines are dropped.
func splitRecords(data []byte) [][]byte {
	var (
		records [][]byte
		current []byte
	)
	flush := func() {
		if len(current) > 0 {
			records = append(records, current)
			current = nil
		}
	}

	for _, line := range bytes.SplitAfter(data, []byte("\n")) {
		trimmed := strings.ToUpper(string(bytes.TrimSpace(line)))
		if trimmed == "" {
			continue
		}
		if trimmed == beginLine {
			flush()
		}
		current = append(current, line...)
		if !bytes.HasSuffix(line, []byte("\n")) {
			current = append(current, '\n')
		}
		if trimmed == endLine {
			flush()
		}
	}
	flush()

	return records
}

func decodeRecord(record []byte) (vcard.Card, error) {
	lines := bytes.Split(bytes.TrimSpace(record), []byte("\n"))
	if !strings.EqualFold(string(bytes.TrimSpace(lines[0])), beginLine) {
		return nil, errors.New("vcard: missing BEGIN:VCARD")
	}
	if !strings.EqualFold(string(bytes.TrimSpace(lines[len(lines)-1])), endLine) {
		return nil, errors.New("vcard: missing END:VCARD")
	}

	card, err := vcard.NewDecoder(bytes.NewReader(record)).Decode()
	if err == io.EOF {
		return nil, errors.New("vcard: empty record")
	}
	return card, err
}

func fromVCard(c vcard.Card) Card {
	card := Card{DisplayName: UnknownName}

	if fn := c.Get(vcard.FieldFormattedName); fn != nil && strings.TrimSpace(fn.Value) != "" {
		card.DisplayName = strings.TrimSpace(fn.Value)
	}

	for _, field := range c[FeedField] {
		url := strings.TrimSpace(field.Value)
		if url == "" {
			continue
		}
		card.Feeds = append(card.Feeds, FeedRef{
			Label: cmp.Or(field.Params.Get(languageParam), DefaultLabel),
			URL:   url,
		})
	}

	return card
}
