package post

import (
	"bytes"
	"strings"
	"time"
)

var headerFields = []string{"title", "date"}

// SplitFrontMatter separates the optional header block from the body. The
// header opens with a line equal to the delimiter and closes at the next such
// line. Without a closing delimiter the rest of the file is header and the
// body is empty. Lines in the header that are not recognized are ignored.
func SplitFrontMatter(content []byte) (Header, []byte) {
	var header Header

	lines := bytes.SplitAfter(content, []byte("\n"))
	if len(lines) == 0 || strings.TrimSpace(string(lines[0])) != Delimiter {
		return header, content
	}

	i := 1
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(string(lines[i]))
		if line == Delimiter {
			break
		}

		for _, field := range headerFields {
			value, ok := strings.CutPrefix(line, field+":")
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			switch field {
			case "title":
				header.Title = &value
			case "date":
				header.Date = &value
			}
		}
	}

	if i >= len(lines) {
		return header, nil
	}
	return header, bytes.Join(lines[i+1:], nil)
}

// ParseDate accepts a plain date or a UTC date-time; the time separator
// decides which one is expected.
func ParseDate(value string) (time.Time, error) {
	layout := DateLayout
	if strings.Contains(value, "T") {
		layout = DateTimeLayout
	}

	parsed, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, &MalformedDateError{Value: value}
	}
	return parsed.UTC(), nil
}
