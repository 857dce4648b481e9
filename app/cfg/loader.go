package cfg

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

const DefaultFile = "rss-press.yml"

const (
	DefaultOutput      = "feed.xml"
	DefaultTitle       = "My Feed"
	DefaultLink        = "https://example.com"
	DefaultDescription = "RSS feed generated from markdown files"
	DefaultLanguage    = "en-US"
	DefaultPort        = "8080"
	DefaultOutlineName = "Connections"
)

// NotFoundError is returned when an explicitly requested configuration file
// does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// Load reads the YAML configuration at path. A missing file is not an error:
// an empty File is returned and found is false.
func Load(path string) (file *File, found bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("Configuration file not found", "path", path)
		return &File{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read configuration: %w", err)
	}

	var parsed File
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, false, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	if err := validate(&parsed); err != nil {
		return nil, false, fmt.Errorf("invalid config %s: %w", path, err)
	}

	slog.Debug("Configuration loaded", "path", path)
	return &parsed, true, nil
}

func validate(file *File) error {
	if file.Feed.Limit != nil && *file.Feed.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	return nil
}

// Pick returns the first non-nil candidate, or fallback when none is set.
func Pick[T any](fallback T, candidates ...*T) T {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return fallback
}

// ResolveFeed merges command-line overrides over the config file and the
// built-in defaults.
func ResolveFeed(cli FeedOptions, sanitize bool, file *File) FeedSettings {
	if file == nil {
		file = &File{}
	}
	fo := file.Feed

	extensions := cli.Extensions
	if len(extensions) == 0 {
		extensions = fo.Extensions
	}

	return FeedSettings{
		Directory:   Pick(".", cli.Directory, fo.Directory),
		Output:      Pick(DefaultOutput, cli.Output, fo.Output),
		Limit:       Pick(0, cli.Limit, fo.Limit),
		Title:       Pick(DefaultTitle, cli.Title, fo.Title),
		Link:        Pick(DefaultLink, cli.Link, fo.Link),
		Description: Pick(DefaultDescription, cli.Description, fo.Description),
		Language:    Pick(DefaultLanguage, cli.Language, fo.Language),
		Author:      Pick("", cli.Author, fo.Author),
		Email:       Pick("", cli.Email, fo.Email),
		Extensions:  extensions,
		Sanitize:    sanitize || Pick(false, file.Sanitize),
	}
}

func ResolveContacts(cli ContactOptions, file *File) ContactSettings {
	if file == nil {
		file = &File{}
	}
	co := file.Contacts

	return ContactSettings{
		Directory: Pick(".", cli.Directory, co.Directory),
		Output:    Pick("", cli.Output, co.Output),
		Title:     Pick(DefaultOutlineName, cli.Title, co.Title),
	}
}

// ResolvePort prefers an explicit flag or environment value over the file.
func ResolvePort(cli string, file *File) string {
	if file == nil {
		file = &File{}
	}
	return cmp.Or(cli, Pick(DefaultPort, file.Port))
}

// LoadTimezone resolves the zone used for local dates, such as the
// modification date of a post without a date attribute. An empty name means
// the system zone.
func LoadTimezone(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	slog.Debug("Timezone configured", "timezone", timezone)
	return loc, nil
}
