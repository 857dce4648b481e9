package cfg

import "time"

// FeedOptions carries the feed-building settings that can come from either
// the command line or the config file. A nil field was not provided.
type FeedOptions struct {
	Directory   *string  `long:"directory" short:"d" description:"Directory where the markdown posts are located" yaml:"directory"`
	Output      *string  `long:"output" short:"o" description:"Output RSS file (default: feed.xml)" yaml:"output"`
	Limit       *int     `long:"limit" description:"Limit number of posts (0 means no limit)" yaml:"limit"`
	Title       *string  `long:"title" description:"RSS feed title (default: My Feed)" yaml:"title"`
	Link        *string  `long:"link" description:"Base link for items (default: https://example.com)" yaml:"link"`
	Description *string  `long:"description" description:"RSS feed description" yaml:"description"`
	Language    *string  `long:"language" description:"Language of the feed (default: en-US)" yaml:"language"`
	Author      *string  `long:"author" description:"Author name" yaml:"author"`
	Email       *string  `long:"email" description:"Email of the author" yaml:"email"`
	Extensions  []string `long:"extension" description:"Markdown extension to enable (repeatable: gfm, table, strikethrough, linkify, tasklist, footnote, definition)" yaml:"extensions"`
}

// ContactOptions carries the outline-building settings.
type ContactOptions struct {
	Directory *string `long:"directory" short:"d" description:"Directory to retrieve the vCards (.vcf or .vcard files)" yaml:"contacts_directory"`
	Output    *string `long:"output" short:"o" description:"Output OPML file (stdout when omitted)" yaml:"contacts_output"`
	Title     *string `long:"title" description:"Title of the OPML document" yaml:"outline_title"`
}

// File is the on-disk configuration. Every key is optional.
type File struct {
	Feed     FeedOptions    `yaml:",inline"`
	Contacts ContactOptions `yaml:",inline"`
	Sanitize *bool          `yaml:"sanitize"`
	Port     *string        `yaml:"port"`
}

// FeedSettings is the effective configuration of a feed build.
type FeedSettings struct {
	Directory   string
	Output      string
	Limit       int
	Title       string
	Link        string
	Description string
	Language    string
	Author      string
	Email       string
	Extensions  []string
	Sanitize    bool
	// Location dates posts that fall back to their modification time; nil
	// means the system zone.
	Location    *time.Location
}

// ContactSettings is the effective configuration of an outline build.
type ContactSettings struct {
	Directory string
	Output    string
	Title     string
}
