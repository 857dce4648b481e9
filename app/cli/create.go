package cli

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/rss-press/app/contact"
	"github.com/lysyi3m/rss-press/app/files"
)

type CreateCommand struct {
	Output string `long:"output" short:"o" default:"output.vcf" description:"Output file for the vCard"`

	FormattedName string `long:"fn" description:"Full name (FN)"`
	Name          string `long:"n" description:"Name (N) in the format LastName;FirstName"`
	Nickname      string `long:"nickname" description:"Nickname (NICKNAME)"`
	Language      string `long:"lang" default:"en-US" description:"Language (LANG) as language-region, e.g. es-ES"`
	Gender        string `long:"gender" description:"Gender (GENDER), e.g. M, F or O"`
	Email         string `long:"email" description:"Email (EMAIL)"`
	Categories    string `long:"categories" description:"Comma-separated categories (CATEGORIES)"`
	Birthday      string `long:"bday" description:"Birthday (BDAY) as YYYY-MM-DD"`
	Anniversary   string `long:"anniversary" description:"Anniversary (ANNIVERSARY) as YYYY-MM-DD"`
	Kind          string `long:"kind" default:"individual" description:"Kind of entity (KIND), e.g. individual or org"`
	Address       string `long:"adr" description:"Address (ADR) as ;;Street;City;State;PostalCode;Country"`
	Telephone     string `long:"tel" description:"Telephone number (TEL)"`
	IMPP          string `long:"impp" description:"Instant messaging handle (IMPP), e.g. aim:someone"`
	Photo         string `long:"photo" description:"Photo URL (PHOTO)"`
	Note          string `long:"note" description:"Short description (NOTE)"`
	URL           string `long:"url" description:"Public profile or personal site (URL)"`
	Source        string `long:"source" description:"URL where the vCard is published (SOURCE)"`

	Feed          string   `long:"feed" description:"Main feed URL (X-FEED)"`
	LanguageFeeds []string `long:"feed-lang" value-name:"TAG=URL" description:"Feed for a language-region, e.g. es-ES=https://example.com/es/feed.xml (repeatable)"`
	Custom        []string `long:"custom" value-name:"NAME=VALUE" description:"Custom attribute stored as X-NAME (repeatable)"`

	app *App
}

func (c *CreateCommand) Execute(args []string) error {
	profile, err := c.profile()
	if err != nil {
		return err
	}

	if err := files.CreateExclusive(c.Output, contact.Compose(profile)); err != nil {
		return err
	}

	c.app.printer.Success("vCard created: %s", c.Output)
	return nil
}

func (c *CreateCommand) profile() (contact.Profile, error) {
	p := contact.Profile{
		FormattedName: c.FormattedName,
		Name:          c.Name,
		Nickname:      c.Nickname,
		Language:      c.Language,
		Gender:        c.Gender,
		Email:         c.Email,
		Categories:    c.Categories,
		Birthday:      c.Birthday,
		Anniversary:   c.Anniversary,
		Kind:          c.Kind,
		Address:       c.Address,
		Telephone:     c.Telephone,
		IMPP:          c.IMPP,
		Photo:         c.Photo,
		Note:          c.Note,
		URL:           c.URL,
		Source:        c.Source,
		Feed:          c.Feed,
	}

	for _, raw := range c.LanguageFeeds {
		tag, url, err := splitPair(raw, "--feed-lang")
		if err != nil {
			return p, err
		}
		p.LanguageFeeds = append(p.LanguageFeeds, contact.FeedRef{Label: tag, URL: url})
	}

	for _, raw := range c.Custom {
		name, value, err := splitPair(raw, "--custom")
		if err != nil {
			return p, err
		}
		p.Custom = append(p.Custom, contact.Field{Name: name, Value: value})
	}

	return p, nil
}

func splitPair(raw, flag string) (string, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if !ok || key == "" || value == "" {
		return "", "", fmt.Errorf("invalid %s value %q: expected KEY=VALUE", flag, raw)
	}
	return key, value, nil
}
