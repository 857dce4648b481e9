package outline

import "encoding/xml"

const Version = "2.0"

// Entry is one subscription: a card's display name and one of its feeds.
// Language is empty for a card's default feed.
type Entry struct {
	Text     string
	Title    string
	XMLURL   string
	Language string
}

type Outline struct {
	Title   string
	Entries []Entry
}

type opmlDocument struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

type opmlHead struct {
	Title string `xml:"title"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlOutline struct {
	Text     string `xml:"text,attr"`
	Title    string `xml:"title,attr"`
	Type     string `xml:"type,attr,omitempty"`
	XMLURL   string `xml:"xmlUrl,attr"`
	Language string `xml:"language,attr,omitempty"`
}
