package outline

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestGeneratorRun(t *testing.T) {
	o := &Outline{
		Title: "Connections",
		Entries: []Entry{
			{Text: "Ana & Co", Title: "Ana & Co", XMLURL: "https://a.example/feed"},
			{Text: "Ana & Co", Title: "Ana & Co", XMLURL: "https://a.example/es", Language: "es-ES"},
		},
	}

	out, err := NewGenerator().Run(o)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("Expected XML declaration")
	}
	if !strings.Contains(out, `<opml version="2.0">`) {
		t.Error("Expected opml root with version 2.0")
	}
	if !strings.Contains(out, "<title>Connections</title>") {
		t.Error("Expected head title")
	}
	if !strings.Contains(out, `text="Ana &amp; Co"`) {
		t.Error("Expected escaped text attribute")
	}
	if !strings.Contains(out, `xmlUrl="https://a.example/es"`) {
		t.Error("Expected xmlUrl attribute")
	}

	var doc opmlDocument
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("Expected well-formed XML, got: %v", err)
	}
	if len(doc.Body.Outlines) != 2 {
		t.Fatalf("Expected 2 outlines, got %d", len(doc.Body.Outlines))
	}
	if doc.Body.Outlines[0].Title != "Ana & Co" || doc.Body.Outlines[0].XMLURL != "https://a.example/feed" {
		t.Errorf("Unexpected first outline: %+v", doc.Body.Outlines[0])
	}
	if doc.Body.Outlines[0].Language != "" {
		t.Errorf("Expected no language attribute on the default feed, got %q", doc.Body.Outlines[0].Language)
	}
	if doc.Body.Outlines[1].Language != "es-ES" {
		t.Errorf("Expected language es-ES, got %q", doc.Body.Outlines[1].Language)
	}
	if strings.Count(out, `language="`) != 1 {
		t.Errorf("Expected a single language attribute, got: %s", out)
	}
}

func TestGeneratorEmptyOutline(t *testing.T) {
	out, err := NewGenerator().Run(&Outline{Title: "Empty"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if strings.Contains(out, "<outline") {
		t.Error("Expected no outline entries")
	}
	if !strings.Contains(out, "<body></body>") {
		t.Errorf("Expected empty body, got: %s", out)
	}
}

func TestGeneratorNilOutline(t *testing.T) {
	if _, err := NewGenerator().Run(nil); err == nil {
		t.Error("Expected error for nil outline")
	}
}
