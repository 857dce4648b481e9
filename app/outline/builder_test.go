package outline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lysyi3m/rss-press/app/contact"
	"github.com/lysyi3m/rss-press/app/files"
)

func writeCard(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestBuilderRun(t *testing.T) {
	dir := t.TempDir()
	writeCard(t, filepath.Join(dir, "a.vcf"),
		"BEGIN:VCARD\nVERSION:4.0\nFN:Ana\nX-FEED:https://a.example/feed\nX-FEED;LANGUAGE=es-ES:https://a.example/es\nEND:VCARD\n")
	writeCard(t, filepath.Join(dir, "nested", "b.vcard"),
		"BEGIN:VCARD\nVERSION:4.0\nFN:Bo\nX-FEED:https://b.example/rss\nEND:VCARD\n")
	writeCard(t, filepath.Join(dir, "notes.txt"), "X-FEED:https://ignored.example\n")

	result, err := NewBuilderFromSettings().Run(BuildOptions{Directory: dir, Title: "Friends"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Cards != 2 {
		t.Errorf("Expected 2 cards, got %d", result.Cards)
	}
	if len(result.Outline.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(result.Outline.Entries))
	}
	if result.Outline.Entries[2].Text != "Bo" {
		t.Errorf("Expected nested card last, got %+v", result.Outline.Entries[2])
	}
	if !strings.Contains(result.XML, "<title>Friends</title>") {
		t.Error("Expected outline title in XML")
	}
	if strings.Contains(result.XML, "ignored.example") {
		t.Error("Expected non-vCard files to be ignored")
	}
}

func TestBuilderMissingDirectory(t *testing.T) {
	_, err := NewBuilderFromSettings().Run(BuildOptions{Directory: filepath.Join(t.TempDir(), "missing")})

	var missing *files.MissingDirectoryError
	if !errors.As(err, &missing) {
		t.Errorf("Expected MissingDirectoryError, got: %v", err)
	}
}

type failingReader struct {
	failOn string
}

func (r failingReader) Run(path string) ([]contact.Card, error) {
	if filepath.Base(path) == r.failOn {
		return nil, errors.New("unreadable")
	}
	return contact.NewReader().Run(path)
}

func TestBuilderFailurePolicy(t *testing.T) {
	dir := t.TempDir()
	writeCard(t, filepath.Join(dir, "a.vcf"), "BEGIN:VCARD\nVERSION:4.0\nFN:Ana\nX-FEED:https://a.example/feed\nEND:VCARD\n")
	writeCard(t, filepath.Join(dir, "b.vcf"), "BEGIN:VCARD\nVERSION:4.0\nFN:Bo\nEND:VCARD\n")

	builder := NewBuilder(failingReader{failOn: "b.vcf"}, NewGenerator())

	if _, err := builder.Run(BuildOptions{Directory: dir}); err == nil {
		t.Error("Expected failure to abort the build")
	}

	result, err := builder.Run(BuildOptions{Directory: dir, KeepGoing: true})
	if err != nil {
		t.Fatalf("Expected keep-going build to succeed, got: %v", err)
	}
	if len(result.Skipped) != 1 || filepath.Base(result.Skipped[0].Path) != "b.vcf" {
		t.Errorf("Expected b.vcf to be skipped, got %+v", result.Skipped)
	}
	if len(result.Outline.Entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(result.Outline.Entries))
	}
}
