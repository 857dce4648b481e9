package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lysyi3m/rss-press/app/feed"
	"github.com/lysyi3m/rss-press/app/outline"
	"github.com/lysyi3m/rss-press/app/post"
)

func newTestServer(t *testing.T, postsDir, contactsDir string, requireItems bool) http.Handler {
	t.Helper()
	feedBuilder := feed.NewBuilder(post.NewParser(post.NewRenderer(nil), nil), feed.NewGenerator("test"))
	feedOpts := feed.BuildOptions{
		Directory:    postsDir,
		Metadata:     feed.Metadata{Title: "Preview", Link: "https://example.com", Language: "en-US"},
		RequireItems: requireItems,
	}
	outlineOpts := outline.BuildOptions{Directory: contactsDir, Title: "Connections"}

	handler := NewHandler(feedBuilder, feedOpts, outline.NewBuilderFromSettings(), outlineOpts, "test")
	return NewServer(handler)
}

func get(t *testing.T, server http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestGetFeed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.md"), []byte("---\ntitle: Hello\ndate: 2024-05-01\n---\n# Hi\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := get(t, newTestServer(t, dir, dir, false), "/feed.xml")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Feed-Items") != "1" {
		t.Errorf("Expected X-Feed-Items 1, got %q", rec.Header().Get("X-Feed-Items"))
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "application/rss+xml") {
		t.Errorf("Unexpected content type: %s", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Body.String(), "<title>Hello</title>") {
		t.Error("Expected item title in feed")
	}
}

func TestGetFeedRebuildsPerRequest(t *testing.T) {
	dir := t.TempDir()
	server := newTestServer(t, dir, dir, false)

	if rec := get(t, server, "/feed.xml"); rec.Header().Get("X-Feed-Items") != "0" {
		t.Fatalf("Expected empty feed first, got %q", rec.Header().Get("X-Feed-Items"))
	}

	if err := os.WriteFile(filepath.Join(dir, "later.md"), []byte("Later post\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if rec := get(t, server, "/feed.xml"); rec.Header().Get("X-Feed-Items") != "1" {
		t.Errorf("Expected new post to appear, got %q", rec.Header().Get("X-Feed-Items"))
	}
}

func TestGetFeedErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	if rec := get(t, newTestServer(t, missing, missing, false), "/feed.xml"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing directory, got %d", rec.Code)
	}

	empty := t.TempDir()
	if rec := get(t, newTestServer(t, empty, empty, true), "/feed.xml"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for empty directory, got %d", rec.Code)
	}

	if err := os.WriteFile(filepath.Join(empty, "bad.md"), []byte("---\ndate: someday\n---\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if rec := get(t, newTestServer(t, empty, empty, false), "/feed.xml"); rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for malformed date, got %d", rec.Code)
	}
}

func TestGetOutline(t *testing.T) {
	dir := t.TempDir()
	card := "BEGIN:VCARD\nVERSION:4.0\nFN:Ana\nX-FEED:https://a.example/feed\nEND:VCARD\n"
	if err := os.WriteFile(filepath.Join(dir, "ana.vcf"), []byte(card), 0644); err != nil {
		t.Fatal(err)
	}

	rec := get(t, newTestServer(t, dir, dir, false), "/connections.opml")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Outline-Entries") != "1" {
		t.Errorf("Expected 1 outline entry, got %q", rec.Header().Get("X-Outline-Entries"))
	}
	if !strings.Contains(rec.Body.String(), `xmlUrl="https://a.example/feed"`) {
		t.Error("Expected feed URL in outline")
	}
}

func TestGetHealthAndIndex(t *testing.T) {
	dir := t.TempDir()
	server := newTestServer(t, dir, dir, false)

	rec := get(t, server, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var health map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("Expected JSON body, got: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", health["status"])
	}

	rec = get(t, server, "/")
	if !strings.Contains(rec.Body.String(), "/connections.opml") {
		t.Error("Expected index to list the outline endpoint")
	}

	if rec := get(t, server, "/favicon.ico"); rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for favicon, got %d", rec.Code)
	}
}
