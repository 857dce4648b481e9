package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/rss-press/app/feed"
	"github.com/lysyi3m/rss-press/app/files"
	"github.com/lysyi3m/rss-press/app/outline"
)

func NewHandler(feeds FeedBuilder, feedOpts feed.BuildOptions,
	outlines OutlineBuilder, outlineOpts outline.BuildOptions, version string) *Handler {
	return &Handler{
		feeds:       feeds,
		feedOpts:    feedOpts,
		outlines:    outlines,
		outlineOpts: outlineOpts,
		version:     version,
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	result, err := h.feeds.Run(h.feedOpts)
	if err != nil {
		slog.Error("Feed build error", "dir", h.feedOpts.Directory, "error", err)
		c.String(statusFor(err), err.Error())
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(result.Feed.Items)))
	c.Header("X-Feed-Skipped", strconv.Itoa(len(result.Skipped)))
	c.Header("X-Last-Updated", result.Feed.BuildDate.Format(time.RFC3339))

	c.String(http.StatusOK, result.XML)
}

func (h *Handler) GetOutline(c *gin.Context) {
	result, err := h.outlines.Run(h.outlineOpts)
	if err != nil {
		slog.Error("Outline build error", "dir", h.outlineOpts.Directory, "error", err)
		c.String(statusFor(err), err.Error())
		return
	}

	c.Header("Content-Type", "text/x-opml; charset=utf-8")
	c.Header("X-Outline-Entries", strconv.Itoa(len(result.Outline.Entries)))

	c.String(http.StatusOK, result.XML)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "RSS Press",
		"version":     h.version,
		"description": "Preview of the feed and outline built from local files",
		"endpoints": map[string]string{
			"feed":    "/feed.xml",
			"outline": "/connections.opml",
			"health":  "/health",
		},
		"sources": map[string]string{
			"posts":    h.feedOpts.Directory,
			"contacts": h.outlineOpts.Directory,
		},
	})
}

func statusFor(err error) int {
	var missing *files.MissingDirectoryError
	switch {
	case errors.As(err, &missing), errors.Is(err, feed.ErrEmptyDirectory):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
