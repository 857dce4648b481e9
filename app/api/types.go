package api

import (
	"github.com/lysyi3m/rss-press/app/feed"
	"github.com/lysyi3m/rss-press/app/outline"
)

type FeedBuilder interface {
	Run(opts feed.BuildOptions) (*feed.Result, error)
}

type OutlineBuilder interface {
	Run(opts outline.BuildOptions) (*outline.Result, error)
}

var (
	_ FeedBuilder    = (*feed.Builder)(nil)
	_ OutlineBuilder = (*outline.Builder)(nil)
)

// Handler rebuilds the documents from disk on every request.
type Handler struct {
	feeds       FeedBuilder
	feedOpts    feed.BuildOptions
	outlines    OutlineBuilder
	outlineOpts outline.BuildOptions
	version     string
}
