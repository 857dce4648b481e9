package cli

import (
	"cmp"
	"path/filepath"

	"github.com/lysyi3m/rss-press/app/cfg"
	"github.com/lysyi3m/rss-press/app/files"
	"github.com/lysyi3m/rss-press/app/post"
)

type NewCommand struct {
	Directory *string `long:"directory" short:"d" description:"Directory where the post is created"`
	Title     string  `long:"title" description:"Title of the new post"`
	Message   string  `long:"message" description:"Content of the new post (default: This is the post content.)"`
	Filename  string  `long:"filename" description:"File name without extension (default: the creation time)"`

	app *App
}

func (c *NewCommand) Execute(args []string) error {
	var fileDir *string
	if c.app.file != nil {
		fileDir = c.app.file.Feed.Directory
	}
	dir := cfg.Pick(".", c.Directory, fileDir)

	if err := files.RequireDirectory(dir); err != nil {
		return err
	}

	now := c.app.now()
	name := cmp.Or(c.Filename, post.DefaultFilename(now))
	path := filepath.Join(dir, name+".md")

	message := cmp.Or(c.Message, post.DefaultMessage)
	if err := files.CreateExclusive(path, post.Compose(c.Title, now, message)); err != nil {
		return err
	}

	c.app.printer.Success("New post created: %s", path)
	return nil
}
