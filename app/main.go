package main

import (
	"os"

	"github.com/lysyi3m/rss-press/app/cli"
	"github.com/lysyi3m/rss-press/app/console"
)

func main() {
	app := cli.New(console.NewPrinter(), os.Stderr)
	os.Exit(app.Run(os.Args[1:]))
}
