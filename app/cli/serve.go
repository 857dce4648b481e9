package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/rss-press/app/api"
	"github.com/lysyi3m/rss-press/app/cfg"
	"github.com/lysyi3m/rss-press/app/feed"
	"github.com/lysyi3m/rss-press/app/outline"
)

type ServeCommand struct {
	Port string `long:"port" env:"PORT" description:"HTTP server port (default: 8080)"`

	Sanitize bool `long:"sanitize" description:"Strip unsafe HTML from rendered posts"`

	app *App
}

func (c *ServeCommand) Execute(args []string) error {
	port := cfg.ResolvePort(c.Port, c.app.file)
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      c.router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, server)
}

func (c *ServeCommand) router() http.Handler {
	feedSettings := cfg.ResolveFeed(cfg.FeedOptions{}, c.Sanitize, c.app.file)
	feedSettings.Location = c.app.location
	contactSettings := cfg.ResolveContacts(cfg.ContactOptions{}, c.app.file)

	handler := api.NewHandler(
		feed.NewBuilderFromSettings(feedSettings),
		feed.OptionsFromSettings(feedSettings, true, false),
		outline.NewBuilderFromSettings(),
		outline.OptionsFromSettings(contactSettings, true),
		cfg.GetVersion(),
	)
	return api.NewServer(handler)
}

// serve runs server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, server *http.Server) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting preview server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	return nil
}
