// Command mediafix moves the contents of a misplaced media directory
// into the configured media root. One-shot, safe to re-run: a missing
// or empty source directory is a no-op and individual move failures are
// skipped, not fatal.
//
// Usage: mediafix [misplaced-dir]   (default "../media")
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aayushivora31/techblog/internal/config"
	"github.com/aayushivora31/techblog/internal/services"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	src := "../media"
	if len(os.Args) > 1 {
		src = os.Args[1]
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	store := services.NewMediaStore(cfg.MediaRoot, logger)
	logger.Info("Relocating media", "from", src, "to", cfg.MediaRoot)

	if err := store.Relocate(src); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
