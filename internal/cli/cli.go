// Package cli implements the stackplot command-line interface.
//
// The commands render chart descriptions to SVG, PNG, PDF or a JSON shape
// dump, inspect the axis layout a chart resolves to, convert data files,
// serve renders over HTTP and manage the artifact cache. The CLI is built
// with cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - render: Draw a chart file in one or more formats
//   - ticks: Print each axis' resolved range and ticks
//   - data: Convert CSV and JSON data files
//   - serve: Run the HTTP render service
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so helpers log to the command's logger.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackplot/pkg/buildinfo"
	"github.com/matzehuels/stackplot/pkg/cache"
	"github.com/matzehuels/stackplot/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "stackplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheOpts selects the artifact cache backend.
type cacheOpts struct {
	disabled  bool
	redisAddr string
	redisDB   int
}

// newRunner creates a pipeline runner for CLI use. Artifacts from other
// builds are never served: keys are scoped by build version.
func (c *CLI) newRunner(ctx context.Context, opts cacheOpts) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, opts)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache opens the configured backend. Without Redis it falls back to
// the file cache, and without a usable cache directory to no cache.
func newCache(ctx context.Context, opts cacheOpts) (cache.Cache, error) {
	if opts.disabled {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     opts.redisAddr,
			Password: os.Getenv("STACKPLOT_REDIS_PASSWORD"),
			DB:       opts.redisDB,
		})
	}
	dir, err := cacheDir()
	if err != nil {
		loggerFromContext(ctx).Warn("caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns $XDG_CACHE_HOME/stackplot, or the platform cache
// directory when XDG_CACHE_HOME is unset.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	return cache.DefaultDir()
}
