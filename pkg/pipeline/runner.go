package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/stackplot/pkg/cache"
	"github.com/matzehuels/stackplot/pkg/config"
	"github.com/matzehuels/stackplot/pkg/core/series"
	"github.com/matzehuels/stackplot/pkg/errors"
	"github.com/matzehuels/stackplot/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different charts.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, chart *config.Chart, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	ss, err := r.Load(ctx, chart, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SeriesCount = len(ss)
	result.Stats.PointCount = countRows(ss)

	digest, err := Digest(chart, ss)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "digest chart")
	}
	result.Digest = digest

	r.Logger.Debug("loaded series",
		"series", result.Stats.SeriesCount,
		"points", result.Stats.PointCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, chart, ss, digest, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Formats)

	r.Logger.Info("rendered chart",
		"formats", opts.Formats,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load builds the chart's series.
func (r *Runner) Load(ctx context.Context, chart *config.Chart, opts Options) ([]*series.Series, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, len(chart.Series))
	start := time.Now()

	ss, err := chart.BuildSeries(config.LoadOptions{AllowFiles: opts.AllowFiles})
	hooks.OnLoadComplete(ctx, len(ss), countRows(ss), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if n := countRows(ss); n > errors.MaxPoints {
		return nil, errors.New(errors.ErrCodeTooLarge, "%d data points (max %d)", n, errors.MaxPoints)
	}
	return ss, nil
}

// RenderWithCacheInfo produces every requested format, serving what it
// can from the cache and rendering the rest concurrently. It returns the
// formats that were cache hits.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, chart *config.Chart, ss []*series.Series, digest string, opts Options) (map[string][]byte, []string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var hits, missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(digest, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if err == nil && hit {
				observability.Cache().OnCacheHit(ctx, format)
				artifacts[format] = data
				hits = append(hits, format)
				continue
			}
			observability.Cache().OnCacheMiss(ctx, format)
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, hits, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range missing {
		g.Go(func() error {
			data, err := r.renderFormat(gctx, chart, ss, format, opts.Scale)
			if err != nil {
				return err
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for _, format := range missing {
		r.store(ctx, digest, format, artifacts[format], opts)
	}
	return artifacts, hits, nil
}

// renderFormat runs on an errgroup goroutine, out of reach of any caller's
// panic recovery, so panics come back as RENDER_FAILED errors.
func (r *Runner) renderFormat(ctx context.Context, chart *config.Chart, ss []*series.Series, format string, scale float64) (out []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, errors.New(errors.ErrCodeRenderFailed, "render %s: panic: %v", format, p)
		}
	}()

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	data, err := Render(ctx, chart, ss, format, scale)
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	r.Logger.Debug("rendered format", "format", format, "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

// store writes an artifact to the cache. Failures are logged and do not
// fail the run.
func (r *Runner) store(ctx context.Context, digest, format string, data []byte, opts Options) {
	key := r.Keyer.ArtifactKey(digest, opts.ArtifactKeyOpts(format))
	err := cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	})
	if err != nil {
		r.Logger.Warn("cache write failed", "format", format, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, format, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// Digest hashes the chart together with its loaded rows, so a chart whose
// data file changed gets a new digest. Rows are hashed in their printed
// form because JSON cannot carry NaN or infinities.
func Digest(chart *config.Chart, ss []*series.Series) (string, error) {
	c := *chart
	c.Series = make([]config.Series, len(chart.Series))
	for i, s := range chart.Series {
		s.Data = nil
		c.Series[i] = s
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", err
	}
	for _, s := range ss {
		fmt.Fprintf(&buf, "\n%q %v", s.Label, s.Data)
	}
	return cache.Hash(buf.Bytes()), nil
}

func countRows(ss []*series.Series) int {
	n := 0
	for _, s := range ss {
		n += len(s.Data)
	}
	return n
}
