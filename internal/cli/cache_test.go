package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/stackplot/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, "stackplot"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if !strings.HasSuffix(dir, "stackplot") {
		t.Errorf("cacheDir() = %q, should end with 'stackplot'", dir)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx := context.Background()

	off, err := newCache(ctx, cacheOpts{disabled: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := off.(cache.NullCache); !ok {
		t.Errorf("disabled cache = %T", off)
	}

	on, err := newCache(ctx, cacheOpts{})
	if err != nil {
		t.Fatal(err)
	}
	defer on.Close()
	if _, ok := on.(*cache.FileCache); !ok {
		t.Errorf("default cache = %T", on)
	}
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	ctx := context.Background()

	fc, err := cache.NewFileCache(filepath.Join(xdg, "stackplot"))
	if err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(ctx, "artifact:svg:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := fc.Get(ctx, "artifact:svg:abc"); hit {
		t.Error("entry survived cache clear")
	}
}
