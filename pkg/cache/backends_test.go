package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "chart"); hit || err != nil {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}
	if err := c.Set(ctx, "chart", []byte("<svg/>"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "chart")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "chart"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "chart"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "chart"); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry was returned")
	}
	if _, err := os.Stat(c.path("old")); !os.IsNotExist(err) {
		t.Error("expired entry was not removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("%d entries left after Clear", len(entries))
	}
}

// fakeRedis is an in-memory RedisClient.
type fakeRedis struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	err    error
	closed bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value.([]byte)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	prefix := strings.TrimSuffix(match, "*")
	var keys []string
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return redis.NewScanCmdResult(keys, 0, f.err)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	c := NewRedisCacheWithClient(fake, "")

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("miss: hit=%v err=%v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("png"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, ok := fake.data[DefaultRedisPrefix+"k"]; !ok {
		t.Errorf("key not prefixed: %v", fake.data)
	}
	if fake.ttls[DefaultRedisPrefix+"k"] != time.Hour {
		t.Errorf("ttl = %v", fake.ttls[DefaultRedisPrefix+"k"])
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "png" {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("entry survived Delete")
	}

	if err := c.Close(); err != nil || !fake.closed {
		t.Errorf("Close: %v closed=%v", err, fake.closed)
	}
}

func TestRedisCacheClearKeepsForeignKeys(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	fake.data["other:key"] = []byte("keep")
	c := NewRedisCacheWithClient(fake, "plots:")

	for _, k := range []string{"a", "b"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if len(fake.data) != 1 || fake.data["other:key"] == nil {
		t.Errorf("data after Clear = %v", fake.data)
	}
}

func TestRedisCacheErrorsAreRetryable(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	fake.err = errors.New("connection refused")
	c := NewRedisCacheWithClient(fake, "")

	_, _, err := c.Get(ctx, "k")
	if !errors.Is(err, ErrUnavailable) || !IsRetryable(err) {
		t.Errorf("Get error = %v, want retryable ErrUnavailable", err)
	}

	calls := 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return c.Set(ctx, "k", []byte("x"), 0)
	})
	if err == nil || calls != 3 {
		t.Errorf("RetryWithBackoff: err=%v calls=%d", err, calls)
	}

	fake.err = context.Canceled
	if _, _, err := c.Get(ctx, "k"); IsRetryable(err) {
		t.Errorf("cancellation should not be retryable: %v", err)
	}
}
