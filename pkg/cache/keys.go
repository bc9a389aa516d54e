package cache

import (
	"fmt"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Charts are
// addressed by content, so entries never go stale; the TTL only bounds
// the store's size.
const TTLArtifact = 7 * 24 * time.Hour

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey names a rendered artifact of the chart with the given
	// digest.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the output options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer builds keys of the form "artifact:<format>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), chartHash, opts)
}
