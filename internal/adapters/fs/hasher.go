// Package fs implements filesystem-backed adapters: definition files on disk
// and the fingerprinting used to tell definition revisions apart.
package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dynctl/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints closure definitions with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the XXHash of data as a fixed-width hex string.
func (h *Hasher) Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
