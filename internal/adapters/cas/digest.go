package cas

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints datasets with xxHash64 over their on-disk encoding.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashDataset returns the digest of data as it would be stored on disk.
func (h *Hasher) HashDataset(data domain.Dataset) string {
	d := xxhash.New()
	// xxhash.Digest.Write never fails.
	_ = writeValues(d, data)
	return fmt.Sprintf("xxh64:%016x", d.Sum64())
}
