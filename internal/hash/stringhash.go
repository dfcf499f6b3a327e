package hash

import (
	"github.com/cespare/xxhash/v2"
)

// StringHashAlgorithm - The internally used hash algorithm for string keys, implemented using xxhash.Sum64String.
type StringHashAlgorithm struct{}

// NewStringHashAlgorithm - Returns a pointer to a new StringHashAlgorithm instance
func NewStringHashAlgorithm() *StringHashAlgorithm {
	return &StringHashAlgorithm{}
}

// HashFunc - Given key it generates a 64 bit hash value
func (S *StringHashAlgorithm) HashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}
