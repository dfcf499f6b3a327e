package hash

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"hash/maphash"
)

// ComparableHashAlgorithm - Hash algorithm for any comparable key type, implemented using maphash.Comparable with a
// seed that is randomly chosen when the instance is created. Two instances will thus not give the same hash value for
// the same key, which is fine since a table and its clones always share one instance.
type ComparableHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHashAlgorithm - Returns a pointer to a new ComparableHashAlgorithm instance
func NewComparableHashAlgorithm[K comparable]() *ComparableHashAlgorithm[K] {
	return &ComparableHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// HashFunc - Given key it generates a 64 bit hash value
func (C *ComparableHashAlgorithm[K]) HashFunc(key K) uint64 {
	return maphash.Comparable(C.seed, key)
}

// NewDefaultHashAlgorithm - Returns the internal hash algorithm to use for keys of type K.
// Keys of type string get the StringHashAlgorithm, any other key type (including named string types) gets a
// ComparableHashAlgorithm.
func NewDefaultHashAlgorithm[K comparable]() hashfunc.HashAlgorithm[K] {
	if ha, ok := any(NewStringHashAlgorithm()).(hashfunc.HashAlgorithm[K]); ok {
		return ha
	}

	return NewComparableHashAlgorithm[K]()
}
