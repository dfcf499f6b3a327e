package hashfunc

import (
	"hash/crc32"
)

// CRC32HashAlgorithm - Hash algorithm for string keys implemented using crc32.ChecksumIEEE to create a hash value over
// the key. It is slower than the internal xxhash based algorithm and only spans 32 bits, but gives the same bucket
// numbers as a file hash map using crc32 does for the same keys and number of buckets.
type CRC32HashAlgorithm struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm() *CRC32HashAlgorithm {
	return &CRC32HashAlgorithm{}
}

// HashFunc - Given key it generates a hash value, only the lower 32 bits are used
func (C *CRC32HashAlgorithm) HashFunc(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}
