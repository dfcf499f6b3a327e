package hashtable

import (
	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/storage/separatechaining"
	"github.com/gostonefire/hashtable/internal/utils"
	"github.com/pkg/errors"
)

// Pair - A key and its value as stored in the hash table
type Pair[K comparable, V any] = model.Pair[K, V]

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Capacity is the number of buckets
//   - LoadFactor is Records divided by Capacity
//   - BucketDistribution is the number of records stored in each bucket
//   - LongestBucket is the number of records in the most populated bucket
//   - EmptyBuckets is the number of buckets holding no records
type HashTableStat struct {
	Records            int
	Capacity           int
	LoadFactor         float64
	BucketDistribution []int
	LongestBucket      int
	EmptyBuckets       int
}

// HashTable - A hash table using separate chaining, mapping keys of any comparable type to values.
//
// The number of buckets (the capacity) is always an exponent of 2 and never less than 16. It doubles when an insert
// makes the load factor exceed 0.75 and halves when an erase makes it drop below 0.25. Erasing the last record
// resets the capacity to 16.
//
// A HashTable is not safe for concurrent use. It is meant to be owned by one goroutine at a time, callers sharing
// it must synchronize access themselves.
type HashTable[K comparable, V any] struct {
	storage *separatechaining.Buckets[K, V]
	// generation is bumped on every structural change so that iterators can detect they are stale
	generation uint64
	log        logger.Logger
}

// New - Returns a new empty hash table with 16 buckets.
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm
//     interface. If nil, string keys are hashed using xxhash and other keys using a seeded maphash.
func New[K comparable, V any](hashAlgorithm hashfunc.HashAlgorithm[K]) (hashTable *HashTable[K, V]) {
	hashTable = newHashTable[K, V](conf.MinimumCapacity, hashAlgorithm)

	return
}

// NewFromSlices - Returns a new hash table holding keys[i] mapped to values[i] for each i.
// The table is sized for len(keys) records, so when keys repeat it may start out below conf.DownThreshold until
// the first erase shrinks it. If a key occurs more than once the value that comes last is kept.
//   - keys is the keys to store
//   - values is the values to store, must be of the same length as keys
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct, nil if err is not nil
//   - err is of type SizeMismatch if keys and values differ in length
func NewFromSlices[K comparable, V any](keys []K, values []V, hashAlgorithm hashfunc.HashAlgorithm[K]) (
	hashTable *HashTable[K, V],
	err error,
) {
	if len(keys) != len(values) {
		err = errors.WithMessagef(SizeMismatch{}, "got %d keys and %d values", len(keys), len(values))
		return
	}

	hashTable = newHashTable[K, V](utils.StartCapacity(len(keys)), hashAlgorithm)
	for i := range keys {
		hashTable.set(keys[i], values[i])
	}

	return
}

// newHashTable - Returns a pointer to a new HashTable with the given number of buckets
func newHashTable[K comparable, V any](numberOfBuckets int, hashAlgorithm hashfunc.HashAlgorithm[K]) *HashTable[K, V] {
	hashTable := &HashTable[K, V]{
		storage: separatechaining.NewBuckets[K, V](numberOfBuckets, hashAlgorithm),
	}
	config.InitLogger(&hashTable.log, conf.LoggerPrefix)

	return hashTable
}

// Size - Returns the number of records stored
func (H *HashTable[K, V]) Size() int {
	return H.storage.Records()
}

// Capacity - Returns the number of buckets
func (H *HashTable[K, V]) Capacity() int {
	return H.storage.NumberOfBuckets()
}

// Empty - Returns true if no records are stored
func (H *HashTable[K, V]) Empty() bool {
	return H.storage.Records() == 0
}

// LoadFactor - Returns the number of records divided by the number of buckets
func (H *HashTable[K, V]) LoadFactor() float64 {
	return H.storage.GetStorageParameters().LoadFactor
}

// Stat - Returns statistics on the usage and distribution of records over buckets
func (H *HashTable[K, V]) Stat() (stat HashTableStat) {
	sp := H.storage.GetStorageParameters()
	distribution := H.storage.Distribution()

	stat = HashTableStat{
		Records:            sp.Records,
		Capacity:           sp.NumberOfBuckets,
		LoadFactor:         sp.LoadFactor,
		BucketDistribution: distribution,
	}

	for _, n := range distribution {
		if n == 0 {
			stat.EmptyBuckets++
		}
		if n > stat.LongestBucket {
			stat.LongestBucket = n
		}
	}

	return
}

// Clone - Returns a deep copy of the hash table. The copy has its own array of buckets, of the same capacity and with
// the same records, and shares nothing with the original except the hash algorithm.
func (H *HashTable[K, V]) Clone() *HashTable[K, V] {
	return &HashTable[K, V]{
		storage: H.storage.Clone(),
		log:     H.log,
	}
}

// Swap - Exchanges the contents of the two hash tables. Iterators on both become invalid.
func (H *HashTable[K, V]) Swap(other *HashTable[K, V]) {
	H.storage, other.storage = other.storage, H.storage
	H.generation++
	other.generation++
}

// Assign - Replaces the contents of the hash table with a deep copy of other.
// The copy is made before anything is replaced, so assigning a table to itself leaves it unchanged.
func (H *HashTable[K, V]) Assign(other *HashTable[K, V]) {
	tmp := other.Clone()
	H.Swap(tmp)
}

// set - Overwrites the value of an existing key or inserts a new record, growing the table if needed
func (H *HashTable[K, V]) set(key K, value V) {
	if !H.storage.Set(key, value) {
		return
	}

	H.generation++
	H.grow()
}

// resize - Rehashes all records into the given number of buckets
func (H *HashTable[K, V]) resize(numberOfBuckets int) {
	H.log.Debug("Resizing from %d to %d buckets holding %d records.",
		H.storage.NumberOfBuckets(), numberOfBuckets, H.storage.Records())

	H.storage.Rehash(numberOfBuckets)
	H.generation++
}

// grow - Resizes to a larger number of buckets if the load factor exceeds the up threshold
func (H *HashTable[K, V]) grow() {
	current := H.storage.NumberOfBuckets()
	target := utils.GrowCapacity(H.storage.Records(), current)
	if target != current {
		H.resize(target)
	}
}

// shrink - Resizes to a smaller number of buckets if the load factor is below the down threshold, or resets to the
// minimum capacity if the table became empty
func (H *HashTable[K, V]) shrink() {
	if H.storage.Records() == 0 {
		H.log.Debug("Table is empty, resetting from %d to %d buckets.", H.storage.NumberOfBuckets(), conf.MinimumCapacity)
		H.storage.Reset(conf.MinimumCapacity)
		H.generation++
		return
	}

	current := H.storage.NumberOfBuckets()
	target := utils.ShrinkCapacity(H.storage.Records(), current)
	if target != current {
		H.resize(target)
	}
}
