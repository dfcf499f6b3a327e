package separatechaining

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/utils"
	"github.com/pkg/errors"
)

// Buckets - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It owns one contiguous array of buckets where each bucket holds the records whose hash value, masked by
// (number of buckets - 1), equals the bucket number.
//
// Buckets knows nothing about load factors, it resizes only when told to by a call to Rehash.
type Buckets[K comparable, V any] struct {
	buckets       []model.Bucket[K, V]
	records       int
	mask          uint64
	hashAlgorithm hashfunc.HashAlgorithm[K]
}

// NewBuckets - Returns a pointer to a new instance of the Separate Chaining storage.
//   - numberOfBuckets is the number of buckets to allocate, it is rounded up to the nearest exponent of 2
//   - hashAlgorithm is the hash function to use, if nil the internal default for the key type is used
//
// It returns:
//   - buckets which is a pointer to the created instance
func NewBuckets[K comparable, V any](numberOfBuckets int, hashAlgorithm hashfunc.HashAlgorithm[K]) (buckets *Buckets[K, V]) {
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewDefaultHashAlgorithm[K]()
	}

	numberOfBuckets = utils.RoundUp2(numberOfBuckets)

	buckets = &Buckets[K, V]{
		buckets:       make([]model.Bucket[K, V], numberOfBuckets),
		mask:          uint64(numberOfBuckets - 1),
		hashAlgorithm: hashAlgorithm,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from Buckets
func (S *Buckets[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets: len(S.buckets),
		Records:         S.records,
		LoadFactor:      utils.LoadFactor(S.records, len(S.buckets)),
	}

	return
}

// NumberOfBuckets - Returns the number of allocated buckets
func (S *Buckets[K, V]) NumberOfBuckets() int {
	return len(S.buckets)
}

// Records - Returns the total number of records over all buckets
func (S *Buckets[K, V]) Records() int {
	return S.records
}

// HashAlgorithm - Returns the hash algorithm in use
func (S *Buckets[K, V]) HashAlgorithm() hashfunc.HashAlgorithm[K] {
	return S.hashAlgorithm
}

// GetBucketNo - Returns the bucket number that the key maps to given the current number of buckets
func (S *Buckets[K, V]) GetBucketNo(key K) int {
	return int(S.hashAlgorithm.HashFunc(key) & S.mask)
}

// GetBucket - Returns the records in a bucket given the bucket number.
// The returned bucket shares memory with the storage and must not be modified, nor kept past the next call to
// Insert, Set, Delete, Rehash or Reset.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is the records of the bucket
//   - err is a standard error if the bucket number is out of range
func (S *Buckets[K, V]) GetBucket(bucketNo int) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= len(S.buckets) {
		err = errors.Errorf("bucket number %d out of range [0, %d)", bucketNo, len(S.buckets))
		return
	}

	bucket = S.buckets[bucketNo]

	return
}

// Get - Returns a pointer to the value stored with key.
// The pointer stays valid until the next call to Insert, Set, Delete, Rehash or Reset.
//
// It returns:
//   - value is a pointer to the stored value, nil if no record was found
//   - found is true if a record with the key exists
func (S *Buckets[K, V]) Get(key K) (value *V, found bool) {
	bucketNo := S.GetBucketNo(key)
	position, found := S.buckets[bucketNo].Find(key)
	if !found {
		return
	}

	value = &S.buckets[bucketNo][position].Value

	return
}

// Insert - Appends a new record to its bucket unless a record with the same key already exists.
//
// It returns:
//   - inserted is true if the record was added, false if the key already existed in which case nothing is changed
func (S *Buckets[K, V]) Insert(key K, value V) (inserted bool) {
	bucketNo := S.GetBucketNo(key)
	if _, found := S.buckets[bucketNo].Find(key); found {
		return
	}

	S.buckets[bucketNo] = append(S.buckets[bucketNo], model.Pair[K, V]{Key: key, Value: value})
	S.records++
	inserted = true

	return
}

// Set - Updates an existing record with new value or adds it if no existing is found with same key.
//
// It returns:
//   - inserted is true if a new record was added, false if an existing record was updated
func (S *Buckets[K, V]) Set(key K, value V) (inserted bool) {
	bucketNo := S.GetBucketNo(key)
	if position, found := S.buckets[bucketNo].Find(key); found {
		S.buckets[bucketNo][position].Value = value
		return
	}

	S.buckets[bucketNo] = append(S.buckets[bucketNo], model.Pair[K, V]{Key: key, Value: value})
	S.records++
	inserted = true

	return
}

// Delete - Removes the record with the given key, the last record of the bucket takes its place.
//
// It returns:
//   - deleted is true if a record was removed, false if no record with the key existed
func (S *Buckets[K, V]) Delete(key K) (deleted bool) {
	bucketNo := S.GetBucketNo(key)
	position, found := S.buckets[bucketNo].Find(key)
	if !found {
		return
	}

	S.buckets[bucketNo] = S.buckets[bucketNo].SwapRemove(position)
	S.records--
	deleted = true

	return
}

// Rehash - Allocates a new array of buckets and moves every record to its bucket given the new number of buckets.
// The old array is dropped once all records are moved.
//   - numberOfBuckets is the new number of buckets, it is rounded up to the nearest exponent of 2
func (S *Buckets[K, V]) Rehash(numberOfBuckets int) {
	numberOfBuckets = utils.RoundUp2(numberOfBuckets)
	newMask := uint64(numberOfBuckets - 1)
	newBuckets := make([]model.Bucket[K, V], numberOfBuckets)

	for _, bucket := range S.buckets {
		for _, record := range bucket {
			bucketNo := S.hashAlgorithm.HashFunc(record.Key) & newMask
			newBuckets[bucketNo] = append(newBuckets[bucketNo], record)
		}
	}

	S.buckets = newBuckets
	S.mask = newMask
}

// Reset - Drops all records and allocates a new empty array of buckets
//   - numberOfBuckets is the new number of buckets, it is rounded up to the nearest exponent of 2
func (S *Buckets[K, V]) Reset(numberOfBuckets int) {
	numberOfBuckets = utils.RoundUp2(numberOfBuckets)
	S.buckets = make([]model.Bucket[K, V], numberOfBuckets)
	S.mask = uint64(numberOfBuckets - 1)
	S.records = 0
}

// Clone - Returns a deep copy having its own array of buckets with the same number of buckets and the same records
// in the same order. The hash algorithm instance is shared since it must give identical bucket numbers.
func (S *Buckets[K, V]) Clone() (clone *Buckets[K, V]) {
	clone = &Buckets[K, V]{
		buckets:       make([]model.Bucket[K, V], len(S.buckets)),
		records:       S.records,
		mask:          S.mask,
		hashAlgorithm: S.hashAlgorithm,
	}

	for i, bucket := range S.buckets {
		if len(bucket) > 0 {
			clone.buckets[i] = append(model.Bucket[K, V](nil), bucket...)
		}
	}

	return
}

// Distribution - Returns the number of records stored in each bucket
func (S *Buckets[K, V]) Distribution() (distribution []int) {
	distribution = make([]int, len(S.buckets))
	for i, bucket := range S.buckets {
		distribution[i] = len(bucket)
	}

	return
}
