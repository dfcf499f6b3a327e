package hashtable

import (
	"github.com/pkg/errors"
	"iter"
)

// Iterator - Is used to iterate over the records of a HashTable one by one, bucket by bucket from bucket 0 and
// within a bucket in the order the records are stored. Empty buckets are skipped.
//
// An Iterator is bound to one table instance and becomes invalid on any structural change to that table (Insert,
// Erase, Clear, a resize, Assign, Swap or Index on an absent key). Next on an invalid Iterator returns
// IteratorInvalidated.
type Iterator[K comparable, V any] struct {
	hashTable  *HashTable[K, V]
	bucketNo   int
	position   int
	end        int
	generation uint64
}

// Begin - Returns an Iterator positioned at the first record, or equal to End() if the table is empty
func (H *HashTable[K, V]) Begin() *Iterator[K, V] {
	it := &Iterator[K, V]{
		hashTable:  H,
		end:        H.storage.NumberOfBuckets(),
		generation: H.generation,
	}
	it.skipEmpty()

	return it
}

// End - Returns an Iterator positioned past the last record, its bucket number equals the capacity
func (H *HashTable[K, V]) End() *Iterator[K, V] {
	capacity := H.storage.NumberOfBuckets()

	return &Iterator[K, V]{
		hashTable:  H,
		bucketNo:   capacity,
		end:        capacity,
		generation: H.generation,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (I *Iterator[K, V]) HasNext() bool {
	return I.bucketNo < I.end
}

// Valid - Returns true if the table has not been structurally changed since the Iterator was created
func (I *Iterator[K, V]) Valid() bool {
	return I.generation == I.hashTable.generation
}

// Next - Returns the record at the current position and moves on to the next one.
//
// It returns:
//   - key is the key of the record
//   - value is the value of the record
//   - err is of type IteratorExhausted if there are no more records, or of type IteratorInvalidated if the table
//     was changed after the Iterator was created.
func (I *Iterator[K, V]) Next() (key K, value V, err error) {
	if !I.Valid() {
		err = IteratorInvalidated{}
		return
	}
	if !I.HasNext() {
		err = IteratorExhausted{}
		return
	}

	bucket, err := I.hashTable.storage.GetBucket(I.bucketNo)
	if err != nil {
		err = errors.Wrap(err, "error while iterating over buckets")
		return
	}

	key = bucket[I.position].Key
	value = bucket[I.position].Value

	I.position++
	if I.position == len(bucket) {
		I.bucketNo++
		I.position = 0
		I.skipEmpty()
	}

	return
}

// Equal - Returns true if other iterates over the same table instance, at the same position, and both were created
// after the same structural change. Iterators over different table instances are never equal, not even when both
// are at their end, and an invalidated iterator never equals a valid one.
func (I *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	if other == nil {
		return false
	}

	return I.hashTable == other.hashTable &&
		I.generation == other.generation &&
		I.bucketNo == other.bucketNo &&
		I.position == other.position
}

// skipEmpty - Moves forward to the first non-empty bucket at or after the current bucket number
func (I *Iterator[K, V]) skipEmpty() {
	for I.bucketNo < I.end {
		bucket, err := I.hashTable.storage.GetBucket(I.bucketNo)
		if err == nil && len(bucket) > 0 {
			return
		}
		I.bucketNo++
	}
}

// All - Returns an iterator over all records for use in a range loop:
//
//	for key, value := range hashTable.All() {
//	    ...
//	}
//
// A structural change to the table from within the loop body ends the iteration.
func (H *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := H.Begin(); it.HasNext(); {
			key, value, err := it.Next()
			if err != nil || !yield(key, value) {
				return
			}
		}
	}
}

// Keys - Returns an iterator over all keys, in the same order as All
func (H *HashTable[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range H.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values - Returns an iterator over all values, in the same order as All
func (H *HashTable[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range H.All() {
			if !yield(value) {
				return
			}
		}
	}
}
