package hashtable

import (
	"github.com/pkg/errors"
)

// Insert - Adds a record unless a record with the same key already exists.
// If the insert makes the load factor exceed 0.75 the table is resized to twice the number of buckets.
//   - key is the identifier of the record
//   - value is the value to store along with the key
//
// It returns:
//   - inserted is true if the record was added, false (and nothing changed) if the key was already present
func (H *HashTable[K, V]) Insert(key K, value V) (inserted bool) {
	if !H.storage.Insert(key, value) {
		return
	}

	H.generation++
	H.grow()
	inserted = true

	return
}

// ContainsKey - Returns true if a record with the key exists
func (H *HashTable[K, V]) ContainsKey(key K) bool {
	_, found := H.storage.Get(key)

	return found
}

// At - Gets the value stored with key.
//
// It returns:
//   - value is the value of the matching record
//   - err is of type KeyNotFound if there is no record with the key
func (H *HashTable[K, V]) At(key K) (value V, err error) {
	v, found := H.storage.Get(key)
	if !found {
		err = errors.WithMessagef(KeyNotFound{}, "key %v", key)
		return
	}

	value = *v

	return
}

// AtPtr - Gets a pointer to the value stored with key, through which the value can be changed in place.
// The pointer must not be used after the next Insert, Erase, Clear, Assign or Swap on the table, nor after a call
// to Index for an absent key.
//
// It returns:
//   - value is a pointer to the value of the matching record
//   - err is of type KeyNotFound if there is no record with the key
func (H *HashTable[K, V]) AtPtr(key K) (value *V, err error) {
	value, found := H.storage.Get(key)
	if !found {
		err = errors.WithMessagef(KeyNotFound{}, "key %v", key)
	}

	return
}

// Erase - Removes the record with the given key.
// If the table becomes empty its capacity is reset to 16, otherwise if the load factor drops below 0.25 the table is
// resized to half the number of buckets (but never below 16).
//
// It returns:
//   - erased is true if a record was removed, false (and nothing changed) if the key was not present
func (H *HashTable[K, V]) Erase(key K) (erased bool) {
	if !H.storage.Delete(key) {
		return
	}

	H.generation++
	H.shrink()
	erased = true

	return
}

// BucketSize - Returns the number of records in the bucket holding key.
//
// It returns:
//   - size is the number of records in the bucket, including the one with key
//   - err is of type InvalidArgument if there is no record with the key
func (H *HashTable[K, V]) BucketSize(key K) (size int, err error) {
	bucketNo, err := H.BucketIndex(key)
	if err != nil {
		return
	}

	bucket, err := H.storage.GetBucket(bucketNo)
	if err != nil {
		return
	}

	size = len(bucket)

	return
}

// BucketIndex - Returns the number of the bucket holding key.
//
// It returns:
//   - bucketNo is the bucket number, between 0 and Capacity() - 1
//   - err is of type InvalidArgument if there is no record with the key
func (H *HashTable[K, V]) BucketIndex(key K) (bucketNo int, err error) {
	if !H.ContainsKey(key) {
		err = errors.WithMessagef(InvalidArgument{}, "key %v not found", key)
		return
	}

	bucketNo = H.storage.GetBucketNo(key)

	return
}

// Clear - Removes all records, the capacity is kept
func (H *HashTable[K, V]) Clear() {
	H.storage.Reset(H.storage.NumberOfBuckets())
	H.generation++
}

// Index - Returns a pointer to the value stored with key. If there is no record with the key, one is first inserted
// with the zero value of V, which may resize the table.
// The pointer is subject to the same restrictions as the one returned by AtPtr.
func (H *HashTable[K, V]) Index(key K) *V {
	if value, found := H.storage.Get(key); found {
		return value
	}

	var zero V
	H.Insert(key, zero)
	value, _ := H.storage.Get(key)

	return value
}

// Get - Returns the value stored with key, or the zero value of V if there is no record with the key.
// Unlike Index it never inserts anything.
func (H *HashTable[K, V]) Get(key K) (value V) {
	if v, found := H.storage.Get(key); found {
		value = *v
	}

	return
}

// EqualFunc - Returns true if the two tables hold the same number of records and every key in H maps to a value in
// other that eq reports as equal. Capacity and the order of records are not compared.
func (H *HashTable[K, V]) EqualFunc(other *HashTable[K, V], eq func(a, b V) bool) bool {
	if H == other {
		return true
	}
	if other == nil || H.Size() != other.Size() {
		return false
	}

	for it := H.Begin(); it.HasNext(); {
		key, value, err := it.Next()
		if err != nil {
			return false
		}
		otherValue, found := other.storage.Get(key)
		if !found || !eq(value, *otherValue) {
			return false
		}
	}

	return true
}

// Equal - Returns true if the two tables hold the same number of records and every key in a maps to an equal value
// in b.
func Equal[K comparable, V comparable](a, b *HashTable[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}
