package model

// Pair - Represents one record, a key and its value
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Bucket - Represents all records sharing the same bucket number, in the order they were appended
type Bucket[K comparable, V any] []Pair[K, V]

// Find - Returns the position of the record with the given key and true, or -1 and false if no such record exists
func (B Bucket[K, V]) Find(key K) (position int, found bool) {
	for i := range B {
		if B[i].Key == key {
			return i, true
		}
	}

	return -1, false
}

// SwapRemove - Removes the record at position by moving the last record into its place.
// The order of the remaining records is not preserved.
func (B Bucket[K, V]) SwapRemove(position int) Bucket[K, V] {
	last := len(B) - 1
	B[position] = B[last]
	var zero Pair[K, V]
	B[last] = zero

	return B[:last]
}

// StorageParameters - Represents parameters describing the current state of a bucket storage
type StorageParameters struct {
	NumberOfBuckets int
	Records         int
	LoadFactor      float64
}
