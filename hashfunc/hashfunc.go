package hashfunc

// HashAlgorithm - Interface that permits a HashTable to be given a custom hash function suited for the particular
// type and distribution of its keys.
//
// The table selects a bucket by masking the hash value with (number of buckets - 1), where the number of buckets is
// always an exponent of 2. Hence, the low order bits of the returned value must be well distributed, a hash function
// that only varies in its high bits will put every key in the same bucket.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates a 64 bit hash value.
	// The same key must always give the same value for the lifetime of the table (and of any clone made from it).
	HashFunc(key K) uint64
}

// Func - Adapter that allows an ordinary function to be used as a HashAlgorithm.
type Func[K any] func(key K) uint64

// HashFunc - Calls f(key)
func (f Func[K]) HashFunc(key K) uint64 {
	return f(key)
}
