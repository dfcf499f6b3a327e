package hashtable

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"
	"iter"
)

// Dictionary - A hash table with string keys and string values.
// It behaves as a HashTable[string, string] except for Erase, which fails on an absent key, and it adds the bulk
// upsert operations Update, UpdateSeq and UpdateOrdered.
//
// Like HashTable, a Dictionary is not safe for concurrent use.
type Dictionary struct {
	hashTable *HashTable[string, string]
}

// NewDictionary - Returns a new empty Dictionary with 16 buckets
func NewDictionary() *Dictionary {
	return &Dictionary{hashTable: New[string, string](nil)}
}

// NewDictionaryFromSlices - Returns a new Dictionary holding keys[i] mapped to values[i] for each i.
//
// It returns:
//   - dictionary is a pointer to a Dictionary struct, nil if err is not nil
//   - err is of type SizeMismatch if keys and values differ in length
func NewDictionaryFromSlices(keys, values []string) (dictionary *Dictionary, err error) {
	hashTable, err := NewFromSlices[string, string](keys, values, nil)
	if err != nil {
		return
	}

	dictionary = &Dictionary{hashTable: hashTable}

	return
}

// HashTable - Returns the hash table holding the records of the Dictionary
func (D *Dictionary) HashTable() *HashTable[string, string] {
	return D.hashTable
}

// Erase - Removes the record with the given key.
//
// It returns:
//   - err is of type InvalidKey if there is no record with the key, in which case nothing is changed
func (D *Dictionary) Erase(key string) (err error) {
	if !D.hashTable.Erase(key) {
		err = errors.WithMessagef(InvalidKey{}, "key %q", key)
	}

	return
}

// Update - Sets each of the pairs in order, overwriting the value of keys already present and inserting the rest.
// The pairs are applied one at a time, there is no rollback, so a panic half way leaves the first pairs applied.
func (D *Dictionary) Update(pairs []Pair[string, string]) {
	for _, pair := range pairs {
		D.set(pair.Key, pair.Value)
	}
}

// UpdateSeq - Same as Update but takes the pairs from an iterator, for instance the All method of another
// HashTable or Dictionary. The source must not be this Dictionary itself.
func (D *Dictionary) UpdateSeq(seq iter.Seq2[string, string]) {
	for key, value := range seq {
		D.set(key, value)
	}
}

// UpdateOrdered - Same as Update but takes the pairs from an ordered map, in its insertion order
func (D *Dictionary) UpdateOrdered(m *orderedmap.OrderedMap[string, string]) {
	if m == nil {
		return
	}

	for el := m.Front(); el != nil; el = el.Next() {
		D.set(el.Key, el.Value)
	}
}

// set - Overwrites the value of an existing key or inserts a new record
func (D *Dictionary) set(key, value string) {
	D.hashTable.set(key, value)
}

// Size - Returns the number of records stored
func (D *Dictionary) Size() int {
	return D.hashTable.Size()
}

// Capacity - Returns the number of buckets
func (D *Dictionary) Capacity() int {
	return D.hashTable.Capacity()
}

// Empty - Returns true if no records are stored
func (D *Dictionary) Empty() bool {
	return D.hashTable.Empty()
}

// LoadFactor - Returns the number of records divided by the number of buckets
func (D *Dictionary) LoadFactor() float64 {
	return D.hashTable.LoadFactor()
}

// Stat - Returns statistics on the usage and distribution of records over buckets
func (D *Dictionary) Stat() HashTableStat {
	return D.hashTable.Stat()
}

// Insert - Adds a record unless a record with the same key already exists, see HashTable.Insert
func (D *Dictionary) Insert(key, value string) bool {
	return D.hashTable.Insert(key, value)
}

// ContainsKey - Returns true if a record with the key exists
func (D *Dictionary) ContainsKey(key string) bool {
	return D.hashTable.ContainsKey(key)
}

// At - Gets the value stored with key, err is of type KeyNotFound if there is none
func (D *Dictionary) At(key string) (string, error) {
	return D.hashTable.At(key)
}

// AtPtr - Gets a pointer to the value stored with key, see HashTable.AtPtr
func (D *Dictionary) AtPtr(key string) (*string, error) {
	return D.hashTable.AtPtr(key)
}

// Index - Returns a pointer to the value stored with key, inserting an empty string first if absent
func (D *Dictionary) Index(key string) *string {
	return D.hashTable.Index(key)
}

// Get - Returns the value stored with key, or an empty string if absent
func (D *Dictionary) Get(key string) string {
	return D.hashTable.Get(key)
}

// BucketSize - Returns the number of records in the bucket holding key, err is of type InvalidArgument if absent
func (D *Dictionary) BucketSize(key string) (int, error) {
	return D.hashTable.BucketSize(key)
}

// BucketIndex - Returns the number of the bucket holding key, err is of type InvalidArgument if absent
func (D *Dictionary) BucketIndex(key string) (int, error) {
	return D.hashTable.BucketIndex(key)
}

// Clear - Removes all records, the capacity is kept
func (D *Dictionary) Clear() {
	D.hashTable.Clear()
}

// Begin - Returns an Iterator positioned at the first record
func (D *Dictionary) Begin() *Iterator[string, string] {
	return D.hashTable.Begin()
}

// End - Returns an Iterator positioned past the last record
func (D *Dictionary) End() *Iterator[string, string] {
	return D.hashTable.End()
}

// All - Returns an iterator over all records for use in a range loop
func (D *Dictionary) All() iter.Seq2[string, string] {
	return D.hashTable.All()
}

// Equal - Returns true if both dictionaries hold the same keys mapped to the same values
func (D *Dictionary) Equal(other *Dictionary) bool {
	if other == nil {
		return false
	}

	return Equal(D.hashTable, other.hashTable)
}

// Clone - Returns a deep copy of the Dictionary
func (D *Dictionary) Clone() *Dictionary {
	return &Dictionary{hashTable: D.hashTable.Clone()}
}

// Assign - Replaces the contents of the Dictionary with a deep copy of other
func (D *Dictionary) Assign(other *Dictionary) {
	D.hashTable.Assign(other.hashTable)
}

// Swap - Exchanges the contents of the two dictionaries
func (D *Dictionary) Swap(other *Dictionary) {
	D.hashTable.Swap(other.hashTable)
}
