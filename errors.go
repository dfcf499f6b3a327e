package hashtable

// SizeMismatch - Custom error to inform that keys and values given at construction are not of the same length
type SizeMismatch struct{}

// Error - Used to notify that keys and values are not of the same length
func (E SizeMismatch) Error() string {
	return "keys and values are not of the same size"
}

// KeyNotFound - Custom error to inform that no record was found for a key
type KeyNotFound struct{}

// Error - Used to notify that no record was found
func (E KeyNotFound) Error() string {
	return "key not found"
}

// InvalidArgument - Custom error to inform that a bucket can not be given for a key that is not stored
type InvalidArgument struct{}

// Error - Used to notify that a key given for bucket introspection is not stored
func (E InvalidArgument) Error() string {
	return "invalid argument"
}

// InvalidKey - Custom error to inform that a Dictionary was asked to erase a key it does not hold
type InvalidKey struct{}

// Error - Used to notify that the key is not held by the dictionary
func (E InvalidKey) Error() string {
	return "invalid key"
}

// IteratorExhausted - Custom error to inform that an iterator has no more records
type IteratorExhausted struct{}

// Error - Used to notify that there are no more records
func (E IteratorExhausted) Error() string {
	return "iterator exhausted"
}

// IteratorInvalidated - Custom error to inform that the table was structurally changed after the iterator was created
type IteratorInvalidated struct{}

// Error - Used to notify that the iterator can no longer be used
func (E IteratorInvalidated) Error() string {
	return "iterator invalidated by table mutation"
}
