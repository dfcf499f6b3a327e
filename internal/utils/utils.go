package utils

import (
	"github.com/gostonefire/hashtable/internal/conf"
	"math/bits"
)

// RoundUp2 - Returns the nearest bigger (or equal) exponent of 2 of the given value, values below 1 returns 1
func RoundUp2(a int) int {
	if a <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(a-1))
}

// LoadFactor - Returns records divided by number of buckets, zero buckets gives a zero load factor
func LoadFactor(records, numberOfBuckets int) float64 {
	if numberOfBuckets == 0 {
		return 0
	}

	return float64(records) / float64(numberOfBuckets)
}

// StartCapacity - Returns the number of buckets a table needs to hold the given number of records without
// exceeding conf.UpThreshold, which is the same capacity as reached by inserting the records one by one.
func StartCapacity(records int) int {
	capacity := conf.MinimumCapacity
	for LoadFactor(records, capacity) > conf.UpThreshold {
		capacity *= conf.ResizeFactor
	}

	return capacity
}

// GrowCapacity - Returns the number of buckets to resize to after an insert, or the current number of buckets if
// the load factor is still within conf.UpThreshold.
func GrowCapacity(records, numberOfBuckets int) int {
	for LoadFactor(records, numberOfBuckets) > conf.UpThreshold {
		numberOfBuckets *= conf.ResizeFactor
	}

	return numberOfBuckets
}

// ShrinkCapacity - Returns the number of buckets to resize to after an erase, or the current number of buckets if
// the load factor is still at or above conf.DownThreshold. Never returns less than conf.MinimumCapacity.
func ShrinkCapacity(records, numberOfBuckets int) int {
	for numberOfBuckets > conf.MinimumCapacity && LoadFactor(records, numberOfBuckets) < conf.DownThreshold {
		numberOfBuckets /= conf.ResizeFactor
	}

	return numberOfBuckets
}
