package main

import (
	"fmt"
	"log"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/hashfunc"
)

func main() {
	// Show resize traces
	config.LogLevel = logger.LOG_LEVEL_ALL

	ht := hashtable.New[int, string](nil)

	for i := 0; i < 13; i++ {
		ht.Insert(i, fmt.Sprintf("value-%d", i))
	}
	fmt.Printf("Inserted 13 records, size %d capacity %d\n", ht.Size(), ht.Capacity())

	for i := 0; i < 12; i++ {
		ht.Erase(i)
	}
	fmt.Printf("Erased 12 records, size %d capacity %d\n", ht.Size(), ht.Capacity())

	stat := ht.Stat()
	fmt.Printf("Longest bucket %d, empty buckets %d\n", stat.LongestBucket, stat.EmptyBuckets)

	crc := hashtable.New[string, int](hashfunc.NewCRC32HashAlgorithm())
	crc.Insert("123456789", 1)
	bucketNo, _ := crc.BucketIndex("123456789")
	fmt.Printf("Key 123456789 is in bucket %d using crc32\n", bucketNo)

	d, err := hashtable.NewDictionaryFromSlices([]string{"a", "b", "c"}, []string{"1", "2", "3"})
	if err != nil {
		log.Fatalf("Failed to create dictionary: %v", err)
	}

	updates := orderedmap.NewOrderedMap[string, string]()
	updates.Set("b", "20")
	updates.Set("d", "4")
	d.UpdateOrdered(updates)

	for key, value := range d.All() {
		fmt.Printf("%s => %s\n", key, value)
	}

	if err = d.Erase("missing"); err != nil {
		fmt.Printf("Erase failed as expected: %v\n", err)
	}
}
