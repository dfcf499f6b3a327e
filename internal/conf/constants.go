package conf

// MinimumCapacity - Number of buckets a hash table starts with and never shrinks below, must be a power of 2
const MinimumCapacity int = 16

// UpThreshold - Load factor which, when exceeded after an insert, makes the table double its number of buckets
const UpThreshold float64 = 0.75

// DownThreshold - Load factor which, when undercut after an erase, makes the table halve its number of buckets
const DownThreshold float64 = 0.25

// ResizeFactor - Factor by which the number of buckets grows or shrinks in one resize step
const ResizeFactor int = 2

// LoggerPrefix - Prefix used for log messages emitted by hash tables
const LoggerPrefix string = "HashTable "
