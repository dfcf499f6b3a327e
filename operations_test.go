//go:build unit

package hashtable

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHashTable_Insert(t *testing.T) {
	t.Run("inserts new key", func(t *testing.T) {
		// Prepare
		ht := New[string, string](nil)

		// Execute
		inserted := ht.Insert("a", "1")

		// Check
		assert.True(t, inserted, "record inserted")
		assert.Equal(t, 1, ht.Size(), "one record")
		assert.True(t, ht.ContainsKey("a"), "key present")
		value, err := ht.At("a")
		assert.NoError(t, err, "key present")
		assert.Equal(t, "1", value, "value round trips")
	})

	t.Run("refuses duplicate key without change", func(t *testing.T) {
		// Prepare
		ht := New[string, string](nil)
		ht.Insert("a", "1")
		generation := ht.generation

		// Execute
		inserted := ht.Insert("a", "2")

		// Check
		assert.False(t, inserted, "duplicate not inserted")
		assert.Equal(t, 1, ht.Size(), "still one record")
		assert.Equal(t, "1", ht.Get("a"), "value unchanged")
		assert.Equal(t, generation, ht.generation, "no structural change")
	})

	t.Run("grows when load factor exceeds threshold", func(t *testing.T) {
		// Prepare
		ht := New[string, int](nil)
		for i := 0; i < 12; i++ {
			ht.Insert(fmt.Sprintf("key%d", i), i)
		}
		assert.Equal(t, 16, ht.Capacity(), "12 of 16 is exactly at threshold")

		// Execute
		ht.Insert("key12", 12)

		// Check
		assert.Equal(t, 13, ht.Size(), "thirteen records")
		assert.Equal(t, 32, ht.Capacity(), "capacity doubled")
		for i := 0; i < 13; i++ {
			assert.Equal(t, i, ht.Get(fmt.Sprintf("key%d", i)), "record kept over resize")
		}
	})

	t.Run("grows every time threshold is crossed", func(t *testing.T) {
		// Prepare
		ht := New[int, int](nil)

		// Execute & Check
		for i := 0; i < 1000; i++ {
			ht.Insert(i, i)
			assert.LessOrEqual(t, ht.LoadFactor(), 0.75, "load factor within threshold after insert")
		}
		assert.Equal(t, 2048, ht.Capacity(), "capacity after 1000 inserts")
	})
}

func TestHashTable_At(t *testing.T) {
	t.Run("fails on missing key", func(t *testing.T) {
		// Prepare
		ht := New[string, string](nil)

		// Execute
		_, err := ht.At("missing")

		// Check
		assert.Error(t, err, "key not present")
		assert.True(t, errors.Is(err, KeyNotFound{}), "error is KeyNotFound")
		assert.Contains(t, err.Error(), "missing", "error names the key")
	})
}

func TestHashTable_AtPtr(t *testing.T) {
	t.Run("changes value in place", func(t *testing.T) {
		// Prepare
		ht := New[string, string](nil)
		ht.Insert("a", "1")

		// Execute
		value, err := ht.AtPtr("a")
		*value = "2"

		// Check
		assert.NoError(t, err, "key present")
		assert.Equal(t, "2", ht.Get("a"), "value changed")
	})

	t.Run("fails on missing key", func(t *testing.T) {
		// Prepare
		ht := New[string, string](nil)

		// Execute
		value, err := ht.AtPtr("missing")

		// Check
		assert.True(t, errors.Is(err, KeyNotFound{}), "error is KeyNotFound")
		assert.Nil(t, value, "no pointer")
	})
}

func TestHashTable_Erase(t *testing.T) {
	t.Run("erases existing key", func(t *testing.T) {
		// Prepare
		ht, _ := NewFromSlices([]string{"a", "b"}, []string{"1", "2"}, nil)

		// Execute
		erased := ht.Erase("a")

		// Check
		assert.True(t, erased, "record erased")
		assert.Equal(t, 1, ht.Size(), "one record left")
		assert.False(t, ht.ContainsKey("a"), "key gone")
		assert.True(t, ht.ContainsKey("b"), "other key kept")
	})

	t.Run("erasing missing key changes nothing", func(t *testing.T) {
		// Prepare
		ht := New[string, string](nil)
		for i := 0; i < 13; i++ {
			ht.Insert(fmt.Sprintf("key%d", i), "v")
		}

		// Execute
		erased := ht.Erase("missing")

		// Check
		assert.False(t, erased, "nothing erased")
		assert.Equal(t, 13, ht.Size(), "size unchanged")
		assert.Equal(t, 32, ht.Capacity(), "capacity unchanged")
	})

	t.Run("erasing from empty table changes nothing", func(t *testing.T) {
		// Prepare
		ht := New[string, string](nil)

		// Execute
		erased := ht.Erase("missing")

		// Check
		assert.False(t, erased, "nothing erased")
		assert.Equal(t, 16, ht.Capacity(), "capacity unchanged")
	})

	t.Run("shrinks when load factor drops below threshold", func(t *testing.T) {
		// Prepare
		ht := New[string, int](nil)
		for i := 0; i < 13; i++ {
			ht.Insert(fmt.Sprintf("key%d", i), i)
		}
		assert.Equal(t, 32, ht.Capacity(), "grown to 32")

		// Execute & Check
		for i := 12; i >= 8; i-- {
			ht.Erase(fmt.Sprintf("key%d", i))
			assert.Equal(t, 32, ht.Capacity(), "8 of 32 is still at threshold")
		}
		ht.Erase("key7")
		assert.Equal(t, 7, ht.Size(), "seven records")
		assert.Equal(t, 16, ht.Capacity(), "capacity halved")
		for i := 0; i < 7; i++ {
			assert.Equal(t, i, ht.Get(fmt.Sprintf("key%d", i)), "record kept over resize")
		}
	})

	t.Run("shrinks to minimum and resets on empty", func(t *testing.T) {
		// Prepare
		keys := []string{"a", "b", "c", "d", "e", "a", "b", "c", "d", "e", "a", "b", "c"}
		values := make([]string, len(keys))
		ht, err := NewFromSlices(keys, values, nil)
		assert.NoError(t, err, "creates hash table")
		assert.Equal(t, 5, ht.Size(), "five distinct keys")
		assert.Equal(t, 32, ht.Capacity(), "capacity sized for thirteen keys")

		// Execute
		for _, key := range []string{"a", "b", "c", "d"} {
			ht.Erase(key)
		}

		// Check
		assert.Equal(t, 1, ht.Size(), "one record")
		assert.Equal(t, 16, ht.Capacity(), "shrunk to minimum")

		// Execute
		ht.Erase("e")

		// Check
		assert.Equal(t, 0, ht.Size(), "no records")
		assert.True(t, ht.Empty(), "empty")
		assert.Equal(t, 16, ht.Capacity(), "capacity reset to minimum, not below")
	})

	t.Run("empty after erase resets large capacity to minimum", func(t *testing.T) {
		// Prepare
		keys := make([]string, 100)
		values := make([]string, 100)
		ht, _ := NewFromSlices(keys, values, nil)
		assert.Equal(t, 1, ht.Size(), "one distinct key")
		assert.Equal(t, 256, ht.Capacity(), "capacity sized for hundred keys")

		// Execute
		erased := ht.Erase("")

		// Check
		assert.True(t, erased, "record erased")
		assert.Equal(t, 16, ht.Capacity(), "capacity reset to minimum")
	})

	t.Run("halves several times on one erase after construction with duplicate keys", func(t *testing.T) {
		// Prepare
		keys := make([]int, 100)
		values := make([]int, 100)
		for i := range keys {
			keys[i] = i % 20
			values[i] = i
		}
		ht, _ := NewFromSlices(keys, values, nil)
		assert.Equal(t, 20, ht.Size(), "twenty distinct keys")
		assert.Equal(t, 256, ht.Capacity(), "capacity sized for hundred keys")
		it := ht.Begin()

		// Execute
		erased := ht.Erase(0)

		// Check
		assert.True(t, erased, "record erased")
		assert.Equal(t, 19, ht.Size(), "nineteen records left")
		assert.Equal(t, 64, ht.Capacity(), "256 halved twice")
		assert.GreaterOrEqual(t, ht.LoadFactor(), 0.25, "load factor within threshold after erase")
		assert.False(t, it.Valid(), "iterator invalidated")
		for i := 1; i < 20; i++ {
			assert.Equal(t, 80+i, ht.Get(i), "last value kept through rehash")
		}
	})

	t.Run("keeps load factor bound after every erase", func(t *testing.T) {
		// Prepare
		ht := New[int, int](nil)
		for i := 0; i < 1000; i++ {
			ht.Insert(i, i)
		}

		// Execute & Check
		for i := 0; i < 1000; i++ {
			assert.True(t, ht.Erase(i), "record erased")
			if ht.Size() > 0 && ht.Capacity() > 16 {
				assert.GreaterOrEqual(t, ht.LoadFactor(), 0.25, "load factor within threshold after erase")
			}
		}
		assert.Equal(t, 16, ht.Capacity(), "minimum capacity when empty")
	})
}

func TestHashTable_BucketSize(t *testing.T) {
	t.Run("gets size of bucket holding key", func(t *testing.T) {
		// Prepare
		ht := New[int, string](identity)
		ht.Insert(3, "a")
		ht.Insert(19, "b")
		ht.Insert(4, "c")

		// Execute
		size3, err3 := ht.BucketSize(3)
		size4, err4 := ht.BucketSize(4)

		// Check
		assert.NoError(t, err3, "key 3 present")
		assert.NoError(t, err4, "key 4 present")
		assert.Equal(t, 2, size3, "3 and 19 share bucket")
		assert.Equal(t, 1, size4, "4 alone in bucket")
	})

	t.Run("fails on missing key", func(t *testing.T) {
		// Prepare
		ht := New[int, string](identity)
		ht.Insert(3, "a")

		// Execute
		_, err := ht.BucketSize(19)

		// Check
		assert.True(t, errors.Is(err, InvalidArgument{}), "error is InvalidArgument")
	})
}

func TestHashTable_BucketIndex(t *testing.T) {
	t.Run("gets index of bucket holding key", func(t *testing.T) {
		// Prepare
		ht := New[int, string](identity)
		ht.Insert(35, "a")

		// Execute
		bucketNo, err := ht.BucketIndex(35)

		// Check
		assert.NoError(t, err, "key present")
		assert.Equal(t, 3, bucketNo, "35 & 15")
	})

	t.Run("index follows resize", func(t *testing.T) {
		// Prepare
		ht := New[int, string](identity)
		for i := 0; i < 13; i++ {
			ht.Insert(i*2+1, "v")
		}

		// Execute
		bucketNo, err := ht.BucketIndex(17)

		// Check
		assert.NoError(t, err, "key present")
		assert.Equal(t, 32, ht.Capacity(), "grown")
		assert.Equal(t, 17, bucketNo, "17 & 31")
	})

	t.Run("fails on missing key", func(t *testing.T) {
		// Prepare
		ht := New[int, string](identity)

		// Execute
		_, err := ht.BucketIndex(1)

		// Check
		assert.True(t, errors.Is(err, InvalidArgument{}), "error is InvalidArgument")
	})
}

func TestHashTable_Clear(t *testing.T) {
	t.Run("removes all records and keeps capacity", func(t *testing.T) {
		// Prepare
		ht := New[int, int](nil)
		for i := 0; i < 40; i++ {
			ht.Insert(i, i)
		}
		capacity := ht.Capacity()

		// Execute
		ht.Clear()

		// Check
		assert.True(t, ht.Empty(), "no records")
		assert.Equal(t, capacity, ht.Capacity(), "capacity kept")
		assert.False(t, ht.ContainsKey(1), "records gone")
		assert.True(t, ht.Begin().Equal(ht.End()), "nothing to iterate")
	})
}

func TestHashTable_Index(t *testing.T) {
	t.Run("inserts zero value for missing key", func(t *testing.T) {
		// Prepare
		ht := New[string, int](nil)

		// Execute
		value := ht.Index("a")

		// Check
		assert.Equal(t, 0, *value, "zero value")
		assert.Equal(t, 1, ht.Size(), "record inserted")
		assert.True(t, ht.ContainsKey("a"), "key present")
	})

	t.Run("assigns through returned pointer", func(t *testing.T) {
		// Prepare
		ht := New[string, int](nil)

		// Execute
		*ht.Index("a") = 5
		*ht.Index("a") += 1

		// Check
		assert.Equal(t, 6, ht.Get("a"), "value assigned")
		assert.Equal(t, 1, ht.Size(), "one record")
	})

	t.Run("pointer is valid after the insert resizes", func(t *testing.T) {
		// Prepare
		ht := New[int, int](nil)
		for i := 0; i < 12; i++ {
			ht.Insert(i, i)
		}

		// Execute
		*ht.Index(12) = 120

		// Check
		assert.Equal(t, 32, ht.Capacity(), "grown")
		assert.Equal(t, 120, ht.Get(12), "value assigned in resized table")
	})
}

func TestHashTable_Get(t *testing.T) {
	t.Run("returns stored value or zero value without inserting", func(t *testing.T) {
		// Prepare
		ht, _ := NewFromSlices([]string{"a"}, []string{"1"}, nil)

		// Execute
		present := ht.Get("a")
		missing := ht.Get("missing")

		// Check
		assert.Equal(t, "1", present, "stored value")
		assert.Equal(t, "", missing, "zero value")
		assert.Equal(t, 1, ht.Size(), "nothing inserted")
		assert.False(t, ht.ContainsKey("missing"), "missing key still absent")
	})
}

func TestEqual(t *testing.T) {
	t.Run("tables with same records are equal regardless of order and capacity", func(t *testing.T) {
		// Prepare
		a := New[int, string](nil)
		b := New[int, string](nil)
		for i := 0; i < 50; i++ {
			a.Insert(i, fmt.Sprint(i))
		}
		for i := 49; i >= 0; i-- {
			b.Insert(i, fmt.Sprint(i))
		}
		for i := 50; i < 100; i++ {
			b.Insert(i, "")
		}
		for i := 50; i < 100; i++ {
			b.Erase(i)
		}

		// Check
		assert.True(t, Equal(a, b), "a equals b")
		assert.True(t, Equal(b, a), "b equals a")
	})

	t.Run("tables differ on value", func(t *testing.T) {
		// Prepare
		a, _ := NewFromSlices([]string{"a", "b"}, []string{"1", "2"}, nil)
		b, _ := NewFromSlices([]string{"a", "b"}, []string{"1", "3"}, nil)

		// Check
		assert.False(t, Equal(a, b), "not equal")
	})

	t.Run("tables differ on key", func(t *testing.T) {
		// Prepare
		a, _ := NewFromSlices([]string{"a", "b"}, []string{"1", "2"}, nil)
		b, _ := NewFromSlices([]string{"a", "c"}, []string{"1", "2"}, nil)

		// Check
		assert.False(t, Equal(a, b), "missing key means not equal")
	})

	t.Run("tables differ on size", func(t *testing.T) {
		// Prepare
		a, _ := NewFromSlices([]string{"a"}, []string{"1"}, nil)
		b, _ := NewFromSlices([]string{"a", "b"}, []string{"1", "2"}, nil)

		// Check
		assert.False(t, Equal(a, b), "not equal")
		assert.False(t, Equal(a, nil), "nil is not equal")
	})

	t.Run("compares values with custom function", func(t *testing.T) {
		// Prepare
		a, _ := NewFromSlices([]string{"a"}, [][]int{{1, 2}}, nil)
		b, _ := NewFromSlices([]string{"a"}, [][]int{{1, 2}}, nil)

		// Execute
		equal := a.EqualFunc(b, func(x, y []int) bool { return fmt.Sprint(x) == fmt.Sprint(y) })

		// Check
		assert.True(t, equal, "equal by custom function")
	})
}
