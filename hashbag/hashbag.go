package hashbag

import "maps"

// HashBag counts occurrences per key. Keys with a zero count are never stored.
type HashBag[K comparable] map[K]uint32

func New[K comparable]() HashBag[K] {
	return make(map[K]uint32)
}

func Insert[K comparable](bag HashBag[K], key K) {
	bag[key]++
}

// Remove drops one occurrence of key and reports whether there was one.
func Remove[K comparable](bag HashBag[K], key K) bool {
	count, ok := bag[key]
	if !ok {
		return false
	}

	if count > 1 {
		bag[key]--
		return true
	}

	delete(bag, key)
	return true
}

func Count[K comparable](bag HashBag[K], key K) int {
	return int(bag[key])
}

// Len returns the total number of occurrences across all keys.
func Len[K comparable](bag HashBag[K]) int {
	total := 0
	for _, count := range bag {
		total += int(count)
	}

	return total
}

func Equal[K comparable](a, b HashBag[K]) bool {
	return maps.Equal(a, b)
}
