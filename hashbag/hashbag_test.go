package hashbag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	h "github.com/STBoyden/go-bag/hashbag"
)

func TestHashBag_InsertRemove(t *testing.T) {
	t.Run("insert counts duplicates", func(t *testing.T) {
		bag := h.New[string]()
		h.Insert(bag, "apple")
		h.Insert(bag, "apple")
		h.Insert(bag, "pear")

		assert.Equal(t, 2, h.Count(bag, "apple"))
		assert.Equal(t, 1, h.Count(bag, "pear"))
		assert.Equal(t, 0, h.Count(bag, "plum"))
		assert.Equal(t, 3, h.Len(bag))
	})

	t.Run("remove drops the key at zero", func(t *testing.T) {
		bag := h.New[string]()
		h.Insert(bag, "apple")
		h.Insert(bag, "apple")

		assert.True(t, h.Remove(bag, "apple"))
		assert.Equal(t, 1, h.Count(bag, "apple"))

		assert.True(t, h.Remove(bag, "apple"))
		_, present := bag["apple"]
		assert.False(t, present)

		assert.False(t, h.Remove(bag, "apple"))
		assert.Equal(t, 0, h.Len(bag))
	})
}

func TestHashBag_Equal(t *testing.T) {
	a := h.New[int]()
	b := h.New[int]()

	for _, v := range []int{1, 2, 2, 3} {
		h.Insert(a, v)
	}
	for _, v := range []int{2, 3, 2, 1} {
		h.Insert(b, v)
	}

	assert.True(t, h.Equal(a, b))

	h.Remove(b, 2)
	assert.False(t, h.Equal(a, b))
}
