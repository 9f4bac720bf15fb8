package bag

import (
	"iter"

	"github.com/go-errors/errors"

	e "github.com/STBoyden/go-bag/error"
)

// Iterator walks a Bag front to back. It reads the live contents rather than
// a snapshot and cannot be restarted.
type Iterator[E comparable] struct {
	bag              *Bag[E]
	cursor           int
	expectedModCount uint64
}

// Iterator returns a new Iterator positioned before the first entry.
func (b *Bag[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{bag: b, expectedModCount: b.modCount}
}

func (it *Iterator[E]) HasNext() bool {
	return it.cursor < len(it.bag.items)
}

// Next returns the entry under the cursor and advances. Past the last entry
// it returns ErrExhaustedIterator; if the bag was structurally modified since
// the iterator was created it returns an error matching
// ErrConcurrentModification.
func (it *Iterator[E]) Next() (E, error) {
	var zero E

	if it.bag.modCount != it.expectedModCount {
		return zero, errors.Wrap(e.New(e.ConcurrentModification, "bag modified during iteration"), 1)
	}

	if it.cursor >= len(it.bag.items) {
		return zero, ErrExhaustedIterator
	}

	item := it.bag.items[it.cursor]
	it.cursor++

	return item, nil
}

// All returns an iterator over the entries for use with range. It panics if
// the bag is structurally modified while ranging.
func (b *Bag[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := b.Iterator()
		for it.HasNext() {
			item, err := it.Next()
			if err != nil {
				panic(err)
			}

			if !yield(item) {
				return
			}
		}

		if it.bag.modCount != it.expectedModCount {
			panic(errors.Wrap(e.New(e.ConcurrentModification, "bag modified during iteration"), 0))
		}
	}
}
