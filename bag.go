// Package bag provides Bag, an unordered collection that permits duplicate
// elements and is backed by a growable slice.
package bag

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-errors/errors"

	e "github.com/STBoyden/go-bag/error"
	h "github.com/STBoyden/go-bag/hashbag"
)

var (
	ErrInvalidArgument        = e.New(e.InvalidArgument, "")
	ErrExhaustedIterator      = e.New(e.ExhaustedIterator, "")
	ErrConcurrentModification = e.New(e.ConcurrentModification, "")
)

// Bag is a multiset of non-nil elements. Entries keep insertion order
// internally, but callers should not rely on it beyond Equals and iteration.
//
// A Bag is not safe for concurrent use.
type Bag[E comparable] struct {
	items []E

	// modCount is bumped on every structural change and checked by iterators.
	modCount uint64
}

var _ Container[int] = (*Bag[int])(nil)

// Creates a new, empty Bag.
func New[E comparable]() *Bag[E] {
	return &Bag[E]{}
}

// Creates a new, empty Bag with room for initialCapacity entries before the
// first reallocation.
func NewWithCapacity[E comparable](initialCapacity int) (*Bag[E], error) {
	if initialCapacity < 0 {
		return nil, errors.Wrap(e.New(e.InvalidArgument, fmt.Sprintf("initial capacity cannot be negative: %d", initialCapacity)), 1)
	}

	return &Bag[E]{items: make([]E, 0, initialCapacity)}, nil
}

// Add appends item. Nil items are rejected.
func (b *Bag[E]) Add(item E) error {
	if isNil(item) {
		return errors.Wrap(e.New(e.InvalidArgument, "cannot add nil items to the bag"), 1)
	}

	b.items = append(b.items, item)
	b.modCount++

	return nil
}

// Remove deletes the first entry equal to item and reports whether one was
// found. The order of the remaining entries is preserved.
func (b *Bag[E]) Remove(item E) bool {
	if isNil(item) {
		return false
	}

	i := slices.Index(b.items, item)
	if i < 0 {
		return false
	}

	b.items = slices.Delete(b.items, i, i+1)
	b.modCount++

	return true
}

func (b *Bag[E]) Contains(item E) bool {
	if isNil(item) {
		return false
	}

	return slices.Contains(b.items, item)
}

// Count returns the number of entries equal to item.
func (b *Bag[E]) Count(item E) int {
	if isNil(item) {
		return 0
	}

	count := 0
	for _, v := range b.items {
		if v == item {
			count++
		}
	}

	return count
}

func (b *Bag[E]) Size() int {
	return len(b.items)
}

func (b *Bag[E]) IsEmpty() bool {
	return len(b.items) == 0
}

// Clear removes every entry. The backing allocation is kept.
func (b *Bag[E]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
	b.modCount++
}

// ToArray returns a copy of the entries in internal order.
func (b *Bag[E]) ToArray() []E {
	snapshot := make([]E, len(b.items))
	copy(snapshot, b.items)

	return snapshot
}

// Capacity reports how many entries fit before the next reallocation.
func (b *Bag[E]) Capacity() int {
	return cap(b.items)
}

func (b *Bag[E]) TrimToSize() {
	if cap(b.items) == len(b.items) {
		return
	}

	b.items = slices.Clip(slices.Clone(b.items))
}

// EnsureCapacity grows the backing allocation to hold at least minCapacity
// entries. Smaller values are ignored.
func (b *Bag[E]) EnsureCapacity(minCapacity int) {
	if minCapacity <= cap(b.items) {
		return
	}

	b.items = slices.Grow(b.items, minCapacity-len(b.items))
}

// Equals compares entries position by position, so two bags holding the
// same elements in a different order are not equal. Use SameElements for a
// multiset comparison.
func (b *Bag[E]) Equals(other *Bag[E]) bool {
	if b == other {
		return true
	}

	if b == nil || other == nil {
		return false
	}

	return slices.Equal(b.items, other.items)
}

// Counts returns the multiplicity of every distinct entry.
func (b *Bag[E]) Counts() h.HashBag[E] {
	counts := h.New[E]()
	for _, v := range b.items {
		h.Insert(counts, v)
	}

	return counts
}

// SameElements reports whether both bags hold the same entries with the same
// multiplicities, regardless of order.
func (b *Bag[E]) SameElements(other *Bag[E]) bool {
	if b == other {
		return true
	}

	if b == nil || other == nil || len(b.items) != len(other.items) {
		return false
	}

	return h.Equal(b.Counts(), other.Counts())
}

func (b *Bag[E]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for i, v := range b.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}

// isNil reports whether v is nil. Only pointer, interface and channel kinds
// can be both comparable and nil; zero values of other kinds are valid items.
func isNil[E comparable](v E) bool {
	value := any(v)
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
