package bag

// Container is the minimal collection contract implemented by Bag.
type Container[E comparable] interface {
	Add(item E) error
	Remove(item E) bool
	Contains(item E) bool
	Size() int
	IsEmpty() bool
	Iterator() *Iterator[E]
}
