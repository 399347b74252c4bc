package btree

// Position is implemented by forward iterators of both flavors. It allows
// comparing mutable and read-only iterators with each other.
type Position[T any] interface {
	position() *cursor[T]
}

// ReversePosition is implemented by reverse iterators of both flavors.
type ReversePosition[T any] interface {
	basePosition() *cursor[T]
}

// Iterator is a bidirectional cursor over the elements of a tree in sorted
// order, permitting access to the stored element.
//
// Iterators are values: a copy made by plain assignment moves independently
// of the original.
//
// Dereferencing the end iterator, advancing it, or moving before the first
// element are contract violations and panic.
type Iterator[T any] struct {
	c cursor[T]
}

func (it Iterator[T]) position() *cursor[T] { return &it.c }

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() T {
	return *it.c.ref()
}

// Ptr returns a pointer to the stored element. Clients must not change the
// element in a way that changes its ordering. The pointer is invalidated by
// subsequent insertions.
func (it Iterator[T]) Ptr() *T {
	return it.c.ref()
}

// AtEnd reports whether the iterator is positioned one past the last element.
func (it Iterator[T]) AtEnd() bool {
	return it.c.atEnd()
}

// Next moves the iterator to the in-order successor and returns it.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.c.next()
	return it
}

// Prev moves the iterator to the in-order predecessor and returns it.
// Calling Prev on the end iterator moves it to the last element.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.c.prev()
	return it
}

// Clone returns an independent copy of the iterator.
func (it Iterator[T]) Clone() Iterator[T] {
	return Iterator[T]{c: it.c.clone()}
}

// Const freezes the iterator into a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{c: it.c.clone()}
}

// Equal reports whether both iterators are positioned at the same element of
// the same tree, or are both the end of the same tree.
func (it Iterator[T]) Equal(other Position[T]) bool {
	assert(other != nil, "comparing iterator with nil")
	return it.c.equal(other.position())
}

// ConstIterator is a read-only bidirectional cursor over the elements of a
// tree in sorted order. See Iterator for usage rules.
type ConstIterator[T any] struct {
	c cursor[T]
}

func (it ConstIterator[T]) position() *cursor[T] { return &it.c }

// Value returns the element at the iterator's position.
func (it ConstIterator[T]) Value() T {
	return *it.c.ref()
}

// AtEnd reports whether the iterator is positioned one past the last element.
func (it ConstIterator[T]) AtEnd() bool {
	return it.c.atEnd()
}

// Next moves the iterator to the in-order successor and returns it.
func (it *ConstIterator[T]) Next() *ConstIterator[T] {
	it.c.next()
	return it
}

// Prev moves the iterator to the in-order predecessor and returns it.
func (it *ConstIterator[T]) Prev() *ConstIterator[T] {
	it.c.prev()
	return it
}

// Clone returns an independent copy of the iterator.
func (it ConstIterator[T]) Clone() ConstIterator[T] {
	return ConstIterator[T]{c: it.c.clone()}
}

// Equal reports whether both iterators denote the same position.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	assert(other != nil, "comparing iterator with nil")
	return it.c.equal(other.position())
}

// ReverseIterator traverses a tree from the largest to the smallest element.
// It wraps a forward iterator positioned one after the element it denotes.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

func (it ReverseIterator[T]) basePosition() *cursor[T] { return &it.base.c }

// Base returns a copy of the underlying forward iterator.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return it.base.Clone()
}

// Value returns the element at the iterator's position.
func (it ReverseIterator[T]) Value() T {
	c := it.base.c.clone()
	c.prev()
	return *c.ref()
}

// Next moves towards smaller elements and returns the iterator.
func (it *ReverseIterator[T]) Next() *ReverseIterator[T] {
	it.base.c.prev()
	return it
}

// Prev moves towards larger elements and returns the iterator.
func (it *ReverseIterator[T]) Prev() *ReverseIterator[T] {
	it.base.c.next()
	return it
}

// Clone returns an independent copy of the iterator.
func (it ReverseIterator[T]) Clone() ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Clone()}
}

// Const freezes the iterator into a read-only reverse iterator.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Const()}
}

// Equal reports whether both reverse iterators denote the same position.
func (it ReverseIterator[T]) Equal(other ReversePosition[T]) bool {
	assert(other != nil, "comparing iterator with nil")
	return it.base.c.equal(other.basePosition())
}

// ConstReverseIterator is the read-only variant of ReverseIterator.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

func (it ConstReverseIterator[T]) basePosition() *cursor[T] { return &it.base.c }

// Base returns a copy of the underlying forward iterator.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] {
	return it.base.Clone()
}

// Value returns the element at the iterator's position.
func (it ConstReverseIterator[T]) Value() T {
	c := it.base.c.clone()
	c.prev()
	return *c.ref()
}

// Next moves towards smaller elements and returns the iterator.
func (it *ConstReverseIterator[T]) Next() *ConstReverseIterator[T] {
	it.base.c.prev()
	return it
}

// Prev moves towards larger elements and returns the iterator.
func (it *ConstReverseIterator[T]) Prev() *ConstReverseIterator[T] {
	it.base.c.next()
	return it
}

// Clone returns an independent copy of the iterator.
func (it ConstReverseIterator[T]) Clone() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Clone()}
}

// Equal reports whether both reverse iterators denote the same position.
func (it ConstReverseIterator[T]) Equal(other ReversePosition[T]) bool {
	assert(other != nil, "comparing iterator with nil")
	return it.base.c.equal(other.basePosition())
}

// --- Range factories -------------------------------------------------------

// Begin returns an iterator at the smallest element, or End() for an empty tree.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{c: t.beginCursor()}
}

// End returns the iterator one past the largest element.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{c: t.endCursor()}
}

// RBegin returns a reverse iterator at the largest element.
func (t *Tree[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: t.End()}
}

// REnd returns the reverse iterator one before the smallest element.
func (t *Tree[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: t.Begin()}
}

// CBegin is the read-only variant of Begin.
func (t *Tree[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{c: t.beginCursor()}
}

// CEnd is the read-only variant of End.
func (t *Tree[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{c: t.endCursor()}
}

// CRBegin is the read-only variant of RBegin.
func (t *Tree[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: t.CEnd()}
}

// CREnd is the read-only variant of REnd.
func (t *Tree[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: t.CBegin()}
}
