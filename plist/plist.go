// Package plist implements a persistent singly linked list. Every operation
// returns a new list and leaves its receiver unchanged; lists share their
// unchanged tails.
package plist

type node[T any] struct {
	item T
	next *node[T]
}

// List is an immutable list. The zero value is the empty list.
type List[T any] struct {
	head *node[T]
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Single returns a list of one item.
func Single[T any](item T) List[T] {
	return Empty[T]().Append(item)
}

// FromSlice builds a list by appending items in order, so the last item
// becomes the head.
func FromSlice[T any](items []T) List[T] {
	var l List[T]
	for _, item := range items {
		l = l.Append(item)
	}
	return l
}

// Head returns the first item of the list. The second result is false if the
// list is empty.
func (l List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.item, true
}

// Append returns a list with item at its head followed by l.
func (l List[T]) Append(item T) List[T] {
	return List[T]{head: &node[T]{item: item, next: l.head}}
}

// Tail returns the list without its head. The tail of the empty list is empty.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next}
}

// Drop returns the list without its first n items.
func (l List[T]) Drop(n int) List[T] {
	cur := l.head
	for ; n > 0 && cur != nil; n-- {
		cur = cur.next
	}
	return List[T]{head: cur}
}

// DropWhile returns the list without its longest prefix of items for which
// pred is true.
func (l List[T]) DropWhile(pred func(T) bool) List[T] {
	cur := l.head
	for cur != nil && pred(cur.item) {
		cur = cur.next
	}
	return List[T]{head: cur}
}

// Reverse returns the list in reverse order.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for cur := l.head; cur != nil; cur = cur.next {
		r = r.Append(cur.item)
	}
	return r
}

// Take returns the first n items of the list.
func (l List[T]) Take(n int) List[T] {
	var r List[T]
	for cur := l.head; n > 0 && cur != nil; cur, n = cur.next, n-1 {
		r = r.Append(cur.item)
	}
	return r.Reverse()
}

// TakeWhile returns the longest prefix of the list for which pred is true.
func (l List[T]) TakeWhile(pred func(T) bool) List[T] {
	var r List[T]
	for cur := l.head; cur != nil && pred(cur.item); cur = cur.next {
		r = r.Append(cur.item)
	}
	return r.Reverse()
}

// Len returns the number of items in the list.
func (l List[T]) Len() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Slice returns the items of the list, head first.
func (l List[T]) Slice() []T {
	r := make([]T, 0, l.Len())
	for cur := l.head; cur != nil; cur = cur.next {
		r = append(r, cur.item)
	}
	return r
}

// Map returns a list of f applied to each item of l, in the same order.
func Map[T, R any](l List[T], f func(T) R) List[R] {
	var r List[R]
	for cur := l.head; cur != nil; cur = cur.next {
		r = r.Append(f(cur.item))
	}
	return r.Reverse()
}

// Equal reports whether two lists hold equal items in the same order.
func Equal[T comparable](a, b List[T]) bool {
	x, y := a.head, b.head
	for x != nil && y != nil {
		if x == y {
			// Shared tail.
			return true
		}
		if x.item != y.item {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}
