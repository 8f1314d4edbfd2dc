package plist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	l := Empty[int]()
	_, ok := l.Head()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Tail().Len())
	assert.True(t, Equal(l, List[int]{}))
}

func TestHead(t *testing.T) {
	h, ok := FromSlice([]int{1, 2}).Head()
	assert.True(t, ok)
	assert.Equal(t, 2, h)
}

func TestOperations(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	cases := []struct {
		name string
		got  List[int]
		want List[int]
	}{
		{"tail", l.Tail(), FromSlice([]int{1, 2})},
		{"drop", l.Drop(2), Single(1)},
		{"dropall", l.Drop(5), Empty[int]()},
		{"dropwhile", l.DropWhile(func(x int) bool { return x > 2 }), FromSlice([]int{1, 2})},
		{"reverse", l.Reverse(), FromSlice([]int{3, 2, 1})},
		{"take", l.Take(2), FromSlice([]int{2, 3})},
		{"takeall", l.Take(5), l},
		{"takewhile", l.TakeWhile(func(x int) bool { return x > 1 }), FromSlice([]int{2, 3})},
		{"map", Map(l, func(x int) int { return x * x }), FromSlice([]int{1, 4, 9})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Truef(t, Equal(c.got, c.want), "want %v, got %v", c.want.Slice(), c.got.Slice())
		})
	}
	// None of the operations changed l.
	assert.Equal(t, []int{3, 2, 1}, l.Slice())
}

func TestMapType(t *testing.T) {
	l := Map(FromSlice([]int{1, 2, 3}), func(x int) string { return string(rune('a' + x - 1)) })
	assert.Equal(t, []string{"c", "b", "a"}, l.Slice())
}

func TestSharing(t *testing.T) {
	l := FromSlice([]int{1, 2})
	a := l.Append(3)
	b := l.Append(4)
	assert.Same(t, a.Tail().head, b.Tail().head)
	assert.Same(t, l.head, a.Drop(1).head)
	assert.Equal(t, []int{3, 2, 1}, a.Slice())
	assert.Equal(t, []int{4, 2, 1}, b.Slice())
}
