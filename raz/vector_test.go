package raz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_PushPopBack(t *testing.T) {
	v := NewVector[string]()
	v.Push("x")
	v.Push("y")
	v.Push("z")
	require.NoError(t, v.Pop())

	assert.Equal(t, 2, v.Len())
	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, "y", back)
	front, err := v.Front()
	require.NoError(t, err)
	assert.Equal(t, "x", front)
}

func TestVector_GrowthKeepsOrder(t *testing.T) {
	v := NewVector[int]()
	assert.Equal(t, 8, v.Cap())

	pushes, pops := 0, 0
	for i := 0; i < 100; i++ {
		v.Push(i)
		pushes++
		if i%10 == 9 {
			require.NoError(t, v.Pop())
			pops++
			v.Push(i)
			pushes++
		}
		require.Equal(t, pushes-pops, v.Len())
	}
	assert.Equal(t, 128, v.Cap())
	for i, x := range v.All() {
		require.Equal(t, i, x)
	}
}

func TestVector_EmptyAccess(t *testing.T) {
	v := NewVector[int]()
	assert.ErrorIs(t, v.Pop(), ErrEmptyContainer)
	_, err := v.Front()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = v.Back()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	assert.Equal(t, 0, v.Len())
}

func TestVector_IndexBounds(t *testing.T) {
	v := VectorOf(1, 2, 3)
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, 2, v.At(1))
	v.Set(1, 20)
	assert.Equal(t, []int{1, 20, 3}, v.Slice())

	_, err := v.Get(3)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Panics(t, func() { v.At(3) })

	// Capacity beyond length is still out of bounds.
	w := NewVector[int]()
	w.Push(1)
	assert.Panics(t, func() { w.At(1) })
}

func TestNewVectorLen(t *testing.T) {
	v := NewVectorLen[float64](3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, 0.0, v.At(2))

	z := NewVectorLen[int](0)
	z.Push(7)
	assert.Equal(t, 8, z.Cap())
	assert.Equal(t, 7, z.At(0))
}

func TestVector_Clear(t *testing.T) {
	v := VectorOf("a", "b", "c", "d", "e", "f", "g", "h", "i")
	c := v.Cap()
	v.Clear()
	assert.True(t, v.Empty())
	assert.Equal(t, c, v.Cap())
	v.Push("z")
	assert.Equal(t, []string{"z"}, v.Slice())
}

func TestVector_IterationRestartable(t *testing.T) {
	v := VectorOf("a", "b", "c")
	collect := func() []string {
		var out []string
		for s := range v.Values() {
			out = append(out, s)
		}
		return out
	}
	assert.Equal(t, []string{"a", "b", "c"}, collect())
	assert.Equal(t, []string{"a", "b", "c"}, collect())

	var first string
	for _, s := range v.All() {
		first = s
		break
	}
	assert.Equal(t, "a", first)
}

func TestVector_CloneAndAssign(t *testing.T) {
	a := VectorOf(1, 2, 3)
	b := a.Clone()
	b.Push(4)
	b.Set(0, 100)
	assert.Equal(t, []int{1, 2, 3}, a.Slice())
	assert.Equal(t, []int{100, 2, 3, 4}, b.Slice())

	c := NewVector[int]()
	c.Assign(b)
	b.Set(1, 200)
	assert.Equal(t, []int{100, 2, 3, 4}, c.Slice())

	c.Assign(c)
	assert.Equal(t, 4, c.Len())
}

func TestArray(t *testing.T) {
	a := ArrayOf(3, 1, 2)
	assert.Equal(t, 3, a.Len())
	a.Set(0, 9)
	assert.Equal(t, 9, a.At(0))
	assert.Panics(t, func() { a.At(3) })

	sum := 0
	for _, x := range a.All() {
		sum += x
	}
	assert.Equal(t, 12, sum)
	assert.Equal(t, 4, NewArray[int](4).Len())
}

func TestQueue(t *testing.T) {
	q := NewQueue[string]()
	assert.ErrorIs(t, q.Pop(), ErrEmptyContainer)
	q.Push("a")
	q.Push("b")
	q.Push("c")
	require.NoError(t, q.Pop())

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, "b", front)
	assert.Equal(t, 2, q.Len())
}

func TestStack(t *testing.T) {
	s := NewStack[int]()
	_, err := s.Top()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	s.Push(1)
	s.Push(2)
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, 2, top)
	require.NoError(t, s.Pop())
	top, _ = s.Top()
	assert.Equal(t, 1, top)
	assert.False(t, s.Empty())
}

func TestQueueStack_ZeroValue(t *testing.T) {
	var q Queue[int]
	assert.True(t, q.Empty())
	assert.ErrorIs(t, q.Pop(), ErrEmptyContainer)
	q.Push(1)
	q.Push(2)
	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, front)
	require.NoError(t, q.Pop())
	assert.Equal(t, 1, q.Len())

	var s Stack[string]
	assert.True(t, s.Empty())
	s.Push("a")
	s.Push("b")
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, "b", top)
	assert.Equal(t, 2, s.Len())
}

func TestVectorDict_ZeroValue(t *testing.T) {
	var v Vector[int]
	v.Push(7)
	assert.Equal(t, []int{7}, v.Slice())

	var d Dict[string, int]
	d.Insert("a", 1)
	assert.Equal(t, 1, d.Get("a").MustGet())
}
