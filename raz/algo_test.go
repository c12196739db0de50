package raz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	s := []int{5, 3, 9, 1, 3, 0}
	Sort(s)
	assert.Equal(t, []int{0, 1, 3, 3, 5, 9}, s)

	Sort([]int{})
	Sort([]int{1})

	words := []string{"pear", "apple", "fig"}
	Sort(words)
	assert.Equal(t, []string{"apple", "fig", "pear"}, words)
}

func TestSortVector(t *testing.T) {
	v := VectorOf(3.5, -1.0, 2.25)
	v.Push(0)
	SortVector(v)
	assert.Equal(t, []float64{-1, 0, 2.25, 3.5}, v.Slice())
}

func TestFind(t *testing.T) {
	s := []string{"a", "b", "a"}
	assert.Equal(t, 0, Find(s, "a"))
	assert.Equal(t, 1, Find(s, "b"))
	assert.Equal(t, -1, Find(s, "c"))
	assert.Equal(t, -1, Find([]int(nil), 1))
	assert.Equal(t, 2, FindVector(VectorOf(4, 5, 6), 6))
}

func TestMinMaxAbs(t *testing.T) {
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, 7, Max(2, 7))
	assert.Equal(t, -1.5, Min(-1.5, 0.5))
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, int32(3), Abs(int32(3)))
}

func TestPow(t *testing.T) {
	assert.Equal(t, 1.0, Pow(10, 0))
	assert.Equal(t, 1024.0, Pow(2, 10))
	assert.Equal(t, 0.125, Pow(2, -3))
	assert.Equal(t, -8.0, Pow(-2, 3))
	assert.InDelta(t, 1.0/3, Pow(3, -1), 1e-15)
}

func TestPow_ExtremeExponents(t *testing.T) {
	assert.Equal(t, 0.0, Pow(2, math.MinInt))
	assert.True(t, math.IsInf(Pow(0.5, math.MinInt), 1))
	assert.True(t, math.IsInf(Pow(2, math.MaxInt), 1))
	assert.Equal(t, 1.0, Pow(1, math.MinInt))
	assert.Equal(t, 1.0, Pow(-1, math.MaxInt-1))
	assert.Equal(t, -1.0, Pow(-1, math.MaxInt))
}

func TestSwap(t *testing.T) {
	a, b := "left", "right"
	Swap(&a, &b)
	assert.Equal(t, "right", a)
	assert.Equal(t, "left", b)
}

// ============================================================
// Random
// ============================================================

func TestRandom_DefaultSequence(t *testing.T) {
	r := DefaultRandom()
	want := []uint32{1406932606, 654583775, 1449466924, 229283573, 1109335178}
	for _, w := range want {
		assert.Equal(t, w, r.Next())
	}
	assert.Equal(t, want[len(want)-1], r.Seed())
}

func TestRandom_Range(t *testing.T) {
	r := NewRandom(42)
	assert.Equal(t, []uint32{28, 65, 54}, []uint32{r.Range(1, 100), r.Range(1, 100), r.Range(1, 100)})

	r = NewRandom(7)
	for i := 0; i < 1000; i++ {
		x := r.Range(10, 12)
		assert.True(t, x >= 10 && x <= 12)
	}
	assert.Equal(t, uint32(5), r.Range(5, 5))
}

func TestRandom_UniformRange(t *testing.T) {
	r := NewRandom(99)
	seen := map[uint32]bool{}
	for i := 0; i < 2000; i++ {
		x := r.UniformRange(0, 6)
		assert.LessOrEqual(t, x, uint32(6))
		seen[x] = true
	}
	assert.Len(t, seen, 7)
}

func TestRandom_FloatRange(t *testing.T) {
	r := NewRandom(1)
	for i := 0; i < 1000; i++ {
		f := r.FloatRange(-1, 1)
		assert.GreaterOrEqual(t, f, -1.0)
		assert.Less(t, f, 1.0)
	}
}

func TestHash(t *testing.T) {
	assert.Equal(t, uint32(5381), Hash(""))
	assert.Equal(t, uint32(177670), Hash("a"))
	assert.Equal(t, uint32(261238937), Hash("hello"))
	assert.Equal(t, Hash("hello"), HashStr(StrFrom("hello")))
}
