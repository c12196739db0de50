package raz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict_InsertOverwrites(t *testing.T) {
	d := NewDict[string, int]()
	d.Insert("a", 1)
	d.Insert("b", 2)
	d.Insert("a", 3)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 3, d.Get("a").MustGet())
	assert.Equal(t, 2, d.Get("b").MustGet())

	var keys []string
	for k := range d.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b"}, keys, "overwrite keeps position")
}

func TestDict_SecondInsertKeepsSize(t *testing.T) {
	d := NewDict[int, string]()
	for i := 0; i < 5; i++ {
		d.Insert(i, "v1")
	}
	before := d.Len()
	d.Insert(3, "v2")
	assert.Equal(t, before, d.Len())
	v, ok := d.Get(3).Get()
	require.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestDict_GetAbsent(t *testing.T) {
	d := NewDict[string, int]()
	got := d.Get("missing")
	assert.False(t, got.IsPresent())
	assert.Equal(t, -1, got.ValueOr(-1))
	assert.False(t, d.Contains("missing"))
	assert.Panics(t, func() { got.MustGet() })
}

func TestDict_Erase(t *testing.T) {
	d := NewDict[string, int]()
	d.Insert("a", 1)
	d.Insert("b", 2)
	d.Insert("c", 3)

	assert.True(t, d.Erase("a"))
	assert.False(t, d.Contains("a"))
	assert.Equal(t, 2, d.Len())

	assert.False(t, d.Erase("zzz"))
	assert.Equal(t, 2, d.Len())

	var order []string
	for k, v := range d.All() {
		order = append(order, k)
		assert.Equal(t, d.Get(k).MustGet(), v)
	}
	assert.Equal(t, []string{"b", "c"}, order)
}

func TestDict_Growth(t *testing.T) {
	d := NewDict[int, int]()
	assert.Equal(t, 8, d.Cap())
	for i := 0; i < 20; i++ {
		d.Insert(i, i*i)
	}
	assert.Equal(t, 20, d.Len())
	assert.Equal(t, 32, d.Cap())
	for i := 0; i < 20; i++ {
		require.Equal(t, i*i, d.Get(i).MustGet())
	}
}

func TestDict_CloneAndClear(t *testing.T) {
	d := NewDict[string, int]()
	d.Insert("x", 1)
	c := d.Clone()
	c.Insert("x", 2)
	c.Insert("y", 3)
	assert.Equal(t, 1, d.Get("x").MustGet())
	assert.Equal(t, 1, d.Len())

	c.Clear()
	assert.True(t, c.Empty())
	assert.False(t, c.Contains("y"))
}

func TestPair(t *testing.T) {
	p := MakePair("k", 42)
	assert.Equal(t, "k", p.First)
	assert.Equal(t, 42, p.Second)
}
