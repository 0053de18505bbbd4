package Lists

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

func TestBaseList_Iterate(t *testing.T) {
	l := NewBaseList(1, 2, 3)
	it := l.Iterator()
	var fwd []int
	for it.Next() {
		fwd = append(fwd, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, fwd)
	var back []int
	for it.Prev() {
		back = append(back, it.Value())
	}
	assert.Equal(t, []int{3, 2, 1}, back)

	it.End()
	require.True(t, it.Prev())
	assert.Equal(t, 2, it.Index())
	it.Begin()
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Value())

	var idx []int
	for i, v := range l.Backward() {
		idx = append(idx, i)
		assert.Equal(t, i+1, v)
	}
	assert.Equal(t, []int{2, 1, 0}, idx)
}

func TestBaseList_Edit(t *testing.T) {
	l := NewBaseList[string]()
	assert.True(t, l.Empty())
	l.Add("a", "c")
	l.Insert(1, "b")
	l.Set(3, "d")
	l.Set(9, "x")
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Values())
	l.Remove(0)
	v, ok := l.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = l.Get(3)
	assert.False(t, ok)
	for i, v := range l.All() {
		w, _ := l.Get(i)
		assert.Equal(t, w, v)
	}
	l.Clear()
	assert.Equal(t, 0, l.Size())
}

func TestCircularArray_Wraps(t *testing.T) {
	c := NewCircularArray("a", "b", "c")
	it := c.Iterator()
	var got []string
	for i := 0; i < 7 && it.Next(); i++ {
		got = append(got, it.Value())
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c", "a"}, got)

	it.Begin()
	got = got[:0]
	for i := 0; i < 4 && it.Prev(); i++ {
		got = append(got, it.Value())
	}
	assert.Equal(t, []string{"c", "b", "a", "c"}, got)

	got = got[:0]
	for v := range c.Cycle() {
		got = append(got, v)
		if len(got) == 5 {
			break
		}
	}
	assert.Equal(t, "abcab", strings.Join(got, ""))

	empty := NewCircularArray[int]()
	assert.False(t, empty.Iterator().Next())
	assert.False(t, empty.Iterator().Prev())
	for range empty.Cycle() {
		t.Fatal("empty circular array yielded a value")
	}
}

func TestSortedList_Order(t *testing.T) {
	l := NewOrderedList(5, 1, 4)
	l.Add(3)
	l.Extend(2, 6, 0)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, l.Values())
	assert.Equal(t, 3, l.IndexOf(3))
	assert.Equal(t, -1, l.IndexOf(9))
	v, ok := l.Remove(0)
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	l.Merge(NewOrderedList(-1, 10))
	assert.Equal(t, []int{-1, 1, 2, 3, 4, 5, 6, 10}, l.Values())

	r := NewSortedList(cmp.Compare[int], true, 5, 1, 4)
	r.Add(3)
	assert.Equal(t, []int{5, 4, 3, 1}, r.Values())
	v, _ = r.Get(0)
	assert.Equal(t, 5, v)
}

func TestSortedList_Stable(t *testing.T) {
	type pair struct {
		k int
		s string
	}
	l := NewSortedList(func(a, b pair) int { return a.k - b.k }, false)
	l.Extend(pair{2, "a"}, pair{1, "b"}, pair{2, "c"}, pair{1, "d"})
	var s []string
	for _, p := range l.All() {
		s = append(s, p.s)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, s)
	assert.Equal(t, 2, l.IndexOf(pair{2, "z"}))
}

func TestSortedList_Random(t *testing.T) {
	l := NewOrderedList[int]()
	var want []int
	for range 500 {
		v := rg.Intn(100)
		l.Add(v)
		want = append(want, v)
	}
	slices.Sort(want)
	assert.Equal(t, want, l.Values())
	it := l.Iterator()
	it.End()
	for i := len(want) - 1; it.Prev(); i-- {
		assert.Equal(t, want[i], it.Value())
	}
}

func TestOrganizedList_Promotes(t *testing.T) {
	l := NewOrganizedList("a", "b", "c", "d")
	v, ok := l.Get(2)
	require.True(t, ok)
	assert.Equal(t, "c", v)
	assert.Equal(t, []string{"c", "a", "b", "d"}, l.Values())

	l.Get(3) // d ties with c and goes in front of it
	assert.Equal(t, []string{"d", "c", "a", "b"}, l.Values())
	l.Get(1) // c: 2 accesses
	assert.Equal(t, []string{"c", "d", "a", "b"}, l.Values())
	assert.Equal(t, uint(2), l.Count(0))
	assert.Equal(t, uint(1), l.Count(1))

	p, _ := l.Peek(3)
	assert.Equal(t, "b", p)
	assert.Equal(t, uint(0), l.Count(3))
	assert.Equal(t, "[c:2 d:1 a:0 b:0]", l.String())

	p, ok = l.Pop(0)
	assert.True(t, ok)
	assert.Equal(t, "c", p)
	l.Add("e")
	assert.Equal(t, []string{"d", "a", "b", "e"}, l.Values())
	_, ok = l.Get(4)
	assert.False(t, ok)
	assert.Equal(t, 4, l.Size())
}

func TestParallelArray(t *testing.T) {
	p := NewParallelArray("name", "age")
	require.NoError(t, p.Append("ann", 31))
	require.NoError(t, p.Extend([]any{"bob", 42}, []any{"cid", 27}))
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "[(ann, 31), (bob, 42), (cid, 27)]", p.String())

	var ae *ArityError
	assert.True(t, errors.As(p.Append("dan"), &ae))
	assert.Equal(t, 2, ae.Want)
	assert.Equal(t, 1, ae.Got)
	var ie *IndexError
	_, err := p.Get(3)
	assert.True(t, errors.As(err, &ie))

	r, err := p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []any{"bob", 42}, r)
	require.NoError(t, p.Set(1, "bea", 43))
	require.NoError(t, p.Insert(0, "zed", 19))
	require.NoError(t, p.Insert(p.Len(), "eve", 50))
	assert.Error(t, p.Insert(9, "x", 0))

	ages, ok := p.Column("age")
	require.True(t, ok)
	assert.Equal(t, []any{19, 31, 43, 27, 50}, ages)
	_, ok = p.Column("height")
	assert.False(t, ok)

	assert.True(t, p.Contains(43))
	assert.False(t, p.Contains("bob"))
	require.NoError(t, p.Append("ann", 31))
	assert.Equal(t, 2, p.Count("ann"))
	assert.True(t, p.Remove(31))
	assert.False(t, p.Remove(99))
	assert.Equal(t, 1, p.Count(31))
	assert.Equal(t, 1, p.Count("bea"))

	c := p.Copy()
	assert.True(t, c.Equal(p))
	c.Reverse()
	assert.False(t, c.Equal(p))
	var names []any
	for _, r := range c.Backward() {
		names = append(names, r[0])
	}
	assert.Equal(t, p.AsMap()["name"], names)

	last, err := p.Pop(p.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, []any{"ann", 31}, last)
	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "[]", p.String())
	assert.Equal(t, []string{"name", "age"}, p.Keys())
}
