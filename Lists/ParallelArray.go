package Lists

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// ParallelArray stores records column by column: one list per named field,
// all of the same length. The values at the same index of every column form
// one record.
// Contains, Count and Remove compare values with ==, so they panic on values
// that aren't comparable.
type ParallelArray struct {
	keys []string
	cols []*arraylist.List
}

func NewParallelArray(keys ...string) *ParallelArray {
	u := &ParallelArray{keys: keys, cols: make([]*arraylist.List, len(keys))}
	for i := range u.cols {
		u.cols[i] = arraylist.New()
	}
	return u
}

// Keys are the column names, in record order.
func (u *ParallelArray) Keys() []string {
	return append([]string(nil), u.keys...)
}

// Len is the number of records.
func (u *ParallelArray) Len() int {
	if len(u.cols) == 0 {
		return 0
	}
	return u.cols[0].Size()
}

func (u *ParallelArray) checkArity(values []any) error {
	if len(values) != len(u.keys) {
		return &ArityError{Want: len(u.keys), Got: len(values)}
	}
	return nil
}

func (u *ParallelArray) checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: u.Len()}
	}
	return nil
}

// Append a record made of one value per column.
func (u *ParallelArray) Append(values ...any) error {
	if err := u.checkArity(values); err != nil {
		return err
	}
	for i, c := range u.cols {
		c.Add(values[i])
	}
	return nil
}

// Extend appends every record, stopping at the first malformed one.
func (u *ParallelArray) Extend(records ...[]any) error {
	for _, r := range records {
		if err := u.Append(r...); err != nil {
			return err
		}
	}
	return nil
}

func (u *ParallelArray) record(i int) []any {
	r := make([]any, len(u.cols))
	for j, c := range u.cols {
		r[j], _ = c.Get(i)
	}
	return r
}

// Get the record at i.
func (u *ParallelArray) Get(i int) ([]any, error) {
	if err := u.checkIndex(i, u.Len()); err != nil {
		return nil, err
	}
	return u.record(i), nil
}

// Set overwrites the record at i.
func (u *ParallelArray) Set(i int, values ...any) error {
	if err := u.checkArity(values); err != nil {
		return err
	}
	if err := u.checkIndex(i, u.Len()); err != nil {
		return err
	}
	for j, c := range u.cols {
		c.Set(i, values[j])
	}
	return nil
}

// Insert a record before index i; i may be Len() to append.
func (u *ParallelArray) Insert(i int, values ...any) error {
	if err := u.checkArity(values); err != nil {
		return err
	}
	if err := u.checkIndex(i, u.Len()+1); err != nil {
		return err
	}
	for j, c := range u.cols {
		c.Insert(i, values[j])
	}
	return nil
}

// Pop removes the record at i and returns it.
func (u *ParallelArray) Pop(i int) ([]any, error) {
	r, err := u.Get(i)
	if err != nil {
		return nil, err
	}
	for _, c := range u.cols {
		c.Remove(i)
	}
	return r, nil
}

// Remove the first record holding v in any column. It reports whether one
// was found.
func (u *ParallelArray) Remove(v any) bool {
	for i := range u.Len() {
		for _, c := range u.cols {
			if x, _ := c.Get(i); x == v {
				for _, col := range u.cols {
					col.Remove(i)
				}
				return true
			}
		}
	}
	return false
}

// Contains reports whether any column holds v.
func (u *ParallelArray) Contains(v any) bool {
	for _, c := range u.cols {
		if c.Contains(v) {
			return true
		}
	}
	return false
}

// Count the occurrences of v across all columns.
func (u *ParallelArray) Count(v any) int {
	n := 0
	for _, c := range u.cols {
		for _, x := range c.Values() {
			if x == v {
				n++
			}
		}
	}
	return n
}

// Reverse the records in place.
func (u *ParallelArray) Reverse() {
	for _, c := range u.cols {
		for i, j := 0, c.Size()-1; i < j; i, j = i+1, j-1 {
			c.Swap(i, j)
		}
	}
}

func (u *ParallelArray) Clear() {
	for _, c := range u.cols {
		c.Clear()
	}
}

// Copy returns a shallow copy.
func (u *ParallelArray) Copy() *ParallelArray {
	r := NewParallelArray(u.Keys()...)
	for i, c := range u.cols {
		r.cols[i].Add(c.Values()...)
	}
	return r
}

// Column returns a copy of the values of the column named key.
func (u *ParallelArray) Column(key string) ([]any, bool) {
	for i, k := range u.keys {
		if k == key {
			return u.cols[i].Values(), true
		}
	}
	return nil, false
}

// All yields the records front to back.
func (u *ParallelArray) All() iter.Seq2[int, []any] {
	return func(yield func(int, []any) bool) {
		for i := range u.Len() {
			if !yield(i, u.record(i)) {
				return
			}
		}
	}
}

// Backward yields the records back to front.
func (u *ParallelArray) Backward() iter.Seq2[int, []any] {
	return func(yield func(int, []any) bool) {
		for i := u.Len() - 1; i >= 0; i-- {
			if !yield(i, u.record(i)) {
				return
			}
		}
	}
}

// AsMap returns every column keyed by its name.
func (u *ParallelArray) AsMap() map[string][]any {
	m := make(map[string][]any, len(u.keys))
	for i, k := range u.keys {
		m[k] = u.cols[i].Values()
	}
	return m
}

// Equal reports whether both arrays hold deeply equal records in the same
// order. Column names aren't compared.
func (u *ParallelArray) Equal(o *ParallelArray) bool {
	if u.Len() != o.Len() || len(u.cols) != len(o.cols) {
		return false
	}
	for i := range u.Len() {
		if !reflect.DeepEqual(u.record(i), o.record(i)) {
			return false
		}
	}
	return true
}

func (u *ParallelArray) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range u.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j, v := range r {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String()
}
