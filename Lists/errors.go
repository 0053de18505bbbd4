package Lists

import "fmt"

// IndexError is returned when an index falls outside of a list.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

// ArityError is returned when a record doesn't have one value per column.
type ArityError struct {
	Want, Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("record has %d values, want %d", e.Got, e.Want)
}
