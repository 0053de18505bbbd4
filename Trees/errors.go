package Trees

import "fmt"

// KeyNotFoundError is returned by Delete when no node holds Key. The tree is
// left unchanged.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found in tree: %v", e.Key)
}

// TypeMismatchError is returned by Merge when the operand is not a tree.
type TypeMismatchError struct {
	Operand any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot merge %T into a tree", e.Operand)
}
