package easel

import (
	"errors"
	"fmt"
)

var (
	// ErrNotContainer is returned when a parent handle resolves to a node
	// that cannot hold children.
	ErrNotContainer = errors.New("easel: parent is not a container")

	// ErrUnknownNode is returned when a handle does not resolve to a live node.
	ErrUnknownNode = errors.New("easel: unknown node")

	// ErrNotImplemented is the panic value raised when a Node's paint hook is
	// invoked without a concrete drawable overriding it.
	ErrNotImplemented = errors.New("easel: OnDraw not implemented")
)

// ParentError reports a rejected SetParent call.
type ParentError struct {
	// Node is the node whose parent was being set.
	Node NodeID
	// Parent is the handle that was rejected.
	Parent NodeID
	// Err is ErrNotContainer or ErrUnknownNode.
	Err error
}

func (e *ParentError) Error() string {
	return fmt.Sprintf("easel: set parent of node %d to %d: %v", e.Node, e.Parent, e.Err)
}

func (e *ParentError) Unwrap() error {
	return e.Err
}
