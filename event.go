package easel

// Event types dispatched through an Observable.
const (
	// EventInvalidate is published by Node.Invalidate.
	EventInvalidate = "invalidate"
	// EventChange is published when a rectangle or transform property changes.
	EventChange = "change"
)

// Event is a payload delivered to listeners.
type Event interface {
	EventType() string
}

// InvalidateEvent is published every time a node is invalidated. Target is a
// back-reference for listeners; the event does not own it.
type InvalidateEvent struct {
	Type   string
	Target Drawable
}

// EventType implements Event.
func (e InvalidateEvent) EventType() string { return e.Type }

// ChangeEvent describes a property change on a node's rectangle or transform.
type ChangeEvent struct {
	Type     string
	Property string
	Old, New float64
}

// EventType implements Event.
func (e ChangeEvent) EventType() string { return e.Type }

// InvalidationRecord is the flattened form of an InvalidateEvent forwarded to
// an EntityStore.
type InvalidationRecord struct {
	NodeID NodeID
	Name   string
	Bounds Rect
}
