package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// NodeID identifies a node in the node table. The zero value means "no node".
type NodeID uint32

// NoParent is the parent handle of a root-level node.
const NoParent NodeID = 0

// Drawable is anything that can be placed in the scene graph. Concrete types
// embed Node and implement OnDraw.
type Drawable interface {
	// Base returns the embedded Node.
	Base() *Node
	// OnDraw paints the drawable onto surface. It is called by Node.Draw with
	// the node's lock held.
	OnDraw(surface *ebiten.Image)
}

// --- Node table ---

// nodeIDCounter is a plain counter (no atomic, scene graphs are single-threaded).
var nodeIDCounter uint32

func nextNodeID() NodeID {
	nodeIDCounter++
	return NodeID(nodeIDCounter)
}

// nodes maps live node IDs to their drawables. Parent links are stored as IDs
// into this table so that a child never keeps its parent alive. Entries are
// removed by Dispose.
var nodes = map[NodeID]Drawable{}

// Lookup returns the live drawable registered under id.
func Lookup(id NodeID) (Drawable, bool) {
	if id == NoParent {
		return nil, false
	}
	d, ok := nodes[id]
	return d, ok
}

// --- Node ---

// Node is the base of every drawable. It holds the node's rectangle, its
// transform, a reentrancy lock for drawing and a validity flag. A node is
// invalid after construction and after every Invalidate; only a completed
// Draw makes it valid.
//
// Changes to the rectangle or the transform are published as ChangeEvents on
// the node's own channel. The node listens to that channel and invalidates
// itself unless it is currently drawing.
//
// Every initialized node is registered in the node table so that parent
// handles can be resolved. The table keeps the node (and its listeners)
// alive until Dispose is called, whether or not a container still holds it.
// Nodes that are dropped for good must be disposed.
type Node struct {
	ID   NodeID
	Name string

	bounds    Rect
	parent    NodeID
	transform *Transform
	lock      Lock
	valid     bool

	obs          Observable
	transformSub Handle
	self         Drawable
	disposed     bool
	bubbling     bool
}

// NewNode creates a bare node. Drawing a bare node panics with
// ErrNotImplemented; concrete drawables embed Node and override OnDraw.
func NewNode(name string) *Node {
	n := &Node{}
	n.Init(n, name)
	return n
}

// Init registers self in the node table and binds the change handler.
// Constructors of concrete drawables call it exactly once on the embedded
// Node, passing the outer value as self:
//
//	s := &Star{}
//	s.Init(s, "star")
//
// Init panics if the node is already initialized.
func (n *Node) Init(self Drawable, name string) {
	if n.self != nil {
		panic("easel: node initialized twice")
	}
	if self == nil || self.Base() != n {
		panic("easel: Init self must embed this node")
	}
	n.ID = nextNodeID()
	n.Name = name
	n.transform = NewTransform()
	n.self = self
	n.transformSub = n.transform.OnChange(func(e Event) {
		n.obs.Dispatch(EventChange, e)
	})
	n.obs.On(EventChange, n.onChange)
	nodes[n.ID] = self
}

// onChange turns change notifications into invalidation. Changes made while
// the node is drawing are part of that draw and do not invalidate.
func (n *Node) onChange(Event) {
	if n.lock.IsLocked() {
		return
	}
	n.Invalidate()
}

// Base implements Drawable.
func (n *Node) Base() *Node {
	return n
}

// OnDraw panics: a bare Node has nothing to paint.
func (n *Node) OnDraw(*ebiten.Image) {
	panic(ErrNotImplemented)
}

// --- Draw / invalidate protocol ---

// Draw paints the node through its OnDraw hook and marks it valid. If the
// node is already drawing (a re-entrant call from inside OnDraw) the hook is
// skipped, but the node is still marked valid.
func (n *Node) Draw(surface *ebiten.Image) {
	if globalDebug {
		debugCheckDisposed(n, "Draw")
	}
	if n.lock.TryLock() {
		n.paint(surface)
	}
	n.valid = true
}

func (n *Node) paint(surface *ebiten.Image) {
	defer n.lock.Unlock()
	n.self.OnDraw(surface)
}

// Invalidate marks the node as needing a redraw and publishes an
// InvalidateEvent. It publishes on every call, even if the node is already
// invalid.
func (n *Node) Invalidate() {
	n.valid = false
	n.obs.Dispatch(EventInvalidate, InvalidateEvent{Type: EventInvalidate, Target: n.self})
}

// invalidateFrom marks the node invalid and republishes an InvalidateEvent
// raised by a descendant, keeping the descendant as its target. An event that
// comes back while the node is already republishing (the parent chain loops)
// is not republished again.
func (n *Node) invalidateFrom(e Event) {
	n.valid = false
	if n.bubbling {
		return
	}
	n.bubbling = true
	defer func() { n.bubbling = false }()
	n.obs.Dispatch(EventInvalidate, e)
}

// IsValid reports whether the node has been drawn since it was last invalidated.
func (n *Node) IsValid() bool {
	return n.valid
}

// IsDrawing reports whether the node's draw lock is held.
func (n *Node) IsDrawing() bool {
	return n.lock.IsLocked()
}

// On registers fn for events of eventType published by this node
// (EventInvalidate, EventChange).
func (n *Node) On(eventType string, fn Listener) Handle {
	return n.obs.On(eventType, fn)
}

// Transform returns the node's transform. Mutating it invalidates the node.
func (n *Node) Transform() *Transform {
	return n.transform
}

// --- Rectangle accessors ---

// X returns the node's local x position.
func (n *Node) X() float64 { return n.bounds.X }

// Y returns the node's local y position.
func (n *Node) Y() float64 { return n.bounds.Y }

// Width returns the node's width.
func (n *Node) Width() float64 { return n.bounds.Width }

// Height returns the node's height.
func (n *Node) Height() float64 { return n.bounds.Height }

// SetX sets the node's local x position.
func (n *Node) SetX(x float64) { n.setRect(&n.bounds.X, "x", x) }

// SetY sets the node's local y position.
func (n *Node) SetY(y float64) { n.setRect(&n.bounds.Y, "y", y) }

// SetWidth sets the node's width.
func (n *Node) SetWidth(w float64) { n.setRect(&n.bounds.Width, "width", w) }

// SetHeight sets the node's height.
func (n *Node) SetHeight(h float64) { n.setRect(&n.bounds.Height, "height", h) }

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y float64) {
	n.SetX(x)
	n.SetY(y)
}

// SetSize sets the node's width and height.
func (n *Node) SetSize(w, h float64) {
	n.SetWidth(w)
	n.SetHeight(h)
}

func (n *Node) setRect(field *float64, name string, v float64) {
	old := *field
	if old == v {
		return
	}
	*field = v
	n.obs.Dispatch(EventChange, ChangeEvent{Type: EventChange, Property: name, Old: old, New: v})
}

// --- Hierarchy ---

// SetParent sets the node's parent to the container registered under id.
// NoParent detaches the node. An id that does not resolve to a live node
// or resolves to a node that cannot hold children is rejected with a
// *ParentError and the current parent is kept.
//
// SetParent is the only place the parent relation changes: the old parent
// forgets the node and the new parent lists it as its last child.
func (n *Node) SetParent(id NodeID) error {
	if globalDebug {
		debugCheckDisposed(n, "SetParent")
	}
	var next Container
	if id != NoParent {
		d, ok := nodes[id]
		if !ok {
			return &ParentError{Node: n.ID, Parent: id, Err: ErrUnknownNode}
		}
		c, ok := d.(Container)
		if !ok {
			return &ParentError{Node: n.ID, Parent: id, Err: ErrNotContainer}
		}
		next = c
	}

	if old := n.ParentNode(); old != nil {
		old.release(n.self)
	}
	n.parent = id
	if next != nil {
		next.adopt(n.self)
	}
	if globalDebug {
		debugCheckTreeDepth(n)
	}
	return nil
}

// Parent returns the parent handle, or NoParent.
func (n *Node) Parent() NodeID {
	return n.parent
}

// ParentNode resolves the parent handle. It returns nil for root-level nodes
// and for parents that have been disposed.
func (n *Node) ParentNode() Container {
	d, ok := Lookup(n.parent)
	if !ok {
		return nil
	}
	c, _ := d.(Container)
	return c
}

// --- Coordinates ---

// LocalBounds returns the node's rectangle in its parent's coordinate space.
func (n *Node) LocalBounds() Rect {
	return n.bounds
}

// Bounds returns the node's rectangle with its origin converted to global
// (root) coordinates. Width and height stay in local units.
func (n *Node) Bounds() Rect {
	return n.bounds.WithOrigin(n.LocalToGlobal(n.bounds.Origin()))
}

// LocalToGlobal converts a point in the node's parent space to root space by
// adding the origin of every ancestor. Only translation is accumulated.
func (n *Node) LocalToGlobal(p Point) Point {
	for a, i := n.ancestor(n.parent), 0; a != nil && i < len(nodes); a, i = a.ancestor(a.parent), i+1 {
		p = p.Add(a.bounds.X, a.bounds.Y)
	}
	return p
}

// GlobalToLocal converts a point in root space to the node's parent space.
func (n *Node) GlobalToLocal(p Point) Point {
	for a, i := n.ancestor(n.parent), 0; a != nil && i < len(nodes); a, i = a.ancestor(a.parent), i+1 {
		p = p.Sub(a.bounds.X, a.bounds.Y)
	}
	return p
}

// PaintBounds returns the global axis-aligned box around the node's rectangle
// with its transform applied. A Shape paints inside this box.
func (n *Node) PaintBounds() Rect {
	w, h := n.bounds.Width, n.bounds.Height
	corners := [4]Point{{0, 0}, {w, 0}, {0, h}, {w, h}}
	lo := n.transform.Apply(corners[0])
	hi := lo
	for _, c := range corners[1:] {
		p := n.transform.Apply(c)
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	o := n.LocalToGlobal(n.bounds.Origin())
	return Rect{o.X + lo.X, o.Y + lo.Y, hi.X - lo.X, hi.Y - lo.Y}
}

// ancestor resolves id to a Node, or nil when the walk has left the graph.
// Walks over ancestors stop after len(nodes) steps, which is only reached
// when SetParent has closed a loop.
func (n *Node) ancestor(id NodeID) *Node {
	d, ok := Lookup(id)
	if !ok {
		return nil
	}
	return d.Base()
}

// --- Disposal ---

// Dispose detaches the node from its parent, releases its transform
// subscription, drops its listeners and removes it from the node table.
// Calling Dispose twice is a no-op.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if p := n.ParentNode(); p != nil {
		p.release(n.self)
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.transformSub.Remove()
	n.transformSub = Handle{}
	n.obs.Clear()
	delete(nodes, n.ID)
	n.ID = 0
	n.parent = NoParent
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
