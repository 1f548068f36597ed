package easel

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Container is a drawable that can hold children. Parent handles passed to
// Node.SetParent must resolve to a Container.
type Container interface {
	Drawable
	// Children returns the child list. The returned slice MUST NOT be mutated.
	Children() []Drawable

	adopt(child Drawable)
	release(child Drawable)
}

// Group is a container with no visual output of its own. It draws its
// children in order. When a child is invalidated the group becomes invalid
// too and republishes the child's InvalidateEvent, so listeners on the root
// see every invalidation in the tree with its original target.
type Group struct {
	Node

	children []Drawable
	subs     map[NodeID]Handle
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	g := &Group{}
	g.Init(g, name)
	return g
}

// OnDraw draws every child onto surface.
func (g *Group) OnDraw(surface *ebiten.Image) {
	for _, c := range g.children {
		c.Base().Draw(surface)
	}
}

// AddChild appends child to this group. If child already has a parent, it is
// removed from that parent first. Panics if child is nil or child is an
// ancestor of this group (cycle).
func (g *Group) AddChild(child Drawable) {
	if child == nil {
		panic("easel: cannot add nil child")
	}
	cn := child.Base()
	if globalDebug {
		debugCheckDisposed(&g.Node, "AddChild (parent)")
		debugCheckDisposed(cn, "AddChild (child)")
	}
	if isAncestor(cn, &g.Node) {
		panic("easel: adding child would create a cycle")
	}
	if err := cn.SetParent(g.ID); err != nil {
		panic(err)
	}
}

// RemoveChild detaches child from this group. The child is not disposed and
// stays registered in the node table; call Dispose on it if it will not be
// added again.
// Panics if child's parent is not this group.
func (g *Group) RemoveChild(child Drawable) {
	cn := child.Base()
	if cn.Parent() != g.ID {
		panic("easel: child's parent is not this group")
	}
	_ = cn.SetParent(NoParent)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (g *Group) RemoveChildren() {
	for _, c := range g.children {
		_ = c.Base().SetParent(NoParent)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (g *Group) Children() []Drawable {
	return g.children
}

// NumChildren returns the number of children.
func (g *Group) NumChildren() int {
	return len(g.children)
}

// ChildAt returns the child at the given index.
func (g *Group) ChildAt(index int) Drawable {
	return g.children[index]
}

// Dispose detaches the group from its parent and disposes it together with
// all descendants.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	if p := g.ParentNode(); p != nil {
		p.release(g)
	}
	g.obs.Clear()
	for _, c := range g.children {
		if d, ok := c.(interface{ Dispose() }); ok {
			d.Dispose()
		} else {
			c.Base().Dispose()
		}
	}
	g.children = nil
	g.subs = nil
	g.dispose()
}

// adopt is called by SetParent after child's parent handle points here.
func (g *Group) adopt(child Drawable) {
	id := child.Base().ID
	if g.subs == nil {
		g.subs = make(map[NodeID]Handle)
	}
	g.subs[id] = child.Base().On(EventInvalidate, g.invalidateFrom)
	g.children = append(g.children, child)
	if globalDebug {
		debugCheckChildCount(g)
	}
	g.Invalidate()
}

// release is called by SetParent and Dispose before child leaves this group.
// The child slice is copied so that an OnDraw iterating the old slice is not
// disturbed.
func (g *Group) release(child Drawable) {
	i := slices.Index(g.children, child)
	if i < 0 {
		return
	}
	id := child.Base().ID
	g.subs[id].Remove()
	delete(g.subs, id)
	g.children = slices.Delete(slices.Clone(g.children), i, i+1)
	g.Invalidate()
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p, i := node, 0; p != nil && i <= len(nodes); p, i = p.ancestor(p.parent), i+1 {
		if p == candidate {
			return true
		}
	}
	return false
}
