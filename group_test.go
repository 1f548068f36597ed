package easel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAddChildBasic(t *testing.T) {
	parent := NewGroup("parent")
	child := newProbe("child")
	parent.AddChild(child)

	if child.Parent() != parent.ID {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != Drawable(child) {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewGroup("p1")
	p2 := NewGroup("p2")
	child := newProbe("child")

	p1.AddChild(child)
	p2.AddChild(child)

	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent() != p2.ID {
		t.Error("child.Parent should be p2")
	}
}

func TestSetParentKeepsChildListConsistent(t *testing.T) {
	g := NewGroup("g")
	a := newProbe("a")
	b := newProbe("b")

	if err := a.SetParent(g.ID); err != nil {
		t.Fatal(err)
	}
	if err := b.SetParent(g.ID); err != nil {
		t.Fatal(err)
	}
	if g.NumChildren() != 2 || g.ChildAt(0) != Drawable(a) || g.ChildAt(1) != Drawable(b) {
		t.Fatalf("children = %v, want [a b]", g.Children())
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewGroup("g").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildSelfPanics(t *testing.T) {
	g := NewGroup("g")
	defer func() {
		if recover() == nil {
			t.Error("expected panic when adding a group to itself")
		}
	}()
	g.AddChild(g)
}

func TestRemoveChild(t *testing.T) {
	g := NewGroup("g")
	a := newProbe("a")
	b := newProbe("b")
	g.AddChild(a)
	g.AddChild(b)

	g.RemoveChild(a)

	if a.Parent() != NoParent {
		t.Error("removed child should have no parent")
	}
	if g.NumChildren() != 1 || g.ChildAt(0) != Drawable(b) {
		t.Errorf("children = %v, want [b]", g.Children())
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	g1 := NewGroup("g1")
	g2 := NewGroup("g2")
	c := newProbe("c")
	g1.AddChild(c)
	defer func() {
		if recover() == nil {
			t.Error("expected panic removing a child of another group")
		}
	}()
	g2.RemoveChild(c)
}

func TestRemoveChildren(t *testing.T) {
	g := NewGroup("g")
	kids := []*probe{newProbe("a"), newProbe("b"), newProbe("c")}
	for _, k := range kids {
		g.AddChild(k)
	}
	g.RemoveChildren()
	if g.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", g.NumChildren())
	}
	for _, k := range kids {
		if k.Parent() != NoParent {
			t.Errorf("%s still has a parent", k.Name)
		}
		if k.IsDisposed() {
			t.Errorf("%s should not be disposed", k.Name)
		}
	}
}

func TestGroupDrawsChildrenInOrder(t *testing.T) {
	g := NewGroup("g")
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		p := newProbe(name)
		p.onDraw = func(p *probe, _ *ebiten.Image) { order = append(order, p.Name) }
		g.AddChild(p)
	}

	g.Draw(nil)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("draw order = %v, want [a b c]", order)
	}
	if !g.IsValid() {
		t.Error("group should be valid after Draw")
	}
	for _, c := range g.Children() {
		if !c.Base().IsValid() {
			t.Errorf("%s should be valid after group Draw", c.Base().Name)
		}
	}
}

func TestChildInvalidationBubbles(t *testing.T) {
	root := NewGroup("root")
	layer := NewGroup("layer")
	leaf := newProbe("leaf")
	root.AddChild(layer)
	layer.AddChild(leaf)
	root.Draw(nil)

	var targets []Drawable
	root.On(EventInvalidate, func(e Event) {
		targets = append(targets, e.(InvalidateEvent).Target)
	})

	leaf.SetX(3)

	if root.IsValid() || layer.IsValid() || leaf.IsValid() {
		t.Error("leaf change should invalidate every ancestor")
	}
	if len(targets) != 1 || targets[0] != Drawable(leaf) {
		t.Errorf("root saw targets %v, want [leaf]", targets)
	}
}

func TestRemovedChildNoLongerBubbles(t *testing.T) {
	g := NewGroup("g")
	c := newProbe("c")
	g.AddChild(c)
	g.RemoveChild(c)
	g.Draw(nil)

	c.Invalidate()

	if !g.IsValid() {
		t.Error("detached child should not invalidate its former group")
	}
}

func TestRemovedChildStaysRegisteredUntilDisposed(t *testing.T) {
	g := NewGroup("g")
	c := newProbe("c")
	id := c.ID
	g.AddChild(c)
	g.RemoveChild(c)

	if d, ok := Lookup(id); !ok || d != Drawable(c) {
		t.Fatal("removed child should stay in the node table")
	}
	c.Dispose()
	if _, ok := Lookup(id); ok {
		t.Error("disposed child should leave the node table")
	}
}

func TestSetParentSelfCycle(t *testing.T) {
	g := NewGroup("g")
	defer g.Dispose()
	count := countInvalidations(g)

	if err := g.SetParent(g.ID); err != nil {
		t.Fatalf("SetParent(self) = %v, want nil", err)
	}
	if g.Parent() != g.ID {
		t.Errorf("Parent = %d, want %d", g.Parent(), g.ID)
	}

	before := *count
	g.Invalidate()
	if *count <= before {
		t.Error("Invalidate should still publish")
	}
	if g.IsValid() {
		t.Error("group should be invalid")
	}
	if got := g.LocalToGlobal(Point{1, 1}); got != (Point{1, 1}) {
		t.Errorf("LocalToGlobal = %v, want {1 1}", got)
	}

	g.Draw(nil)
	if !g.IsValid() {
		t.Error("Draw should mark the group valid")
	}
}

func TestSetParentTwoCycle(t *testing.T) {
	g1 := NewGroup("g1")
	g2 := NewGroup("g2")
	defer g1.Dispose()
	g1.AddChild(g2)
	c1 := countInvalidations(g1)
	c2 := countInvalidations(g2)

	if err := g1.SetParent(g2.ID); err != nil {
		t.Fatalf("SetParent = %v, want nil", err)
	}
	if g1.Parent() != g2.ID || g2.Parent() != g1.ID {
		t.Fatalf("parents = %d/%d, want a loop", g1.Parent(), g2.Parent())
	}

	*c1, *c2 = 0, 0
	g2.Invalidate()
	if *c1 == 0 || *c2 == 0 {
		t.Errorf("invalidations = %d/%d, want both non-zero", *c1, *c2)
	}

	*c1, *c2 = 0, 0
	g1.Invalidate()
	if *c1 == 0 || *c2 == 0 {
		t.Errorf("invalidations = %d/%d, want both non-zero", *c1, *c2)
	}

	g1.Draw(nil)
	if !g1.IsValid() || !g2.IsValid() {
		t.Error("Draw should mark both groups valid")
	}
}

func TestAddChildInvalidatesGroup(t *testing.T) {
	g := NewGroup("g")
	g.Draw(nil)
	g.AddChild(newProbe("c"))
	if g.IsValid() {
		t.Error("adding a child should invalidate the group")
	}
}

func TestChildChangeDuringGroupDraw(t *testing.T) {
	g := NewGroup("g")
	a := newProbe("a")
	a.onDraw = func(p *probe, _ *ebiten.Image) {
		p.SetPosition(9, 9)
	}
	g.AddChild(a)
	count := countInvalidations(g)

	g.Draw(nil)

	if *count != 0 {
		t.Errorf("invalidations = %d, want 0", *count)
	}
	if !g.IsValid() || !a.IsValid() {
		t.Error("group and child should be valid")
	}
}

func TestGroupDisposeIsRecursive(t *testing.T) {
	root := NewGroup("root")
	mid := NewGroup("mid")
	leaf := newProbe("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()

	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Error("group and descendants should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Errorf("root NumChildren = %d, want 0", root.NumChildren())
	}
	if root.IsDisposed() {
		t.Error("root should not be disposed")
	}
}
