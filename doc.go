// Package easel is the retained scene graph behind a 2D drawing/editor
// surface built on [Ebitengine].
//
// # Nodes
//
// Every drawable embeds a [Node]: a rectangle (position and size relative to
// the parent), a [Transform], a validity flag and a reentrancy [Lock]. A node
// is invalid after construction. [Node.Draw] calls the drawable's OnDraw hook
// and then marks the node valid; [Node.Invalidate] marks it invalid again and
// publishes an [InvalidateEvent].
//
// Changes to the rectangle or the transform invalidate the node, except while
// it is drawing: an OnDraw hook may move or resize its own node without
// scheduling another redraw. A re-entrant Draw from inside OnDraw skips the
// hook and still marks the node valid.
//
// Concrete drawables embed Node and call [Node.Init]:
//
//	type Star struct {
//		easel.Node
//	}
//
//	func NewStar(name string) *Star {
//		s := &Star{}
//		s.Init(s, name)
//		return s
//	}
//
//	func (s *Star) OnDraw(surface *ebiten.Image) { ... }
//
// # Hierarchy and coordinates
//
// Parents are referenced by [NodeID] handles into a node table, never by
// pointer, and only containers such as [Group] may be parents. Set a parent
// with [Node.SetParent] or [Group.AddChild]. [Node.LocalToGlobal] and
// [Node.GlobalToLocal] translate points by the origins of all ancestors;
// [Node.Bounds] is the node's rectangle with its origin in root space.
//
// # Scenes
//
// A [Scene] owns a root group and a retained [Canvas]. Invalidations bubble
// to the root; [Scene.Draw] repaints the canvas only when the root is
// invalid, then copies it to the screen:
//
//	cfg, _ := easel.LoadConfig(".")
//	scene, _ := easel.NewScene(cfg)
//
//	box := easel.NewShape("box", easel.Color{R: 0.3, G: 0.7, B: 1, A: 1})
//	box.SetPosition(100, 50)
//	box.SetSize(80, 40)
//	scene.Root().AddChild(box)
//
//	easel.Run(scene, nil)
//
// Tweens (via [gween]) animate node properties through the same setters, and
// the ecs submodule forwards invalidations into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package easel
