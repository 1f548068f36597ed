package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 properties of a node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenScale, TweenRotation) and call Update(dt) each frame, or register it
// with Scene.AddTween. Values are written through the node's setters, so
// every step publishes change notifications and invalidates the node. If the
// target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(v [4]float64)
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

// TweenPosition creates a TweenGroup that moves d to (toX, toY) over the
// specified duration using the easing function.
func TweenPosition(d Drawable, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	n := d.Base()
	g := &TweenGroup{count: 2, target: n}
	g.tweens[0] = gween.New(float32(n.X()), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(n.Y()), float32(toY), duration, fn)
	g.apply = func(v [4]float64) { n.SetPosition(v[0], v[1]) }
	return g
}

// TweenSize creates a TweenGroup that resizes d to (toW, toH).
func TweenSize(d Drawable, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	n := d.Base()
	g := &TweenGroup{count: 2, target: n}
	g.tweens[0] = gween.New(float32(n.Width()), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(n.Height()), float32(toH), duration, fn)
	g.apply = func(v [4]float64) { n.SetSize(v[0], v[1]) }
	return g
}

// TweenScale creates a TweenGroup that animates the scale of d's transform.
func TweenScale(d Drawable, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	n := d.Base()
	t := n.Transform()
	sx, sy := t.Scale()
	g := &TweenGroup{count: 2, target: n}
	g.tweens[0] = gween.New(float32(sx), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(sy), float32(toSY), duration, fn)
	g.apply = func(v [4]float64) { t.SetScale(v[0], v[1]) }
	return g
}

// TweenRotation creates a TweenGroup that animates the rotation of d's
// transform, in radians.
func TweenRotation(d Drawable, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	n := d.Base()
	t := n.Transform()
	g := &TweenGroup{count: 1, target: n}
	g.tweens[0] = gween.New(float32(t.Rotation()), float32(to), duration, fn)
	g.apply = func(v [4]float64) { t.SetRotation(v[0]) }
	return g
}
