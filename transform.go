package easel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Transform holds a node's scale, rotation, skew and pivot. Every setter that
// changes a value publishes a ChangeEvent to listeners registered with
// OnChange. Setting a property to its current value publishes nothing.
//
// Position is not part of the transform; it lives on the node's rectangle.
type Transform struct {
	scaleX, scaleY float64
	rotation       float64
	skewX, skewY   float64
	pivotX, pivotY float64

	obs Observable
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	return &Transform{scaleX: 1, scaleY: 1}
}

// OnChange registers fn to receive a ChangeEvent for each changed property.
func (t *Transform) OnChange(fn Listener) Handle {
	return t.obs.On(EventChange, fn)
}

// Scale returns the scale factors.
func (t *Transform) Scale() (sx, sy float64) { return t.scaleX, t.scaleY }

// Rotation returns the rotation in radians.
func (t *Transform) Rotation() float64 { return t.rotation }

// Skew returns the skew angles in radians.
func (t *Transform) Skew() (sx, sy float64) { return t.skewX, t.skewY }

// Pivot returns the pivot point in local coordinates.
func (t *Transform) Pivot() (px, py float64) { return t.pivotX, t.pivotY }

// SetScale sets the scale factors.
func (t *Transform) SetScale(sx, sy float64) {
	t.set(&t.scaleX, "scaleX", sx)
	t.set(&t.scaleY, "scaleY", sy)
}

// SetRotation sets the rotation in radians.
func (t *Transform) SetRotation(r float64) {
	t.set(&t.rotation, "rotation", r)
}

// SetSkew sets the skew angles in radians.
func (t *Transform) SetSkew(sx, sy float64) {
	t.set(&t.skewX, "skewX", sx)
	t.set(&t.skewY, "skewY", sy)
}

// SetPivot sets the point scale and rotation are applied around.
func (t *Transform) SetPivot(px, py float64) {
	t.set(&t.pivotX, "pivotX", px)
	t.set(&t.pivotY, "pivotY", py)
}

// Reset restores the identity transform.
func (t *Transform) Reset() {
	t.SetScale(1, 1)
	t.SetRotation(0)
	t.SetSkew(0, 0)
	t.SetPivot(0, 0)
}

// IsIdentity reports whether the transform has no effect.
func (t *Transform) IsIdentity() bool {
	return t.Matrix() == identityMatrix
}

func (t *Transform) set(field *float64, name string, v float64) {
	old := *field
	if old == v {
		return
	}
	*field = v
	t.obs.Dispatch(EventChange, ChangeEvent{Type: EventChange, Property: name, Old: old, New: v})
}

// Matrix computes the affine matrix [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-Pivot) -> Scale -> Skew -> Rotate -> Translate(Pivot)
func (t *Transform) Matrix() [6]float64 {
	sx := t.scaleX
	sy := t.scaleY

	sin, cos := math.Sincos(t.rotation)

	var tanSkewX, tanSkewY float64
	if t.skewX != 0 {
		tanSkewX = math.Tan(t.skewX)
	}
	if t.skewY != 0 {
		tanSkewY = math.Tan(t.skewY)
	}

	// Scale then skew.
	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	px := t.pivotX
	py := t.pivotY
	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	// Rotate.
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + px, rty + py}
}

// GeoM returns the transform as an ebiten.GeoM.
func (t *Transform) GeoM() ebiten.GeoM {
	return geoMFromMatrix(t.Matrix())
}

func geoMFromMatrix(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, p Point) Point {
	return Point{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// Apply maps a local point through the transform.
func (t *Transform) Apply(p Point) Point {
	return transformPoint(t.Matrix(), p)
}
