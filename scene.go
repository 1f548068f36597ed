package easel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, every invalidation in the tree is forwarded to it.
type EntityStore interface {
	EmitEvent(record InvalidationRecord)
}

// Scene owns the root group, the retained canvas the tree is rendered into
// and the running tweens. Draw repaints the canvas only when the root is
// invalid; otherwise it reuses the previous frame.
type Scene struct {
	root       *Group
	canvas     *Canvas
	background Color
	cfg        Config
	store      EntityStore
	debug      bool

	tweens  []*TweenGroup
	rootSub Handle
	pending int
	dirty   Rect
	redraws int
}

// NewScene creates a scene sized and coloured per cfg.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, _ := cfg.BackgroundColor()

	root := NewGroup("root")
	root.SetSize(float64(cfg.Width), float64(cfg.Height))

	s := &Scene{
		root:       root,
		canvas:     NewCanvas(cfg.Width, cfg.Height),
		background: bg,
		cfg:        cfg,
	}
	s.rootSub = root.On(EventInvalidate, s.onInvalidate)
	s.SetDebugMode(cfg.Debug)
	return s, nil
}

// Root returns the scene's root group.
func (s *Scene) Root() *Group {
	return s.root
}

// Canvas returns the retained canvas.
func (s *Scene) Canvas() *Canvas {
	return s.canvas
}

// Config returns the configuration the scene was created with.
func (s *Scene) Config() Config {
	return s.cfg
}

// onInvalidate counts redraw requests and grows the dirty rectangle. Any
// number of invalidations between two frames collapse into a single repaint.
func (s *Scene) onInvalidate(e Event) {
	s.pending++
	ie, ok := e.(InvalidateEvent)
	if !ok || ie.Target == nil {
		return
	}
	n := ie.Target.Base()
	s.dirty = s.dirty.Union(n.PaintBounds())
	if s.store != nil {
		s.store.EmitEvent(InvalidationRecord{NodeID: n.ID, Name: n.Name, Bounds: n.Bounds()})
	}
}

// Pending returns the number of invalidations since the last repaint.
func (s *Scene) Pending() int {
	return s.pending
}

// DirtyRect returns the union of the paint bounds of every node invalidated
// since the last repaint, measured when each invalidation was published. It
// is empty after a repaint.
func (s *Scene) DirtyRect() Rect {
	return s.dirty
}

// Redraws returns how many times the canvas has been repainted.
func (s *Scene) Redraws() int {
	return s.redraws
}

// NeedsRedraw reports whether the next Draw will repaint the canvas.
func (s *Scene) NeedsRedraw() bool {
	return !s.root.IsValid()
}

// AddTween registers a tween to be advanced by Update.
func (s *Scene) AddTween(t *TweenGroup) {
	s.tweens = append(s.tweens, t)
}

// NumTweens returns the number of running tweens.
func (s *Scene) NumTweens() int {
	return len(s.tweens)
}

// Update advances tweens by one tick at the current ebiten TPS.
func (s *Scene) Update() {
	s.Advance(float32(1.0 / float64(ebiten.TPS())))
}

// Advance advances tweens by dt seconds and drops finished ones.
func (s *Scene) Advance(dt float32) {
	live := s.tweens[:0]
	for _, t := range s.tweens {
		t.Update(dt)
		if !t.Done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// Draw repaints the canvas if anything was invalidated and copies it to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats redrawStats
	var t0 time.Time

	repainted := !s.root.IsValid()
	if repainted {
		if s.debug {
			t0 = time.Now()
			stats.requests = s.pending
			stats.dirty = s.dirty
		}
		s.repaint()
		if s.debug {
			stats.drawTime = time.Since(t0)
			stats.nodeCount = countNodes(s.root)
		}
	}

	if screen == nil {
		return
	}
	if s.debug {
		t0 = time.Now()
	}
	s.canvas.DrawTo(screen)
	if s.debug && repainted {
		stats.blitTime = time.Since(t0)
		s.debugLog(stats)
	}
}

func (s *Scene) repaint() {
	if s.background == ColorTransparent {
		s.canvas.Clear()
	} else {
		s.canvas.Fill(s.background)
	}
	s.root.Draw(s.canvas.Image())
	s.pending = 0
	s.dirty = Rect{}
	s.redraws++
}

// Resize resizes the canvas and the root group. The next Draw always
// repaints: a size change invalidates the root, and an unchanged size
// invalidates it explicitly.
func (s *Scene) Resize(width, height int) {
	s.canvas.Resize(width, height)
	s.cfg.Width, s.cfg.Height = width, height
	w, h := float64(width), float64(height)
	if s.root.Width() == w && s.root.Height() == h {
		s.root.Invalidate()
		return
	}
	s.root.SetSize(w, h)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-repaint timing stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// Dispose disposes the whole tree and the canvas.
func (s *Scene) Dispose() {
	s.rootSub.Remove()
	s.root.Dispose()
	s.canvas.Dispose()
	s.tweens = nil
}
