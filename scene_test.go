package easel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	s, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestNewScene(t *testing.T) {
	s := newTestScene(t)
	if s.Root() == nil {
		t.Fatal("root should not be nil")
	}
	if s.Root().Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.Root().Name, "root")
	}
	if s.Root().Width() != 64 || s.Root().Height() != 48 {
		t.Errorf("root size = %vx%v, want 64x48", s.Root().Width(), s.Root().Height())
	}
	if s.Canvas().Width() != 64 || s.Canvas().Height() != 48 {
		t.Errorf("canvas size = %dx%d", s.Canvas().Width(), s.Canvas().Height())
	}
	if !s.NeedsRedraw() {
		t.Error("a new scene should need a redraw")
	}
}

func TestNewSceneInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewScene(cfg); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestSceneDrawIsLazy(t *testing.T) {
	s := newTestScene(t)
	box := NewShape("box", ColorWhite)
	box.SetSize(10, 10)
	s.Root().AddChild(box)
	screen := ebiten.NewImage(64, 48)

	s.Draw(screen)
	if s.Redraws() != 1 {
		t.Fatalf("Redraws = %d, want 1", s.Redraws())
	}
	if !box.IsValid() || s.NeedsRedraw() {
		t.Error("tree should be valid after Draw")
	}

	s.Draw(screen)
	s.Draw(screen)
	if s.Redraws() != 1 {
		t.Errorf("Redraws = %d, want 1 (nothing changed)", s.Redraws())
	}

	box.SetX(5)
	if !s.NeedsRedraw() {
		t.Error("moving a shape should request a redraw")
	}
	s.Draw(screen)
	if s.Redraws() != 2 {
		t.Errorf("Redraws = %d, want 2", s.Redraws())
	}
}

func TestScenePendingBatchesInvalidations(t *testing.T) {
	s := newTestScene(t)
	box := NewShape("box", ColorWhite)
	s.Root().AddChild(box)
	s.Draw(nil)
	if s.Pending() != 0 {
		t.Fatalf("Pending after Draw = %d, want 0", s.Pending())
	}

	box.SetPosition(1, 2)
	box.Invalidate()
	if s.Pending() != 3 {
		t.Errorf("Pending = %d, want 3", s.Pending())
	}

	s.Draw(nil)
	if s.Redraws() != 2 {
		t.Errorf("Redraws = %d, want 2 (one repaint for all requests)", s.Redraws())
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestSceneResizeCountsOneRequestPerChange(t *testing.T) {
	s := newTestScene(t)
	s.Draw(nil)

	s.Resize(100, 48)
	if s.Pending() != 1 {
		t.Errorf("Pending after width change = %d, want 1", s.Pending())
	}
	s.Draw(nil)

	s.Resize(100, 48)
	if s.Pending() != 1 {
		t.Errorf("Pending after same-size Resize = %d, want 1", s.Pending())
	}
	if !s.NeedsRedraw() {
		t.Error("same-size Resize should still request a redraw")
	}
}

func TestSceneDirtyRect(t *testing.T) {
	s := newTestScene(t)
	box := NewShape("box", ColorWhite)
	box.SetSize(4, 6)
	box.SetPosition(10, 5)
	s.Root().AddChild(box)
	if got := s.DirtyRect(); got != (Rect{0, 0, 64, 48}) {
		t.Errorf("DirtyRect after AddChild = %v, want the root", got)
	}
	s.Draw(nil)
	if got := s.DirtyRect(); got != (Rect{}) {
		t.Fatalf("DirtyRect after Draw = %v, want empty", got)
	}

	box.SetX(20)
	if got := s.DirtyRect(); got != (Rect{20, 5, 4, 6}) {
		t.Errorf("DirtyRect = %v, want {20 5 4 6}", got)
	}
	box.SetY(30)
	if got := s.DirtyRect(); got != (Rect{20, 5, 4, 31}) {
		t.Errorf("DirtyRect = %v, want {20 5 4 31}", got)
	}

	s.Draw(nil)
	if got := s.DirtyRect(); got != (Rect{}) {
		t.Errorf("DirtyRect after Draw = %v, want empty", got)
	}
}

type recordingStore struct {
	records []InvalidationRecord
}

func (r *recordingStore) EmitEvent(rec InvalidationRecord) {
	r.records = append(r.records, rec)
}

func TestSceneEntityStoreReceivesTargets(t *testing.T) {
	s := newTestScene(t)
	layer := NewGroup("layer")
	layer.SetPosition(10, 10)
	s.Root().AddChild(layer)
	box := NewShape("box", ColorWhite)
	box.SetSize(4, 4)
	layer.AddChild(box)
	s.Draw(nil)

	store := &recordingStore{}
	s.SetEntityStore(store)
	box.SetX(2)

	if len(store.records) != 1 {
		t.Fatalf("records = %d, want 1", len(store.records))
	}
	r := store.records[0]
	if r.NodeID != box.ID || r.Name != "box" {
		t.Errorf("record = %+v", r)
	}
	if r.Bounds != (Rect{12, 10, 4, 4}) {
		t.Errorf("record bounds = %v, want {12 10 4 4}", r.Bounds)
	}
}

func TestSceneSetEntityStoreNil(t *testing.T) {
	s := newTestScene(t)
	s.SetEntityStore(nil)
	s.Root().Invalidate() // must not panic
}

func TestSceneAdvanceTweens(t *testing.T) {
	s := newTestScene(t)
	box := NewShape("box", ColorWhite)
	s.Root().AddChild(box)
	s.Draw(nil)

	s.AddTween(TweenPosition(box, 10, 0, 1, ease.Linear))
	if s.NumTweens() != 1 {
		t.Fatalf("NumTweens = %d, want 1", s.NumTweens())
	}

	s.Advance(0.5)
	if !s.NeedsRedraw() {
		t.Error("tween step should invalidate the tree")
	}
	s.Advance(0.5)
	if s.NumTweens() != 0 {
		t.Errorf("NumTweens = %d, want 0 after completion", s.NumTweens())
	}
}

func TestSceneResize(t *testing.T) {
	s := newTestScene(t)
	s.Draw(nil)
	s.Resize(100, 80)
	if s.Canvas().Width() != 100 || s.Canvas().Height() != 80 {
		t.Errorf("canvas = %dx%d, want 100x80", s.Canvas().Width(), s.Canvas().Height())
	}
	if s.Config().Width != 100 || s.Config().Height != 80 {
		t.Errorf("config = %dx%d", s.Config().Width, s.Config().Height)
	}
	if !s.NeedsRedraw() {
		t.Error("Resize should request a redraw")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := newTestScene(t)
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneDispose(t *testing.T) {
	s := newTestScene(t)
	box := NewShape("box", ColorWhite)
	s.Root().AddChild(box)
	s.Dispose()
	if !s.Root().IsDisposed() || !box.IsDisposed() {
		t.Error("Dispose should dispose the tree")
	}
}
