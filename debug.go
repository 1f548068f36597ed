package easel

import (
	"fmt"
	"log/slog"
	"time"
)

// redrawStats holds per-redraw timing and tree metrics.
// Only populated when the scene is in debug mode.
type redrawStats struct {
	drawTime  time.Duration
	blitTime  time.Duration
	requests  int
	dirty     Rect
	nodeCount int
}

// debugLog reports redraw stats at debug level.
func (s *Scene) debugLog(stats redrawStats) {
	if !s.debug {
		return
	}
	Logger().Debug("easel redraw",
		slog.Duration("draw", stats.drawTime),
		slog.Duration("blit", stats.blitTime),
		slog.Int("requests", stats.requests),
		slog.Any("dirty", stats.dirty),
		slog.Int("nodes", stats.nodeCount),
		slog.Int("redraws", s.redraws),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used. Only called in debug mode; in release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("easel debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth above which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil && depth <= debugMaxTreeDepth+1; p = p.ancestor(p.parent) {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("easel: tree depth exceeds threshold",
			slog.Int("threshold", debugMaxTreeDepth),
			slog.String("node", n.Name))
	}
}

// debugMaxChildCount is the child count above which debugCheckChildCount warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(g *Group) {
	if len(g.children) > debugMaxChildCount {
		Logger().Warn("easel: child count exceeds threshold",
			slog.String("node", g.Name),
			slog.Int("children", len(g.children)),
			slog.Int("threshold", debugMaxChildCount))
	}
}

// countNodes counts d and all of its descendants.
func countNodes(d Drawable) int {
	count := 1
	if c, ok := d.(Container); ok {
		for _, child := range c.Children() {
			count += countNodes(child)
		}
	}
	return count
}
