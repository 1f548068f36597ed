package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts a Scene to ebiten.Game.
type game struct {
	scene    *Scene
	onUpdate func() error
}

func (g *game) Update() error {
	if g.onUpdate != nil {
		if err := g.onUpdate(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(int, int) (int, int) {
	cfg := g.scene.Config()
	return cfg.Width, cfg.Height
}

// Run opens a window sized per the scene's Config and runs the game loop
// until the window is closed or onUpdate returns an error. onUpdate may be
// nil; when set it is called once per tick before tweens advance.
//
// Because the scene repaints its canvas only when something was invalidated,
// the screen is not cleared between frames.
func Run(scene *Scene, onUpdate func() error) error {
	cfg := scene.Config()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(&game{scene: scene, onUpdate: onUpdate})
}
