//go:build ebiten

package app

import (
	"slime/internal/core"
	"slime/internal/render"
	"slime/internal/sims/slime"
	"slime/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a slime world to the ebiten.Game interface.
type Game struct {
	world    *slime.World
	composer *render.Composer
	painter  *render.ScreenPainter
	overlay  *ui.Overlay

	scale int
	seed  int64
}

// New constructs a Game around the provided world.
func New(world *slime.World, scale int, seed int64) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		world:    world,
		composer: render.NewComposer(seed),
		painter:  render.NewScreenPainter(core.ScreenWidth, core.ScreenHeight),
		overlay:  ui.NewOverlay(),
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
}

// Update decodes pointer input and advances the world by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.overlay != nil {
		g.overlay.Update()
	}

	mx, my := ebiten.CursorPosition()
	g.world.StepFrame(mx/g.scale, my/g.scale, buttonMask())
	return nil
}

// buttonMask folds the mouse buttons into the 0/1/2 encoding the world
// expects. Holding both buttons decodes as none.
func buttonMask() int {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	switch {
	case left && !right:
		return slime.ButtonPrimary
	case right && !left:
		return slime.ButtonSecondary
	}
	return slime.ButtonNone
}

// Draw composes the frame and blits it to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.composer.Compose(g.world)
	g.painter.Blit(screen, g.composer.Frame(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.world.State())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenWidth * g.scale, core.ScreenHeight * g.scale
}
