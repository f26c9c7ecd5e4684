package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Held while the key is down.
var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionTurnLeft:      {ebiten.KeyLeft, ebiten.KeyA},
	core.ActionTurnRight:     {ebiten.KeyRight, ebiten.KeyD},
	core.ActionThrust:        {ebiten.KeyUp, ebiten.KeyW},
	core.ActionReverse:       {ebiten.KeyDown, ebiten.KeyS},
	core.ActionFirePrimary:   {ebiten.KeySpace},
	core.ActionFireSecondary: {ebiten.KeyX, ebiten.KeyF},
}

// Active only on the frame the key goes down.
var edgeBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyDown, ebiten.KeyS},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionBack:    {ebiten.KeyEscape, ebiten.KeyB},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ},
}

// readInput samples keyboard and mouse into a frame.
func readInput() core.InputFrame {
	f := core.NewInputFrame()
	for a, keys := range heldBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				f.Set(a)
				break
			}
		}
	}
	for a, keys := range edgeBindings {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				f.Set(a)
				break
			}
		}
	}

	// Layout coordinates are world coordinates.
	x, y := ebiten.CursorPosition()
	f.SetPointer(core.V(float64(x), float64(y)))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		f.Set(core.ActionFirePrimary)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		f.Set(core.ActionFireSecondary)
	}

	if ebiten.IsWindowBeingClosed() {
		f.Set(core.ActionQuit)
	}
	return f
}
