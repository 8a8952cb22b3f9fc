package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/assassin/geometry"
	"github.com/meghashyamc/assassin/puzzle"
)

const (
	shotStrokeWidth  = 2
	arenaStrokeWidth = 4
)

var (
	shotColor        = color.RGBA{0x44, 0x44, 0xaa, 0xff}
	blockedShotColor = color.RGBA{0xcc, 0x44, 0x44, 0xff}
	arenaColor       = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

func drawShot(screen *ebiten.Image, view View, shot puzzle.Shot) {
	col := shotColor
	if shot.AbsorbedBy == geometry.LabelGuard {
		col = blockedShotColor
	}

	for i := 1; i < len(shot.Path); i++ {
		x0, y0 := view.ToScreen(shot.Path[i-1])
		x1, y1 := view.ToScreen(shot.Path[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, shotStrokeWidth, col, true)
	}
}

func drawArena(screen *ebiten.Image, view View, arena geometry.Rectangle) {
	x, y := view.ToScreen(arena.TopLeft())
	vector.StrokeRect(screen, x, y, float32(arena.Width()), float32(arena.Height()), arenaStrokeWidth, arenaColor, false)
}

// shotOutcome describes what stopped the shot for the HUD.
func shotOutcome(shot puzzle.Shot) string {
	if shot.AbsorbedBy == geometry.LabelNone {
		return "nothing"
	}
	return string(shot.AbsorbedBy)
}
