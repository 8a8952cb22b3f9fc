package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/assassin/geometry"
)

// View maps cartesian arena coordinates, origin at the screen center and y
// pointing up, to screen pixels.
type View struct {
	originX float64
	originY float64
}

func NewView(screenWidth, screenHeight int) View {
	return View{
		originX: float64(screenWidth) / 2,
		originY: float64(screenHeight) / 2,
	}
}

func (v View) ToScreen(point geometry.Vector) (float32, float32) {
	return float32(v.originX + point.X), float32(v.originY - point.Y)
}

func (v View) ToCartesian(screenX, screenY int) geometry.Vector {
	return geometry.Vector{
		X: float64(screenX) - v.originX,
		Y: v.originY - float64(screenY),
	}
}

func (v View) currentMousePosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return v.ToCartesian(mouseX, mouseY)
}
