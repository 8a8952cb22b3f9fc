package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/assassin/geometry"
)

const (
	markerRadius      = 6
	markerStrokeWidth = 2
)

var labelToColor = map[geometry.Label]color.RGBA{
	geometry.LabelAssassin: {0x99, 0x99, 0x99, 0xff},
	geometry.LabelGuard:    {0xff, 0x00, 0x00, 0xff},
	geometry.LabelTarget:   {0x00, 0x80, 0x00, 0xff},
}

var labelToStrokeColor = map[geometry.Label]color.RGBA{
	geometry.LabelAssassin: {0x33, 0x33, 0x33, 0xff},
	geometry.LabelGuard:    {0x33, 0x00, 0x00, 0xff},
	geometry.LabelTarget:   {0x00, 0x33, 0x00, 0xff},
}

func drawMarker(screen *ebiten.Image, view View, point geometry.Vector) {
	x, y := view.ToScreen(point)

	fill, ok := labelToColor[point.Label]
	if !ok {
		fill = color.RGBA{0x00, 0x00, 0x00, 0xff}
	}
	stroke, ok := labelToStrokeColor[point.Label]
	if !ok {
		stroke = fill
	}

	vector.DrawFilledCircle(screen, x, y, markerRadius, fill, true)
	vector.StrokeCircle(screen, x, y, markerRadius, markerStrokeWidth, stroke, true)
}

// isGrabbed reports whether a cursor at cursor picks up the marker at point.
func isGrabbed(point, cursor geometry.Vector) bool {
	return point.Distance(cursor) <= 2*markerRadius
}
