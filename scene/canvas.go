package scene

import (
	"image/color"

	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/vec"
)

// Canvas is the drawing surface a scene renders to. Positions are window
// coordinates; scenes apply the camera themselves.
type Canvas interface {
	Clear(c color.RGBA)
	// Sprite draws the current frame of anim centred on pos.
	Sprite(pos vec.Vec2, anim *assets.Animation, scale vec.Vec2, angle float32, alpha uint8)
	// Rect outlines a box centred on pos.
	Rect(pos, size vec.Vec2, c color.RGBA)
	Line(a, b vec.Vec2, c color.RGBA)
	Text(pos vec.Vec2, s string, c color.RGBA)
}

var (
	colorSky       = color.RGBA{100, 100, 255, 255}
	colorSkyPaused = color.RGBA{50, 50, 150, 255}
	colorBlack     = color.RGBA{0, 0, 0, 255}
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorRed       = color.RGBA{255, 0, 0, 255}
	colorGrid      = color.RGBA{255, 255, 255, 96}
	colorCursor    = color.RGBA{255, 0, 0, 196}
)
