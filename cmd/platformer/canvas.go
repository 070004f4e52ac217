package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/vec"
)

// canvas draws scenes onto the Ebiten screen. Sprites are flat boxes in the
// animation's colour; odd frames are drawn darker so playback is visible.
type canvas struct {
	screen *ebiten.Image
}

func (c *canvas) Clear(clr color.RGBA) {
	c.screen.Fill(clr)
}

func (c *canvas) Sprite(pos vec.Vec2, anim *assets.Animation, scale vec.Vec2, angle float32, alpha uint8) {
	size := vec.New(anim.Size.X*abs(scale.X), anim.Size.Y*abs(scale.Y))
	clr := anim.Color
	if anim.Frame()%2 == 1 {
		clr.R, clr.G, clr.B = clr.R/4*3, clr.G/4*3, clr.B/4*3
	}
	clr = premultiply(clr, alpha)
	vector.DrawFilledRect(c.screen, pos.X-size.X/2, pos.Y-size.Y/2, size.X, size.Y, clr, false)
}

func (c *canvas) Rect(pos, size vec.Vec2, clr color.RGBA) {
	vector.StrokeRect(c.screen, pos.X-size.X/2, pos.Y-size.Y/2, size.X, size.Y, 2, clr, false)
}

func (c *canvas) Line(a, b vec.Vec2, clr color.RGBA) {
	vector.StrokeLine(c.screen, a.X, a.Y, b.X, b.Y, 1, clr, false)
}

func (c *canvas) Text(pos vec.Vec2, s string, _ color.RGBA) {
	ebitenutil.DebugPrintAt(c.screen, s, int(pos.X), int(pos.Y))
}

// premultiply scales clr by alpha; Ebiten expects premultiplied colours.
func premultiply(clr color.RGBA, alpha uint8) color.RGBA {
	a := uint16(clr.A) * uint16(alpha) / 255
	return color.RGBA{
		R: uint8(uint16(clr.R) * a / 255),
		G: uint8(uint16(clr.G) * a / 255),
		B: uint8(uint16(clr.B) * a / 255),
		A: uint8(a),
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
