package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/lighting"
)

var (
	rayColor      = color.RGBA{0xff, 0x00, 0x00, 0xff}
	crosshairSize = float32(6)
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()

	if g.floor == nil || needsResize(g.floor, w, h/2) {
		if g.floor != nil {
			g.floor.Dispose()
		}
		g.floor = g.buildFloor(w, h)
	}

	screen.Fill(lighting.Dark)
	screen.DrawImage(g.floor, 0, float64(h/2))
	g.drawWalls(screen)
	g.drawCrosshair(screen)
	if g.ShowMinimap {
		g.drawMinimap(screen)
	}
	g.drawHUD(screen)
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}

// buildFloor renders the lower-half gradient once per screen size.
func (g *Game) buildFloor(w, h int) render.Image {
	half := h / 2
	img := g.Renderer.NewImage(w, h-half)
	for y := half; y < h; y++ {
		g.Renderer.FillRect(img, 0, float32(y-half), float32(w), 1, lighting.FloorColor(y, h))
	}
	return img
}

func (g *Game) drawWalls(screen render.Image) {
	p := g.State.Projector
	for _, s := range g.State.Strips {
		if s.Miss {
			continue
		}
		top, bottom := s.Clip(p.ScreenHeight)

		// one-pixel dark outline above and below the strip
		g.Renderer.FillRect(screen, float32(s.X), float32(top-1), float32(s.Width), float32(bottom-top+2), lighting.Dark)
		g.Renderer.FillRect(screen, float32(s.X), float32(top), float32(s.Width), float32(bottom-top), lighting.Gray(p.Color(s)))
	}
}

func (g *Game) drawCrosshair(screen render.Image) {
	w, h := screen.Size()
	cx, cy := float32(w)/2, float32(h)/2
	g.Renderer.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, 1, lighting.Light)
	g.Renderer.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, 1, lighting.Light)
}

func (g *Game) drawMinimap(screen render.Image) {
	scale := float32(g.MinimapScale)
	grid := g.State.Grid
	tile := float32(grid.TileSize()) * scale

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			clr := lighting.Light
			if grid.TileAt(col, row) {
				clr = lighting.Dark
			}
			x, y := float32(col)*tile, float32(row)*tile
			g.Renderer.FillRect(screen, x, y, tile, tile, clr)
			g.Renderer.StrokeRect(screen, x, y, tile, tile, 1, lighting.Dark)
		}
	}

	pos := g.State.Player.Pos
	px, py := float32(pos.X)*scale, float32(pos.Y)*scale
	for _, r := range g.State.Rays {
		if !r.Found {
			continue
		}
		g.Renderer.StrokeLine(screen, px, py, float32(r.Hit.X)*scale, float32(r.Hit.Y)*scale, 1, rayColor)
	}
	g.Renderer.FillCircle(screen, px, py, 3, lighting.Dark)
}

func (g *Game) drawHUD(screen render.Image) {
	p := g.State.Player
	line := fmt.Sprintf("x %.0f  y %.0f  heading %.0f°  tick %d",
		p.Pos.X, p.Pos.Y, geom.Degrees(p.Heading()), g.State.TickCount)

	w, h := screen.Size()
	tw, th := g.Renderer.MeasureText(line, 1)
	g.Renderer.DrawText(screen, line, w-tw-8, h-th-8, lighting.Light, 1)

	if !g.InputMgr.IsCursorCaptured() {
		hint := "click to look around, esc to quit"
		hw, _ := g.Renderer.MeasureText(hint, 1)
		g.Renderer.DrawText(screen, hint, (w-hw)/2, 8, lighting.Light, 1)
	}
}
