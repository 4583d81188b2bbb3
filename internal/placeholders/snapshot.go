package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render/lighting"
)

// Snapshot renders the state's current strips into an image, the same way
// the windowed game draws them, minus overlays.
func Snapshot(s *game.State) *image.RGBA {
	w, h := s.ScreenSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{lighting.Dark}, image.Point{}, draw.Src)

	for y := h / 2; y < h; y++ {
		fillRect(img, image.Rect(0, y, w, y+1), lighting.FloorColor(y, h))
	}

	p := s.Projector
	for _, strip := range s.Strips {
		if strip.Miss {
			continue
		}
		top, bottom := strip.Clip(p.ScreenHeight)
		x0 := int(math.Round(strip.X))
		x1 := int(math.Round(strip.X + strip.Width))
		y0, y1 := int(math.Round(top)), int(math.Round(bottom))

		fillRect(img, image.Rect(x0, y0-1, x1, y1+1), lighting.Dark)
		fillRect(img, image.Rect(x0, y0, x1, y1), lighting.Gray(p.Color(strip)))
	}
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
