package game

import (
	"image"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
)

type fakeImage struct {
	w, h     int
	fills    int
	draws    int
	disposed bool
}

func (i *fakeImage) Bounds() image.Rectangle                  { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int)                         { return i.w, i.h }
func (i *fakeImage) Fill(color.Color)                         { i.fills++ }
func (i *fakeImage) Clear()                                   {}
func (i *fakeImage) DrawImage(render.Image, float64, float64) { i.draws++ }
func (i *fakeImage) Dispose()                                 { i.disposed = true }

type rect struct {
	x, y, w, h float32
	clr        color.Color
}

type fakeRenderer struct {
	images  int
	rects   []rect
	lines   int
	circles int
	texts   []string
}

func (r *fakeRenderer) NewImage(w, h int) render.Image {
	r.images++
	return &fakeImage{w: w, h: h}
}
func (r *fakeRenderer) FillRect(_ render.Image, x, y, w, h float32, clr color.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, clr})
}
func (r *fakeRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *fakeRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.lines++
}
func (r *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.circles++
}
func (r *fakeRenderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.texts = append(r.texts, text)
}
func (r *fakeRenderer) MeasureText(text string, _ float64) (int, int) {
	return len(text) * 6, 13
}

type fakeInput struct {
	held     map[render.Key]bool
	just     map[render.Key]bool
	click    bool
	captured bool
	cursorX  int
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[render.Key]bool{}, just: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool               { return f.held[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool           { return f.just[k] }
func (f *fakeInput) GetCursorPosition() (int, int)                { return f.cursorX, 0 }
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool { return f.click }
func (f *fakeInput) IsMouseButtonJustPressed(render.MouseButton) bool {
	return f.click
}
func (f *fakeInput) SetCursorCaptured(c bool) { f.captured = c }
func (f *fakeInput) IsCursorCaptured() bool   { return f.captured }

type countingCue struct{ plays int }

func (c *countingCue) Play() { c.plays++ }
