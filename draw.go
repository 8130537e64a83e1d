package main

import (
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"nounquest/internal/attack"
)

var pixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

func rect(img *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	img.DrawImage(pixel, op)
}

func fillCircle(img *ebiten.Image, cx, cy, r float64, c color.Color) {
	// horizontal spans, one per pixel row
	for dy := -r; dy <= r; dy++ {
		half := math.Sqrt(r*r - dy*dy)
		rect(img, cx-half, cy+dy, 2*half, 1, c)
	}
}

// drawFitted draws img scaled to fit inside w x h, anchored at x, y
func drawFitted(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	s := math.Min(w/float64(b.Dx()), h/float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawCover stretches img over the whole of dst
func drawCover(dst, img *ebiten.Image) {
	db, b := dst.Bounds(), img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(db.Dx())/float64(b.Dx()), float64(db.Dy())/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// images loads scene art lazily; a path that fails to load is remembered so
// the error is logged once and the scene falls back to flat colours.
type images struct {
	logger *zap.Logger
	cache  map[string]*ebiten.Image
}

func newImages(logger *zap.Logger) *images {
	return &images{logger: logger, cache: map[string]*ebiten.Image{}}
}

func (im *images) get(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	if img, ok := im.cache[path]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		im.logger.Warn("Scene art unavailable", zap.String("path", path), zap.Error(err))
		img = nil
	}
	im.cache[path] = img
	return img
}

var elementColors = map[attack.Element]color.RGBA{
	attack.Fire:  {0xE8, 0x5D, 0x2A, 0xFF},
	attack.Water: {0x2B, 0x6C, 0xB0, 0xFF},
	attack.Earth: {0x8B, 0x5A, 0x2B, 0xFF},
	attack.Wind:  {0xC8, 0xE6, 0xC9, 0xFF},
}
