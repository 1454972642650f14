package assets

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BuildSkin derives a skin from the atlas. Each entity takes the palette
// color nearest to the average color of its sprite. Entities whose sheet
// cannot be loaded keep the fallback style.
func BuildSkin(atlas Atlas, p *Provider, fallback breakout.Skin) breakout.Skin {
	skin := fallback

	for i, r := range atlas.Bricks {
		if i > breakout.MaxBrickType {
			break
		}
		skin.Bricks[i] = p.style(r, skin.Bricks[i])
	}
	for _, size := range breakout.SizeStates() {
		if r, ok := atlas.Paddle[size.String()]; ok {
			skin.Paddle[size] = p.style(r, skin.Paddle[size])
		}
	}
	skin.Ball = p.style(atlas.Ball, skin.Ball)
	for _, kind := range breakout.Kinds() {
		if r, ok := atlas.PowerUps[kind.String()]; ok {
			skin.PowerUps[kind] = p.style(r, skin.PowerUps[kind])
		}
	}

	return skin
}

func (p *Provider) style(r Rect, fallback breakout.Style) breakout.Style {
	out := fallback
	if r.Glyph != "" {
		out.Glyph = []rune(r.Glyph)[0]
	}

	img, err := p.Sheet(r.Sheet)
	if err != nil {
		return out
	}
	avg, ok := AverageColor(img, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H))
	if !ok {
		p.logger.Warn("sprite has no visible pixels", "sheet", r.Sheet, "x", r.X, "y", r.Y)
		return out
	}
	out.Color = NearestColor(avg)
	return out
}

// AverageColor returns the mean of the non-transparent pixels of img inside r.
func AverageColor(img image.Image, r image.Rectangle) (colorful.Color, bool) {
	r = r.Intersect(img.Bounds())

	var sum colorful.Color
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			sum.R += c.R
			sum.G += c.G
			sum.B += c.B
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}, false
	}

	return colorful.Color{
		R: sum.R / float64(n),
		G: sum.G / float64(n),
		B: sum.B / float64(n),
	}, true
}

// NearestColor picks the palette entry closest to c in Lab space.
func NearestColor(c colorful.Color) core.Color {
	best := core.ColorWhite
	bestDist := math.Inf(1)
	for _, pc := range core.Palette() {
		ref, err := colorful.Hex(pc.Hex())
		if err != nil {
			continue
		}
		if d := c.DistanceLab(ref); d < bestDist {
			best, bestDist = pc, d
		}
	}
	return best
}
