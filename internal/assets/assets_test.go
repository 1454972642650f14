package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// writeSheet saves img as a PNG under dir.
func writeSheet(t *testing.T, dir, name string, img image.Image) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to create sheet: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode sheet: %v", err)
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func rectOf(r Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func TestDefaultAtlasIsComplete(t *testing.T) {
	atlas, err := DefaultAtlas()
	if err != nil {
		t.Fatalf("embedded atlas invalid: %v", err)
	}
	if len(atlas.Bricks) != breakout.MaxBrickType+1 {
		t.Errorf("%d brick sprites", len(atlas.Bricks))
	}
	if atlas.Sheets["tiles"] != "tiles.png" {
		t.Errorf("sheets = %v", atlas.Sheets)
	}
}

func TestAtlasValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Atlas)
		want   string
	}{
		{"missing brick", func(a *Atlas) { a.Bricks = a.Bricks[:3] }, "bricks: have 3 entries"},
		{"missing paddle state", func(a *Atlas) { delete(a.Paddle, "shrunk") }, "paddle.shrunk is missing"},
		{"missing power-up", func(a *Atlas) { delete(a.PowerUps, "multi-ball") }, "powerups.multi-ball is missing"},
		{"unknown sheet", func(a *Atlas) { a.Ball.Sheet = "nope" }, `ball: unknown sheet "nope"`},
		{"empty rect", func(a *Atlas) { a.Ball.W = 0 }, "ball: size 0x16"},
		{"negative origin", func(a *Atlas) { a.Bricks[1].X = -1 }, "bricks[1]: origin"},
		{"long glyph", func(a *Atlas) { a.Bricks[0].Glyph = "ab" }, "bricks[0]: glyph"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			atlas, err := DefaultAtlas()
			if err != nil {
				t.Fatal(err)
			}
			tc.mutate(&atlas)

			err = atlas.Validate()
			if !errors.Is(err, ErrInvalidAtlas) {
				t.Fatalf("expected ErrInvalidAtlas, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadAtlasFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadAtlas(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("sheets: {a: a.png}\nbricks: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAtlas(bad); !errors.Is(err, ErrInvalidAtlas) {
		t.Errorf("expected ErrInvalidAtlas, got %v", err)
	}

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, DefaultAtlasYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAtlas(good); err != nil {
		t.Errorf("LoadAtlas(default copy) = %v", err)
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		hex  string
		want core.Color
	}{
		{"#ff0000", core.ColorBrightRed},
		{"#f80808", core.ColorBrightRed},
		{"#00ff00", core.ColorBrightGreen},
		{"#000080", core.ColorBlue},
		{"#ff8800", core.ColorOrange},
		{"#8a8a8a", core.ColorGray},
	}

	for _, tc := range tests {
		c, err := colorful.Hex(tc.hex)
		if err != nil {
			t.Fatal(err)
		}
		if got := NearestColor(c); got != tc.want {
			t.Errorf("NearestColor(%s) = %v, expected %v", tc.hex, got, tc.want)
		}
	}
}

func TestAverageColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	fill(img, image.Rect(0, 0, 2, 2), color.RGBA{255, 0, 0, 255})
	fill(img, image.Rect(2, 0, 4, 2), color.RGBA{0, 0, 255, 255})

	avg, ok := AverageColor(img, img.Bounds())
	if !ok {
		t.Fatal("expected visible pixels")
	}
	if avg.R != 0.5 || avg.G != 0 || avg.B != 0.5 {
		t.Errorf("average = %+v, expected (0.5, 0, 0.5)", avg)
	}

	transparent := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if _, ok := AverageColor(transparent, transparent.Bounds()); ok {
		t.Error("fully transparent area should report no color")
	}

	if _, ok := AverageColor(img, image.Rect(10, 10, 20, 20)); ok {
		t.Error("area outside the image should report no color")
	}
}

func TestBuildSkinFromSheet(t *testing.T) {
	atlas, err := DefaultAtlas()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 256, 48))
	fill(img, rectOf(atlas.Bricks[0]), color.RGBA{0, 255, 0, 255})
	fill(img, rectOf(atlas.Ball), color.RGBA{255, 0, 0, 255})
	fill(img, rectOf(atlas.Paddle["expanded"]), color.RGBA{255, 255, 0, 255})
	writeSheet(t, dir, "tiles.png", img)

	fallback := breakout.DefaultSkin()
	skin := BuildSkin(atlas, NewProvider(dir, atlas, nil), fallback)

	if got := skin.Bricks[0]; got.Color != core.ColorBrightGreen || got.Glyph != fallback.Bricks[0].Glyph {
		t.Errorf("brick 0 style = %+v", got)
	}
	if skin.Ball.Color != core.ColorBrightRed {
		t.Errorf("ball color = %v, expected bright red", skin.Ball.Color)
	}
	if skin.Paddle[breakout.SizeExpanded].Color != core.ColorBrightYellow {
		t.Errorf("expanded paddle color = %v", skin.Paddle[breakout.SizeExpanded].Color)
	}
	// Transparent sprites keep their fallback color
	if skin.Bricks[3] != fallback.Bricks[3] {
		t.Errorf("brick 3 = %+v, expected fallback %+v", skin.Bricks[3], fallback.Bricks[3])
	}
	if skin.PowerUps[breakout.KindExtraLife].Glyph != '♥' {
		t.Errorf("extra-life glyph = %q", skin.PowerUps[breakout.KindExtraLife].Glyph)
	}
}

func TestBuildSkinMissingSheetFallsBack(t *testing.T) {
	atlas, err := DefaultAtlas()
	if err != nil {
		t.Fatal(err)
	}

	p := NewProvider(t.TempDir(), atlas, nil)
	skin := BuildSkin(atlas, p, breakout.DefaultSkin())

	if skin != breakout.DefaultSkin() {
		t.Errorf("skin without sheets should equal the default skin")
	}
	if _, err := p.Sheet("tiles"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected remembered os.ErrNotExist, got %v", err)
	}
}

func TestProviderCachesSheets(t *testing.T) {
	atlas, err := DefaultAtlas()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	writeSheet(t, dir, "tiles.png", image.NewRGBA(image.Rect(0, 0, 8, 8)))

	p := NewProvider(dir, atlas, nil)
	first, err := p.Sheet("tiles")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "tiles.png")); err != nil {
		t.Fatal(err)
	}
	second, err := p.Sheet("tiles")
	if err != nil {
		t.Fatalf("cached Sheet failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached image")
	}

	if _, err := p.Sheet("unknown"); err == nil {
		t.Error("unknown sheet should fail")
	}
}
