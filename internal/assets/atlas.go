// Package assets maps breakout entities to rectangles in PNG sprite sheets
// and derives a terminal skin from them.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

//go:embed defaults/sprites.yaml
var defaultAtlasYAML []byte

// ErrInvalidAtlas is wrapped by every atlas validation failure.
var ErrInvalidAtlas = errors.New("invalid sprite atlas")

// Rect is a sprite location inside a sheet, in pixels.
type Rect struct {
	Sheet string `yaml:"sheet"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	W     int    `yaml:"w"`
	H     int    `yaml:"h"`
	Glyph string `yaml:"glyph,omitempty"` // Optional character override
}

// Atlas is the static entity to sprite table.
type Atlas struct {
	Sheets   map[string]string `yaml:"sheets"` // Sheet name to file name
	Bricks   []Rect            `yaml:"bricks"` // Indexed by brick type
	Paddle   map[string]Rect   `yaml:"paddle"` // Keyed by paddle size state
	Ball     Rect              `yaml:"ball"`
	PowerUps map[string]Rect   `yaml:"powerups"` // Keyed by power-up kind
}

// DefaultAtlasYAML returns the embedded atlas.
func DefaultAtlasYAML() []byte {
	return defaultAtlasYAML
}

// DefaultAtlas parses and validates the embedded atlas.
func DefaultAtlas() (Atlas, error) {
	return ParseAtlas(defaultAtlasYAML)
}

// LoadAtlas reads an atlas file. An empty path returns the embedded atlas.
func LoadAtlas(path string) (Atlas, error) {
	if path == "" {
		return DefaultAtlas()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Atlas{}, fmt.Errorf("assets: failed to read atlas %s: %w", path, err)
	}
	atlas, err := ParseAtlas(data)
	if err != nil {
		return Atlas{}, fmt.Errorf("assets: %s: %w", path, err)
	}
	return atlas, nil
}

// ParseAtlas decodes and validates an atlas document.
func ParseAtlas(data []byte) (Atlas, error) {
	var atlas Atlas
	if err := yaml.Unmarshal(data, &atlas); err != nil {
		return Atlas{}, fmt.Errorf("failed to parse atlas: %w", err)
	}
	if err := atlas.Validate(); err != nil {
		return Atlas{}, err
	}
	return atlas, nil
}

// Validate checks that every entity has a usable rectangle.
func (a Atlas) Validate() error {
	var errs []error
	check := func(name string, r Rect) {
		if err := a.checkRect(r); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidAtlas, name, err))
		}
	}

	if len(a.Bricks) != breakout.MaxBrickType+1 {
		errs = append(errs, fmt.Errorf("%w: bricks: have %d entries, need %d",
			ErrInvalidAtlas, len(a.Bricks), breakout.MaxBrickType+1))
	}
	for i, r := range a.Bricks {
		check(fmt.Sprintf("bricks[%d]", i), r)
	}

	for _, size := range breakout.SizeStates() {
		r, ok := a.Paddle[size.String()]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: paddle.%s is missing", ErrInvalidAtlas, size))
			continue
		}
		check("paddle."+size.String(), r)
	}

	check("ball", a.Ball)

	for _, kind := range breakout.Kinds() {
		r, ok := a.PowerUps[kind.String()]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: powerups.%s is missing", ErrInvalidAtlas, kind))
			continue
		}
		check("powerups."+kind.String(), r)
	}

	return errors.Join(errs...)
}

func (a Atlas) checkRect(r Rect) error {
	if _, ok := a.Sheets[r.Sheet]; !ok {
		return fmt.Errorf("unknown sheet %q", r.Sheet)
	}
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("size %dx%d must be positive", r.W, r.H)
	}
	if r.X < 0 || r.Y < 0 {
		return fmt.Errorf("origin (%d, %d) must not be negative", r.X, r.Y)
	}
	if r.Glyph != "" && utf8.RuneCountInString(r.Glyph) != 1 {
		return fmt.Errorf("glyph %q must be a single character", r.Glyph)
	}
	return nil
}
