package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Provider loads named sprite sheets from a directory and caches them.
type Provider struct {
	dir    string
	sheets map[string]string
	logger *log.Logger

	mu     sync.Mutex
	images map[string]image.Image
	failed map[string]error
}

// NewProvider creates a provider for the sheets of an atlas under dir.
// A nil logger discards output.
func NewProvider(dir string, atlas Atlas, logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Provider{
		dir:    dir,
		sheets: atlas.Sheets,
		logger: logger,
		images: make(map[string]image.Image),
		failed: make(map[string]error),
	}
}

// Sheet returns the decoded image for a sheet name.
// A failed load is remembered and reported once.
func (p *Provider) Sheet(name string) (image.Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if img, ok := p.images[name]; ok {
		return img, nil
	}
	if err, ok := p.failed[name]; ok {
		return nil, err
	}

	img, err := p.load(name)
	if err != nil {
		p.failed[name] = err
		p.logger.Warn("sprite sheet unavailable, using fallback colors", "sheet", name, "err", err)
		return nil, err
	}
	p.images[name] = img
	p.logger.Debug("sprite sheet loaded", "sheet", name, "bounds", img.Bounds())
	return img, nil
}

func (p *Provider) load(name string) (image.Image, error) {
	file, ok := p.sheets[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sheet %q", name)
	}

	path := filepath.Join(p.dir, file)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to decode %s: %w", path, err)
	}
	return img, nil
}
