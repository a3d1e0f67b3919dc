package widgets

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/piwi3910/StudioFolio/internal/viewer"
)

// placeholderSize is the aspect used for images that cannot be shown.
var placeholderSize = viewer.Size{Width: 1500, Height: 1000}

// Picture is a gallery entry ready for display.
type Picture struct {
	Ref      string
	Resource fyne.Resource // nil when the file is missing or not decodable
	Natural  viewer.Size
}

// Available reports whether the picture has pixels to draw.
func (p Picture) Available() bool { return p.Resource != nil }

// ImageLoader resolves gallery references against a local root and caches
// what it reads.
type ImageLoader struct {
	root  string
	mu    sync.Mutex
	cache map[string]Picture
}

// NewImageLoader creates a loader for files under root.
func NewImageLoader(root string) *ImageLoader {
	return &ImageLoader{root: root, cache: map[string]Picture{}}
}

// Load returns the picture for ref. Unreadable or undecodable files yield a
// placeholder with a 3:2 natural size.
func (l *ImageLoader) Load(ref string) Picture {
	if l == nil {
		return Picture{Ref: ref, Natural: placeholderSize}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if p, ok := l.cache[ref]; ok {
		return p
	}
	p := l.read(ref)
	l.cache[ref] = p
	return p
}

func (l *ImageLoader) read(ref string) Picture {
	p := Picture{Ref: ref, Natural: placeholderSize}
	file := model.ImageFile(l.root, ref)
	if file == "" {
		return p
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return p
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return p
	}
	p.Resource = fyne.NewStaticResource(filepath.Base(file), data)
	p.Natural = viewer.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	return p
}
