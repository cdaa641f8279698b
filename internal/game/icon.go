package game

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/Garsondee/chessjam/internal/chess"
)

//go:embed assets/*.svg
var iconFiles embed.FS

type iconKey struct {
	color chess.Color
	size  int
}

var (
	iconCache   = map[iconKey]*image.RGBA{}
	iconCacheMu sync.RWMutex
)

// turnIcon rasterizes the side-to-move icon at size×size pixels.
func turnIcon(c chess.Color, size int) (*image.RGBA, error) {
	key := iconKey{color: c, size: size}

	iconCacheMu.RLock()
	if img, ok := iconCache[key]; ok {
		iconCacheMu.RUnlock()
		return img, nil
	}
	iconCacheMu.RUnlock()

	name := fmt.Sprintf("assets/turn_%s.svg", c)
	data, err := iconFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read icon %s: %w", name, err)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse icon %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	iconCacheMu.Lock()
	iconCache[key] = img
	iconCacheMu.Unlock()
	return img, nil
}
