package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessframe/internal/board"
)

// ErrAssetMissing is returned when neither <key>.png nor <key>.svg exists.
var ErrAssetMissing = errors.New("piece asset missing")

// TextureLoader turns texture keys into textures and releases them.
type TextureLoader interface {
	Load(key string) (Texture, error)
	Unload(t Texture)
}

// AssetLoader loads piece images from a directory tree.
type AssetLoader struct {
	fsys    fs.FS
	svgSize int
	upload  func(image.Image) Texture
}

// NewAssetLoader creates a loader reading from fsys. SVG assets are
// rasterised at svgSize pixels; upload converts decoded images to textures.
func NewAssetLoader(fsys fs.FS, svgSize int, upload func(image.Image) Texture) *AssetLoader {
	return &AssetLoader{
		fsys:    fsys,
		svgSize: svgSize,
		upload:  upload,
	}
}

// NewDirLoader creates a loader for the asset directory dir that uploads
// images to the GPU.
func NewDirLoader(dir string, svgSize int) *AssetLoader {
	return NewAssetLoader(os.DirFS(dir), svgSize, UploadImage)
}

// UploadImage converts a decoded image into an Ebitengine image.
func UploadImage(img image.Image) Texture {
	return ebiten.NewImageFromImage(img)
}

// Load decodes the asset for key and uploads it.
func (l *AssetLoader) Load(key string) (Texture, error) {
	img, _, err := DecodeAsset(l.fsys, key, l.svgSize)
	if err != nil {
		return nil, err
	}
	return l.upload(img), nil
}

// Unload releases the GPU memory of an Ebitengine texture.
func (l *AssetLoader) Unload(t Texture) {
	if img, ok := t.(*ebiten.Image); ok && img != nil {
		img.Deallocate()
	}
}

// DecodeAsset reads <key>.png, falling back to <key>.svg. It returns the
// image and the file name it came from.
func DecodeAsset(fsys fs.FS, key string, svgSize int) (image.Image, string, error) {
	name := key + ".png"
	data, err := fs.ReadFile(fsys, name)
	if err == nil {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, name, fmt.Errorf("decode %s: %w", name, err)
		}
		return img, name, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, name, fmt.Errorf("read %s: %w", name, err)
	}

	name = key + ".svg"
	data, err = fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: %s.png", ErrAssetMissing, key)
	}
	if err != nil {
		return nil, name, fmt.Errorf("read %s: %w", name, err)
	}
	img, err := rasterizeSVG(data, svgSize)
	if err != nil {
		return nil, name, fmt.Errorf("parse %s: %w", name, err)
	}
	return img, name, nil
}

// rasterizeSVG renders an SVG document into a size x size RGBA image.
func rasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid raster size %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// AssetStatus describes how one texture key is satisfied.
type AssetStatus struct {
	Key  string
	File string // file that would be loaded, "" if none
	Err  error
}

// OK reports whether the asset can be loaded.
func (s AssetStatus) OK() bool {
	return s.Err == nil
}

// CheckAssets decodes every canonical piece asset and reports the result
// in texture key order.
func CheckAssets(fsys fs.FS, svgSize int) []AssetStatus {
	keys := board.TextureKeys()
	report := make([]AssetStatus, 0, len(keys))
	for _, key := range keys {
		_, file, err := DecodeAsset(fsys, key, svgSize)
		report = append(report, AssetStatus{Key: key, File: file, Err: err})
	}
	return report
}
