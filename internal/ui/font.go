// Package ui implements the chess window using Ebitengine.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const lineSpacing = 1.2

var (
	regularSource *text.GoTextFaceSource
	faces         = make(map[float64]*text.GoTextFace)
)

func init() {
	initFonts()
}

func initFonts() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
		return
	}
	regularSource = src
}

// GetFaceWithSize returns the regular font face at the given size.
// Faces are cached; only a handful of sizes are used.
func GetFaceWithSize(size float64) *text.GoTextFace {
	if regularSource == nil {
		return nil
	}
	if f, ok := faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source: regularSource,
		Size:   size,
	}
	faces[size] = f
	return f
}
