package ui

import "github.com/hajimehoshi/ebiten/v2"

// EbitenWindow configures the Ebitengine window.
type EbitenWindow struct{}

// SetSize sets the window size in device-independent pixels.
func (EbitenWindow) SetSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetTitle sets the window title.
func (EbitenWindow) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetTPS sets the number of Update calls per second.
func (EbitenWindow) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}
