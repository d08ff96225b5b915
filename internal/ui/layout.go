package ui

import (
	"image"
	"image/color"
)

// Layout holds the fixed pixel geometry of the window.
type Layout struct {
	Title           string
	ScreenWidth     int
	ScreenHeight    int
	FramesPerSecond int

	BoardX, BoardY int // top-left corner of square a8
	SquareSize     int
	FrameSize      int // width of the border around the squares
}

// DefaultLayout returns the 1280x800 layout with a 60px board at (60, 60).
func DefaultLayout() Layout {
	return Layout{
		Title:           "Chessframe",
		ScreenWidth:     1280,
		ScreenHeight:    800,
		FramesPerSecond: 60,
		BoardX:          60,
		BoardY:          60,
		SquareSize:      60,
		FrameSize:       30,
	}
}

// TextBox returns the rectangle of the move input box.
func (l Layout) TextBox() image.Rectangle {
	x := l.ScreenWidth/2 - 610
	y := l.ScreenHeight/2 + 200
	return image.Rect(x, y, x+200, y+50)
}

// SquareOrigin returns the top-left pixel of the square at row, col.
func (l Layout) SquareOrigin(row, col int) (int, int) {
	return l.BoardX + col*l.SquareSize, l.BoardY + row*l.SquareSize
}

// PiecePosition returns where the sprite for row, col is drawn.
// With the default layout this is (col*60+30+30, row*60+30+30).
func (l Layout) PiecePosition(row, col int) (float64, float64) {
	x := col*l.SquareSize + l.SquareSize/2 + l.BoardX/2
	y := row*l.SquareSize + l.SquareSize/2 + l.BoardY/2
	return float64(x), float64(y)
}

// Frame returns the border rectangle drawn behind the squares.
func (l Layout) Frame() image.Rectangle {
	x := l.BoardX - l.FrameSize
	y := l.BoardY - l.FrameSize
	return image.Rect(x, y, x+8*l.SquareSize+2*l.FrameSize, y+8*l.SquareSize+2*l.FrameSize)
}

// Theme defines the color scheme.
type Theme struct {
	LightSquare color.RGBA // (row+col) even
	DarkSquare  color.RGBA // (row+col) odd
	Frame       color.RGBA
	Background  color.RGBA
	Label       color.RGBA
	TextBox     color.RGBA
	TextBoxLine color.RGBA
	InputText   color.RGBA
	Info        color.RGBA
	Error       color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{255, 255, 255, 255}, // White
		DarkSquare:  color.RGBA{230, 41, 55, 255},   // Red
		Frame:       color.RGBA{253, 249, 0, 255},   // Yellow
		Background:  color.RGBA{0, 0, 0, 255},
		Label:       color.RGBA{0, 0, 0, 255},
		TextBox:     color.RGBA{200, 200, 200, 255}, // Light gray
		TextBoxLine: color.RGBA{0, 121, 241, 255},   // Blue
		InputText:   color.RGBA{0, 0, 0, 255},
		Info:        color.RGBA{245, 245, 245, 255}, // Off-white
		Error:       color.RGBA{255, 109, 120, 255},
	}
}

// SquareColor returns the fill color of the square at row, col.
func (t *Theme) SquareColor(row, col int) color.RGBA {
	if (row+col)%2 == 0 {
		return t.LightSquare
	}
	return t.DarkSquare
}
