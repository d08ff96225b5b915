// Package input collects the keyboard and mouse state the game loop needs.
package input

import "unicode"

// MaxInputChars is the capacity of the move text box: four coordinate
// characters plus an optional promotion letter.
const MaxInputChars = 5

// TextBuffer is a bounded rune buffer holding the text being typed.
type TextBuffer struct {
	runes    []rune
	capacity int
}

// NewTextBuffer creates a buffer that holds at most capacity runes.
func NewTextBuffer(capacity int) *TextBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &TextBuffer{
		runes:    make([]rune, 0, capacity),
		capacity: capacity,
	}
}

// Append adds r to the buffer. It returns false if the buffer is full or
// r is not a printable, non-space character.
func (b *TextBuffer) Append(r rune) bool {
	if len(b.runes) >= b.capacity {
		return false
	}
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return false
	}
	b.runes = append(b.runes, r)
	return true
}

// Backspace removes the last rune, if any.
func (b *TextBuffer) Backspace() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Clear empties the buffer.
func (b *TextBuffer) Clear() {
	b.runes = b.runes[:0]
}

// String returns a copy of the buffer contents.
func (b *TextBuffer) String() string {
	return string(b.runes)
}

// Len returns the number of runes in the buffer.
func (b *TextBuffer) Len() int {
	return len(b.runes)
}

// Cap returns the buffer capacity.
func (b *TextBuffer) Cap() int {
	return b.capacity
}

// Full reports whether another rune would be rejected for lack of room.
func (b *TextBuffer) Full() bool {
	return len(b.runes) >= b.capacity
}
