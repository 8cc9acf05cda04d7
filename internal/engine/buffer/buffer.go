package buffer

// Buffer is a fixed-capacity sliding window of runes.
type Buffer struct {
	runes    []rune
	capacity int
}

// New creates an empty buffer. A capacity below 1 is clamped to 1.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		runes:    make([]rune, 0, capacity+8),
		capacity: capacity,
	}
}

// Append adds every scalar of text in order and then drops exactly
// Len()-Cap() leading scalars if the buffer overflowed.
func (b *Buffer) Append(text string) {
	if text == "" {
		return
	}
	for _, r := range text {
		b.runes = append(b.runes, r)
	}
	if over := len(b.runes) - b.capacity; over > 0 {
		n := copy(b.runes, b.runes[over:])
		b.runes = b.runes[:n]
	}
}

// String returns the visible text.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Len returns the number of scalars held.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Cap returns the maximum number of scalars held.
func (b *Buffer) Cap() int {
	return b.capacity
}

// IsEmpty returns true if the buffer holds nothing.
func (b *Buffer) IsEmpty() bool {
	return len(b.runes) == 0
}

// Runes returns a copy of the held scalars.
func (b *Buffer) Runes() []rune {
	out := make([]rune, len(b.runes))
	copy(out, b.runes)
	return out
}
