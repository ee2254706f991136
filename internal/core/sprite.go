package core

import "strings"

// Sprite is a rectangular block of rune art.
// Rows shorter than the widest row are padded with spaces.
type Sprite struct {
	rows  [][]rune
	width int
}

// NewSprite builds a sprite from newline-separated rune art.
func NewSprite(art string) *Sprite {
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	sp := &Sprite{rows: make([][]rune, 0, len(lines))}
	for _, line := range lines {
		row := []rune(line)
		sp.rows = append(sp.rows, row)
		if len(row) > sp.width {
			sp.width = len(row)
		}
	}
	return sp
}

// Width returns the widest row length.
func (sp *Sprite) Width() int {
	return sp.width
}

// Height returns the number of rows.
func (sp *Sprite) Height() int {
	return len(sp.rows)
}

// At returns the rune at (x, y), or space outside the art.
func (sp *Sprite) At(x, y int) rune {
	if y < 0 || y >= len(sp.rows) || x < 0 || x >= len(sp.rows[y]) {
		return ' '
	}
	return sp.rows[y][x]
}
